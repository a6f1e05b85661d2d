package davxml

import (
	"bytes"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xxxsen/davmeta/element"
	"github.com/xxxsen/davmeta/lock"
)

func encode(t *testing.T, e *element.Element) string {
	buf := bytes.NewBuffer(nil)
	require.NoError(t, element.Encode(buf, e))
	return buf.String()
}

func textOf(t *testing.T, e *element.Element) string {
	v, ok := e.Text()
	require.True(t, ok)
	return v
}

func TestLeafConstructors(t *testing.T) {
	assert.Equal(t, NameDisplayName, DisplayName("a.txt").Name())
	assert.Equal(t, "a.txt", textOf(t, DisplayName("a.txt")))
	assert.Equal(t, "1234", textOf(t, GetContentLength(1234)))
	assert.Equal(t, "text/plain; charset=utf-8", textOf(t, GetContentType("text/plain; charset=utf-8")))
	assert.Equal(t, "HTTP/1.1 200 OK", textOf(t, Status(NewHTTPStatus(200))))
	assert.Equal(t, "HTTP/1.1 207 Multi-Status", textOf(t, Status(NewHTTPStatus(StatusMulti))))
	assert.Equal(t, "HTTP/1.1 423 Locked", textOf(t, Status(HTTPStatus{Code: 423, Reason: "Locked"})))
	assert.Equal(t, "write", textOf(t, LockType(lock.TypeWrite)))
	assert.Equal(t, "read", textOf(t, LockType(lock.TypeRead)))
	assert.Equal(t, "exclusive", textOf(t, LockScope(lock.ScopeExclusive)))
	assert.Equal(t, "shared", textOf(t, LockScope(lock.ScopeShared)))
}

func TestGetLastModified(t *testing.T) {
	instant := time.Date(2007, time.January, 1, 12, 0, 0, 0, time.UTC)
	expect := "Mon, 01 Jan 2007 12:00:00 GMT"
	assert.Equal(t, expect, textOf(t, GetLastModified(instant)))
	zones := []*time.Location{
		time.FixedZone("CST", 8*3600),
		time.FixedZone("PST", -8*3600),
		time.FixedZone("NPT", 5*3600+45*60),
		time.Local,
	}
	for _, loc := range zones {
		assert.Equal(t, expect, textOf(t, GetLastModified(instant.In(loc))))
	}
}

func TestHref(t *testing.T) {
	tests := []struct {
		in  *url.URL
		out string
	}{
		{&url.URL{Path: "a.txt"}, "/a.txt"},
		{&url.URL{Path: "/a.txt"}, "/a.txt"},
		{&url.URL{Path: "dir/sub/"}, "/dir/sub/"},
		{&url.URL{Path: "a b/文件.txt"}, "/a%20b/%E6%96%87%E4%BB%B6.txt"},
		{&url.URL{Path: "a b", RawPath: "a%20b"}, "/a%20b"},
		{&url.URL{Path: "q.txt", RawQuery: "v=1", Fragment: "top"}, "/q.txt"},
		{nil, "/"},
	}
	for _, tst := range tests {
		assert.Equal(t, tst.out, textOf(t, Href(tst.in)))
	}
	u, err := url.Parse("x%20y.txt")
	require.NoError(t, err)
	assert.Equal(t, "/x%20y.txt", textOf(t, Href(u)))
	assert.Equal(t, "/a%20b", textOf(t, HrefPath("a b")))
}

func TestSingletons(t *testing.T) {
	assert.Same(t, Depth(lock.DepthZero), Depth(lock.DepthZero))
	assert.Same(t, Depth(lock.DepthOne), Depth(lock.DepthOne))
	assert.Same(t, Depth(lock.DepthInfinity), Depth(lock.DepthInfinity))
	assert.NotSame(t, Depth(lock.DepthZero), Depth(lock.DepthOne))
	assert.Equal(t, "0", textOf(t, Depth(lock.DepthZero)))
	assert.Equal(t, "1", textOf(t, Depth(lock.DepthOne)))
	assert.Equal(t, "infinity", textOf(t, Depth(lock.DepthInfinity)))

	seen := make(map[*element.Element]struct{})
	for i := 0; i < 100; i++ {
		seen[ResourceType(i%2 == 0)] = struct{}{}
	}
	assert.Len(t, seen, 2)
	assert.True(t, ResourceType(false).IsEmpty())
	children := ResourceType(true).ChildElements()
	require.Len(t, children, 1)
	assert.Equal(t, NameCollection, children[0].Name())
	assert.Same(t, Collection(), children[0])
}

func TestMultistatusOrder(t *testing.T) {
	prop, err := Prop(DisplayName("a.txt"))
	require.NoError(t, err)
	propstat, err := PropertyStatus(prop, NewHTTPStatus(200))
	require.NoError(t, err)
	resp, err := Response(HrefPath("/a.txt"), propstat)
	require.NoError(t, err)
	ms, err := Multistatus(resp)
	require.NoError(t, err)

	out := encode(t, ms)
	assert.Equal(t, `<multistatus xmlns="DAV:"><response><href>/a.txt</href><propstat><prop><displayname>a.txt</displayname></prop><status>HTTP/1.1 200 OK</status></propstat></response></multistatus>`, out)
	assert.Less(t, strings.Index(out, "<href>"), strings.Index(out, "<propstat>"))
	assert.Less(t, strings.Index(out, "<prop>"), strings.Index(out, "<status>"))
}

func TestPropOrder(t *testing.T) {
	instant := time.Date(2007, time.January, 1, 12, 0, 0, 0, time.UTC)
	prop, err := Prop(DisplayName("name"), GetContentLength(1234), GetLastModified(instant), ResourceType(false))
	require.NoError(t, err)
	assert.Equal(t, `<prop xmlns="DAV:"><displayname>name</displayname><getcontentlength>1234</getcontentlength><getlastmodified>Mon, 01 Jan 2007 12:00:00 GMT</getlastmodified><resourcetype></resourcetype></prop>`, encode(t, prop))
}

func TestResponseMultiplePropstat(t *testing.T) {
	found, err := Prop(DisplayName("x"))
	require.NoError(t, err)
	missing, err := Prop(element.MustNew(element.DAV("getetag")))
	require.NoError(t, err)
	ok, err := PropertyStatus(found, NewHTTPStatus(200))
	require.NoError(t, err)
	nf, err := PropertyStatus(missing, NewHTTPStatus(404))
	require.NoError(t, err)
	resp, err := Response(HrefPath("x"), ok, nf)
	require.NoError(t, err)
	children := resp.ChildElements()
	require.Len(t, children, 3)
	assert.Equal(t, NameHref, children[0].Name())
	assert.Same(t, ok, children[1])
	assert.Same(t, nf, children[2])
}

func TestInvalidInputs(t *testing.T) {
	_, err := Prop(nil)
	assert.ErrorIs(t, err, element.ErrInvalidElement)
	_, err = PropertyStatus(nil, NewHTTPStatus(200))
	assert.ErrorIs(t, err, element.ErrInvalidElement)
	_, err = Response(nil)
	assert.ErrorIs(t, err, element.ErrInvalidElement)
	_, err = Multistatus(DisplayName("a"), nil)
	assert.ErrorIs(t, err, element.ErrInvalidElement)
	_, err = ActiveLock(nil, lock.DepthZero, nil)
	assert.ErrorIs(t, err, element.ErrInvalidElement)
}

func TestActiveLock(t *testing.T) {
	lk := &lock.Lock{Token: "opaquelocktoken:e71d4fae-5dec-22d6-fea5-00a0c91e6be4", Type: lock.TypeWrite, Scope: lock.ScopeExclusive}
	al, err := ActiveLock(lk, lock.DepthInfinity, nil)
	require.NoError(t, err)
	children := al.ChildElements()
	require.Len(t, children, 4)
	assert.Equal(t, NameLockType, children[0].Name())
	assert.Equal(t, NameLockScope, children[1].Name())
	assert.Same(t, Depth(lock.DepthInfinity), children[2])
	assert.Equal(t, NameLockToken, children[3].Name())
	assert.Equal(t, `<activelock xmlns="DAV:"><locktype>write</locktype><lockscope>exclusive</lockscope><depth>infinity</depth><locktoken><href>opaquelocktoken:e71d4fae-5dec-22d6-fea5-00a0c91e6be4</href></locktoken></activelock>`, encode(t, al))

	ld, err := LockDiscovery(al)
	require.NoError(t, err)
	assert.Equal(t, NameLockDiscovery, ld.Name())
	empty, err := LockDiscovery()
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

func TestActiveLockRoot(t *testing.T) {
	lk := &lock.Lock{Token: "opaquelocktoken:1", Type: lock.TypeRead, Scope: lock.ScopeShared}
	al, err := ActiveLock(lk, lock.DepthZero, &url.URL{Path: "dir/a.txt"})
	require.NoError(t, err)
	assert.Equal(t, `<activelock xmlns="DAV:"><locktype>read</locktype><lockscope>shared</lockscope><depth>0</depth><locktoken><href>opaquelocktoken:1</href></locktoken><lockroot><href>/dir/a.txt</href></lockroot></activelock>`, encode(t, al))
}

func TestSupportedLock(t *testing.T) {
	sl, err := SupportedLock(
		LockEntry(lock.ScopeExclusive, lock.TypeWrite),
		LockEntry(lock.ScopeShared, lock.TypeWrite),
	)
	require.NoError(t, err)
	assert.Equal(t, `<supportedlock xmlns="DAV:"><lockentry><lockscope><exclusive></exclusive></lockscope><locktype><write></write></locktype></lockentry><lockentry><lockscope><shared></shared></lockscope><locktype><write></write></locktype></lockentry></supportedlock>`, encode(t, sl))
}
