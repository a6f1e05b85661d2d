// Package davxml builds the DAV: element trees used in PROPFIND and LOCK
// responses (RFC 4918). Every constructor is a pure function; the depth and
// resourcetype elements are shared singletons.
package davxml

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/xxxsen/davmeta/element"
	"github.com/xxxsen/davmeta/lock"
)

var (
	depthZero     = textElement(NameDepth, lock.DepthZero.String())
	depthOne      = textElement(NameDepth, lock.DepthOne.String())
	depthInfinity = textElement(NameDepth, lock.DepthInfinity.String())

	collectionMarker       = element.MustNew(NameCollection)
	resourceTypeResource   = element.MustNew(NameResourceType)
	resourceTypeCollection = element.MustNew(NameResourceType, collectionMarker)
)

func textElement(name element.QName, v string) *element.Element {
	return element.MustNew(name, element.NewText(v))
}

func wrap(name element.QName, items ...*element.Element) (*element.Element, error) {
	nodes := make([]element.Node, 0, len(items))
	for _, item := range items {
		nodes = append(nodes, item)
	}
	return element.New(name, nodes...)
}

// DisplayName is the presentable name of a resource (RFC 4918, section 15.2).
func DisplayName(name string) *element.Element {
	return textElement(NameDisplayName, name)
}

func GetContentLength(n int64) *element.Element {
	return textElement(NameGetContentLength, strconv.FormatInt(n, 10))
}

func GetContentType(mime string) *element.Element {
	return textElement(NameGetContentType, mime)
}

// GetLastModified formats t as an RFC 1123 date in GMT, e.g.
// "Mon, 01 Jan 2007 12:00:00 GMT", whatever the zone t carries.
func GetLastModified(t time.Time) *element.Element {
	return textElement(NameGetLastModified, t.UTC().Format(http.TimeFormat))
}

// Href renders u, which must be relative to the publishing root, as an
// absolute path. Characters not already escaped in u are percent-encoded.
// Only the path is rendered, Opaque, RawQuery and Fragment of u are ignored.
func Href(u *url.URL) *element.Element {
	var p string
	if u != nil {
		p = u.EscapedPath()
	}
	return textElement(NameHref, "/"+strings.TrimLeft(p, "/"))
}

// HrefPath is Href for a raw, unescaped path.
func HrefPath(p string) *element.Element {
	return Href(&url.URL{Path: p})
}

func Prop(props ...*element.Element) (*element.Element, error) {
	return wrap(NameProp, props...)
}

func PropertyStatus(prop *element.Element, status HTTPStatus) (*element.Element, error) {
	return wrap(NamePropstat, prop, Status(status))
}

// Response holds the href of a resource followed by its propstat blocks.
func Response(href *element.Element, propstats ...*element.Element) (*element.Element, error) {
	items := make([]*element.Element, 0, len(propstats)+1)
	items = append(items, href)
	items = append(items, propstats...)
	return wrap(NameResponse, items...)
}

func Multistatus(responses ...*element.Element) (*element.Element, error) {
	return wrap(NameMultistatus, responses...)
}

// ResourceType returns one of two shared elements, an empty resourcetype or
// one holding a collection marker.
func ResourceType(isCollection bool) *element.Element {
	if isCollection {
		return resourceTypeCollection
	}
	return resourceTypeResource
}

func Collection() *element.Element {
	return collectionMarker
}

// LockDiscovery describes the active locks on a resource (RFC 4918, section 15.8).
func LockDiscovery(activeLocks ...*element.Element) (*element.Element, error) {
	return wrap(NameLockDiscovery, activeLocks...)
}

// ActiveLock encodes lk as locktype, lockscope, depth and locktoken, in that
// order. A non nil uri is appended as lockroot.
func ActiveLock(lk *lock.Lock, depth lock.Depth, uri *url.URL) (*element.Element, error) {
	if lk == nil {
		return nil, fmt.Errorf("nil lock, err:%w", element.ErrInvalidElement)
	}
	items := []*element.Element{
		LockType(lk.Type),
		LockScope(lk.Scope),
		Depth(depth),
		LockToken(lk.Token),
	}
	if uri != nil {
		root, err := wrap(NameLockRoot, Href(uri))
		if err != nil {
			return nil, err
		}
		items = append(items, root)
	}
	return wrap(NameActiveLock, items...)
}

func LockType(t lock.Type) *element.Element {
	return textElement(NameLockType, t.String())
}

func LockScope(s lock.Scope) *element.Element {
	return textElement(NameLockScope, s.String())
}

// LockToken wraps token in an href. The token is an absolute URI and is
// written verbatim.
func LockToken(token string) *element.Element {
	return element.MustNew(NameLockToken, textElement(NameHref, token))
}

// Depth returns the shared element for d.
func Depth(d lock.Depth) *element.Element {
	switch d {
	case lock.DepthZero:
		return depthZero
	case lock.DepthOne:
		return depthOne
	default:
		return depthInfinity
	}
}

// LockEntry describes one supported scope/type pair using the marker form,
// <lockscope><exclusive/></lockscope><locktype><write/></locktype>.
func LockEntry(s lock.Scope, t lock.Type) *element.Element {
	scope := NameNone
	switch s {
	case lock.ScopeExclusive:
		scope = NameExclusive
	case lock.ScopeShared:
		scope = NameShared
	}
	typ := NameWrite
	if t == lock.TypeRead {
		typ = NameRead
	}
	return element.MustNew(NameLockEntry,
		element.MustNew(NameLockScope, element.MustNew(scope)),
		element.MustNew(NameLockType, element.MustNew(typ)),
	)
}

func SupportedLock(entries ...*element.Element) (*element.Element, error) {
	return wrap(NameSupportedLock, entries...)
}
