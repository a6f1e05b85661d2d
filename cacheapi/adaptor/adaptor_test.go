package cachewrap

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xxxsen/davmeta/cacheapi"
)

func TestCacheKinds(t *testing.T) {
	ctx := context.Background()
	for _, kind := range []string{KindLru, KindRistretto, ""} {
		c, err := New[string, int](kind, 100, time.Minute)
		require.NoError(t, err)
		_, err = c.Get(ctx, "/a")
		assert.ErrorIs(t, err, cacheapi.ErrCacheKeyNotExist)
		require.NoError(t, c.Set(ctx, "/a", 1))
		v, err := c.Get(ctx, "/a")
		assert.NoError(t, err)
		assert.Equal(t, 1, v)
		require.NoError(t, c.Del(ctx, "/a"))
		_, err = c.Get(ctx, "/a")
		assert.ErrorIs(t, err, cacheapi.ErrCacheKeyNotExist)
	}
}

func TestInvalidCache(t *testing.T) {
	_, err := New[string, int]("memcache", 10, time.Minute)
	assert.Error(t, err)
	_, err = New[string, int](KindLru, 0, time.Minute)
	assert.Error(t, err)
}

func TestLruExpire(t *testing.T) {
	ctx := context.Background()
	c := NewLruCache[string, int](10, 20*time.Millisecond)
	require.NoError(t, c.Set(ctx, "/a", 1))
	time.Sleep(100 * time.Millisecond)
	_, err := c.Get(ctx, "/a")
	assert.ErrorIs(t, err, cacheapi.ErrCacheKeyNotExist)
}
