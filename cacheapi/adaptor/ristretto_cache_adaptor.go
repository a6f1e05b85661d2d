package cachewrap

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/xxxsen/davmeta/cacheapi"
)

type LimitRistrettoKey interface {
	uint64 | string | byte | int | int32 | uint32 | int64
}

type ristrettoCacheWrap[K LimitRistrettoKey, V any] struct {
	c   *ristretto.Cache[K, V]
	ttl time.Duration
}

func (r *ristrettoCacheWrap[K, V]) Get(ctx context.Context, k K) (V, error) {
	v, ok := r.c.Get(k)
	if !ok {
		return v, cacheapi.ErrCacheKeyNotExist
	}
	return v, nil
}

func (r *ristrettoCacheWrap[K, V]) Set(ctx context.Context, k K, v V) error {
	_ = r.c.SetWithTTL(k, v, 1, r.ttl)
	// sets are buffered, wait so the value is visible to the next Get
	r.c.Wait()
	return nil
}

func (r *ristrettoCacheWrap[K, V]) Del(ctx context.Context, k K) error {
	r.c.Del(k)
	return nil
}

func WrapRistrettoCache[K LimitRistrettoKey, V any](c *ristretto.Cache[K, V], ttl time.Duration) cacheapi.ICache[K, V] {
	return &ristrettoCacheWrap[K, V]{c: c, ttl: ttl}
}

// NewRistrettoCache holds up to size entries, every entry costing 1.
func NewRistrettoCache[K LimitRistrettoKey, V any](size int64, ttl time.Duration) (cacheapi.ICache[K, V], error) {
	cc, err := ristretto.NewCache(&ristretto.Config[K, V]{
		NumCounters:        size * 10,
		MaxCost:            size,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create ristretto cache failed, err:%w", err)
	}
	return WrapRistrettoCache(cc, ttl), nil
}
