package cacheapi

import (
	"context"
	"errors"
)

var (
	ErrCacheKeyNotExist = errors.New("cache key not exist")
)

type ICache[K comparable, V any] interface {
	Get(ctx context.Context, k K) (V, error)
	Set(ctx context.Context, k K, v V) error
	Del(ctx context.Context, k K) error
}

type LoadCacheCallbackFunc[K comparable, V any] func(ctx context.Context, k K) (V, error)

// Load returns the cached value of k, calling cb and filling the cache on a miss.
// Errors from cb are returned as is and nothing is cached.
func Load[K comparable, V any](ctx context.Context, c ICache[K, V], k K, cb LoadCacheCallbackFunc[K, V]) (V, error) {
	v, err := c.Get(ctx, k)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, ErrCacheKeyNotExist) {
		return v, err
	}
	v, err = cb(ctx, k)
	if err != nil {
		return v, err
	}
	_ = c.Set(ctx, k, v)
	return v, nil
}
