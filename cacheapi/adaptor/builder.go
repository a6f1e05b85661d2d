package cachewrap

import (
	"fmt"
	"time"

	"github.com/xxxsen/davmeta/cacheapi"
)

const (
	KindLru       = "lru"
	KindRistretto = "ristretto"
)

// New builds a cache of the given kind. An empty kind selects lru.
func New[K LimitRistrettoKey, V any](kind string, size int64, ttl time.Duration) (cacheapi.ICache[K, V], error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid cache size:%d", size)
	}
	switch kind {
	case KindLru, "":
		return NewLruCache[K, V](int(size), ttl), nil
	case KindRistretto:
		return NewRistrettoCache[K, V](size, ttl)
	default:
		return nil, fmt.Errorf("unsupported cache kind:%s", kind)
	}
}
