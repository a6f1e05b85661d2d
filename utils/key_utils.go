package utils

import (
	"github.com/cespare/xxhash/v2"
)

// KeyHash maps a resource key onto a stable 64bit value, used to pick lock shards.
func KeyHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// KeyShard returns the shard index of key among n shards.
func KeyShard(key string, n int) int {
	if n <= 1 {
		return 0
	}
	return int(KeyHash(key) % uint64(n))
}
