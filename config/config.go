package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xxxsen/common/logger"
)

type CacheConfig struct {
	Enable bool   `json:"enable"`
	Kind   string `json:"kind"` //lru/ristretto
	Size   int64  `json:"size"`
	TTL    int64  `json:"ttl"` //秒
}

type Config struct {
	Root        string           `json:"root"`
	LogInfo     logger.LogConfig `json:"log_info"`
	Cache       CacheConfig      `json:"cache"`
	LockShards  int              `json:"lock_shards"`
	Concurrency int              `json:"concurrency"`
}

func Default() *Config {
	return &Config{
		Root: ".",
		LogInfo: logger.LogConfig{
			Level:   "info",
			Console: true,
		},
		Cache: CacheConfig{
			Enable: true,
			Kind:   "lru",
			Size:   10000,
			TTL:    5,
		},
		LockShards:  32,
		Concurrency: 8,
	}
}

func Parse(f string) (*Config, error) {
	raw, err := os.ReadFile(f)
	if err != nil {
		return nil, fmt.Errorf("read file:%w", err)
	}
	c := Default()
	if err := json.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("decode json failed, err:%w", err)
	}
	return c, nil
}
