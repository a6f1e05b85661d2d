package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	f := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(f, []byte(`{"root":"/srv/dav","cache":{"enable":true,"kind":"ristretto","size":64,"ttl":30},"lock_shards":4}`), 0644))
	c, err := Parse(f)
	require.NoError(t, err)
	assert.Equal(t, "/srv/dav", c.Root)
	assert.Equal(t, "ristretto", c.Cache.Kind)
	assert.Equal(t, int64(64), c.Cache.Size)
	assert.Equal(t, int64(30), c.Cache.TTL)
	assert.Equal(t, 4, c.LockShards)
	assert.Equal(t, 8, c.Concurrency)
	assert.Equal(t, "info", c.LogInfo.Level)
}

func TestParseFailure(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
	f := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(f, []byte(`{"root":`), 0644))
	_, err = Parse(f)
	assert.Error(t, err)
}
