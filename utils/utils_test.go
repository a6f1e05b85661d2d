package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPath(t *testing.T) {
	items, err := SplitPath("/a//b/./c/")
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, items)
	items, err = SplitPath("/")
	assert.NoError(t, err)
	assert.Empty(t, items)
	_, err = SplitPath("/a/../b")
	assert.ErrorIs(t, err, ErrInvalidPathItem)
}

func TestCleanPath(t *testing.T) {
	tests := map[string]string{
		"":            "/",
		"/":           "/",
		"a/b":         "/a/b",
		"/a/b/":       "/a/b",
		"./a/./b.txt": "/a/b.txt",
	}
	for in, out := range tests {
		p, err := CleanPath(in)
		assert.NoError(t, err)
		assert.Equal(t, out, p)
	}
}

func TestKeyShard(t *testing.T) {
	assert.Equal(t, 0, KeyShard("/a", 1))
	assert.Equal(t, 0, KeyShard("/a", 0))
	for i := 0; i < 100; i++ {
		key := "/file-" + string(rune('a'+i%26))
		idx := KeyShard(key, 16)
		assert.True(t, idx >= 0 && idx < 16)
		assert.Equal(t, idx, KeyShard(key, 16))
	}
	assert.Equal(t, KeyHash("/a"), KeyHash("/a"))
	assert.NotEqual(t, KeyHash("/a"), KeyHash("/b"))
}
