package utils

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidPathItem = errors.New("invalid item in path")
)

// SplitPath breaks a slash separated request path into its segments. Empty and
// "." segments are dropped, ".." is rejected so a path never leaves its root.
func SplitPath(p string) ([]string, error) {
	items := strings.Split(p, "/")
	rs := make([]string, 0, len(items))
	for _, item := range items {
		if len(item) == 0 || item == "." {
			continue
		}
		if item == ".." {
			return nil, fmt.Errorf("parent ref found, path:%s, err:%w", p, ErrInvalidPathItem)
		}
		rs = append(rs, item)
	}
	return rs, nil
}

// CleanPath normalizes p into "/a/b" form, the root being "/".
func CleanPath(p string) (string, error) {
	items, err := SplitPath(p)
	if err != nil {
		return "", err
	}
	return "/" + strings.Join(items, "/"), nil
}
