package lock

import (
	"fmt"
	"strings"
)

type Type int

const (
	TypeRead Type = iota
	TypeWrite
)

func (t Type) String() string {
	switch t {
	case TypeRead:
		return "read"
	case TypeWrite:
		return "write"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

type Scope int

const (
	ScopeExclusive Scope = iota
	ScopeShared
	ScopeNone
)

func (s Scope) String() string {
	switch s {
	case ScopeExclusive:
		return "exclusive"
	case ScopeShared:
		return "shared"
	case ScopeNone:
		return "none"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

// Depth mirrors the Depth request header.
type Depth int

const (
	DepthZero Depth = iota
	DepthOne
	DepthInfinity
)

func (d Depth) String() string {
	switch d {
	case DepthZero:
		return "0"
	case DepthOne:
		return "1"
	default:
		return "infinity"
	}
}

// ParseDepth parses a Depth header value. An empty header means infinity.
func ParseDepth(v string) (Depth, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "0":
		return DepthZero, nil
	case "1":
		return DepthOne, nil
	case "infinity", "":
		return DepthInfinity, nil
	default:
		return DepthInfinity, fmt.Errorf("invalid depth value:%s", v)
	}
}

// Lock is an active lock held on a single resource.
type Lock struct {
	Token string
	Type  Type
	Scope Scope
}
