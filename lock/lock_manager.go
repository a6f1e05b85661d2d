package lock

import (
	"context"
	"errors"
)

var (
	ErrLockConflict      = errors.New("resource already locked")
	ErrNotLocked         = errors.New("resource not locked")
	ErrLockTokenMismatch = errors.New("lock token mismatch")
)

// Target is anything a lock can be held on. ID must be stable for the lifetime
// of the underlying entity.
type Target interface {
	ID() string
}

type ILockManager interface {
	// Lock moves target from unlocked to locked, failing with ErrLockConflict
	// if a lock is already held.
	Lock(ctx context.Context, target Target, t Type, s Scope) (*Lock, error)
	// Unlock removes and returns the lock held on target, failing with
	// ErrNotLocked if there is none.
	Unlock(ctx context.Context, target Target) (*Lock, error)
	// UnlockToken is like Unlock but only succeeds when token owns the lock.
	UnlockToken(ctx context.Context, target Target, token string) (*Lock, error)
	IsLocked(ctx context.Context, target Target) bool
	GetLock(ctx context.Context, target Target) (*Lock, bool)
}
