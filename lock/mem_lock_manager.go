package lock

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/davmeta/utils"
	"go.uber.org/zap"
)

const (
	defaultShardCount = 32
	tokenScheme       = "opaquelocktoken:"
)

type tokenGenFunc func() (string, error)

type config struct {
	shards int
	tokenf tokenGenFunc
}

type Option func(c *config)

// WithShardCount sets how many independently locked partitions hold lock state.
func WithShardCount(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.shards = n
		}
	}
}

// withTokenGenerator replaces NewToken as the token source. The generator must
// never repeat a token.
func withTokenGenerator(fn tokenGenFunc) Option {
	return func(c *config) {
		c.tokenf = fn
	}
}

// NewToken returns an opaquelocktoken URI built on a v7 uuid. v7 uuids are
// strictly increasing within a process, so tokens are never reissued.
func NewToken() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("gen uuid failed, err:%w", err)
	}
	return tokenScheme + id.String(), nil
}

type lockShard struct {
	mu    sync.Mutex
	locks map[string]*Lock
}

type memLockManager struct {
	c      *config
	shards []*lockShard
}

func NewMemLockManager(opts ...Option) ILockManager {
	c := &config{
		shards: defaultShardCount,
		tokenf: NewToken,
	}
	for _, opt := range opts {
		opt(c)
	}
	m := &memLockManager{
		c:      c,
		shards: make([]*lockShard, c.shards),
	}
	for i := range m.shards {
		m.shards[i] = &lockShard{locks: make(map[string]*Lock)}
	}
	return m
}

func (m *memLockManager) shardOf(key string) *lockShard {
	return m.shards[utils.KeyShard(key, len(m.shards))]
}

func (m *memLockManager) Lock(ctx context.Context, target Target, t Type, s Scope) (*Lock, error) {
	key := target.ID()
	sd := m.shardOf(key)
	sd.mu.Lock()
	defer sd.mu.Unlock()
	if old, ok := sd.locks[key]; ok {
		logutil.GetLogger(ctx).Debug("lock conflict", zap.String("resource", key), zap.String("held_token", old.Token))
		return nil, fmt.Errorf("lock resource failed, resource:%s, err:%w", key, ErrLockConflict)
	}
	token, err := m.c.tokenf()
	if err != nil {
		return nil, fmt.Errorf("create lock token failed, resource:%s, err:%w", key, err)
	}
	lk := &Lock{Token: token, Type: t, Scope: s}
	sd.locks[key] = lk
	logutil.GetLogger(ctx).Debug("resource locked", zap.String("resource", key), zap.String("token", token),
		zap.String("type", t.String()), zap.String("scope", s.String()))
	cp := *lk
	return &cp, nil
}

func (m *memLockManager) unlock(ctx context.Context, target Target, check func(lk *Lock) error) (*Lock, error) {
	key := target.ID()
	sd := m.shardOf(key)
	sd.mu.Lock()
	defer sd.mu.Unlock()
	lk, ok := sd.locks[key]
	if !ok {
		return nil, fmt.Errorf("unlock resource failed, resource:%s, err:%w", key, ErrNotLocked)
	}
	if check != nil {
		if err := check(lk); err != nil {
			return nil, err
		}
	}
	delete(sd.locks, key)
	logutil.GetLogger(ctx).Debug("resource unlocked", zap.String("resource", key), zap.String("token", lk.Token))
	return lk, nil
}

func (m *memLockManager) Unlock(ctx context.Context, target Target) (*Lock, error) {
	return m.unlock(ctx, target, nil)
}

func (m *memLockManager) UnlockToken(ctx context.Context, target Target, token string) (*Lock, error) {
	return m.unlock(ctx, target, func(lk *Lock) error {
		if lk.Token != token {
			return fmt.Errorf("unlock resource failed, resource:%s, token:%s, err:%w", target.ID(), token, ErrLockTokenMismatch)
		}
		return nil
	})
}

func (m *memLockManager) IsLocked(ctx context.Context, target Target) bool {
	_, ok := m.GetLock(ctx, target)
	return ok
}

func (m *memLockManager) GetLock(ctx context.Context, target Target) (*Lock, bool) {
	key := target.ID()
	sd := m.shardOf(key)
	sd.mu.Lock()
	defer sd.mu.Unlock()
	lk, ok := sd.locks[key]
	if !ok {
		return nil, false
	}
	cp := *lk
	return &cp, true
}
