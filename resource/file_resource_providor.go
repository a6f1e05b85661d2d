package resource

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/davmeta/cacheapi"
	"github.com/xxxsen/davmeta/lock"
	"github.com/xxxsen/davmeta/utils"
	"go.uber.org/zap"
)

type config struct {
	lm    lock.ILockManager
	cache cacheapi.ICache[string, IResource]
}

type Option func(c *config)

func WithLockManager(lm lock.ILockManager) Option {
	return func(c *config) {
		c.lm = lm
	}
}

// WithCache keeps resolved resources in c, keyed by cleaned path. Cached
// metadata may lag behind the disk for as long as c retains it.
func WithCache(c cacheapi.ICache[string, IResource]) Option {
	return func(cc *config) {
		cc.cache = c
	}
}

type fileResourceProvidor struct {
	root string
	c    *config
}

// NewFileResourceProvidor publishes the directory root. The returned providor
// also implements IResourceLister.
func NewFileResourceProvidor(root string, opts ...Option) (IResourceProvidor, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root failed, root:%s, err:%w", root, err)
	}
	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("eval root link failed, root:%s, err:%w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat root failed, root:%s, err:%w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory, root:%s", abs)
	}
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	if c.lm == nil {
		c.lm = lock.NewMemLockManager()
	}
	return &fileResourceProvidor{root: abs, c: c}, nil
}

func (p *fileResourceProvidor) LockManager() lock.ILockManager {
	return p.c.lm
}

func (p *fileResourceProvidor) localPath(id string) string {
	return filepath.Join(p.root, filepath.FromSlash(id))
}

func (p *fileResourceProvidor) nameOf(id string) string {
	if id == "/" {
		return filepath.Base(p.root)
	}
	return path.Base(id)
}

func (p *fileResourceProvidor) withinRoot(rp string) bool {
	rel, err := filepath.Rel(p.root, rp)
	if err != nil {
		return false
	}
	return rel == "." || filepath.IsLocal(rel)
}

// realPath follows links in id and fails with ErrResourceNotFound when the
// target does not exist or lies outside the root.
func (p *fileResourceProvidor) realPath(id string) (string, error) {
	rp, err := filepath.EvalSymlinks(p.localPath(id))
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("eval link failed, path:%s, err:%w", id, ErrResourceNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("eval link failed, path:%s, err:%w", id, err)
	}
	if !p.withinRoot(rp) {
		return "", fmt.Errorf("link leaves root, path:%s, err:%w", id, ErrResourceNotFound)
	}
	return rp, nil
}

func (p *fileResourceProvidor) statResource(ctx context.Context, id string) (IResource, error) {
	rp, err := p.realPath(id)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(rp)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("stat resource failed, path:%s, err:%w", id, ErrResourceNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("stat resource failed, path:%s, err:%w", id, err)
	}
	return newFileResource(id, p.nameOf(id), info), nil
}

func (p *fileResourceProvidor) ResolveResource(ctx context.Context, rpath string) (IResource, error) {
	id, err := utils.CleanPath(rpath)
	if err != nil {
		return nil, fmt.Errorf("clean path failed, path:%s, reason:%v, err:%w", rpath, err, ErrInvalidPath)
	}
	if p.c.cache == nil {
		return p.statResource(ctx, id)
	}
	return cacheapi.Load(ctx, p.c.cache, id, p.statResource)
}

func (p *fileResourceProvidor) RelativizeResource(ctx context.Context, r IResource) (*url.URL, error) {
	if r == nil {
		return nil, fmt.Errorf("nil resource, err:%w", ErrInvalidPath)
	}
	id, err := utils.CleanPath(r.ID())
	if err != nil || id != r.ID() {
		return nil, fmt.Errorf("resource not from this providor, id:%s, err:%w", r.ID(), ErrInvalidPath)
	}
	rel := strings.TrimPrefix(id, "/")
	if r.IsCollection() && len(rel) != 0 {
		rel += "/"
	}
	return &url.URL{Path: rel}, nil
}

// ListResources returns the direct members of collection ordered by name.
// Members are stat'ed the same way ResolveResource does, so links are followed
// and members that vanish or point outside the root are skipped.
func (p *fileResourceProvidor) ListResources(ctx context.Context, collection IResource) ([]IResource, error) {
	if !collection.IsCollection() {
		return nil, fmt.Errorf("list resource failed, path:%s, err:%w", collection.ID(), ErrNotCollection)
	}
	rp, err := p.realPath(collection.ID())
	if err != nil {
		return nil, err
	}
	ents, err := os.ReadDir(rp)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read dir failed, path:%s, err:%w", collection.ID(), ErrResourceNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read dir failed, path:%s, err:%w", collection.ID(), err)
	}
	rs := make([]IResource, 0, len(ents))
	for _, ent := range ents {
		id := path.Join(collection.ID(), ent.Name())
		r, err := p.statResource(ctx, id)
		if errors.Is(err, ErrResourceNotFound) {
			logutil.GetLogger(ctx).Debug("skip unreachable member", zap.String("dir", collection.ID()),
				zap.String("name", ent.Name()), zap.Error(err))
			continue
		}
		if err != nil {
			return nil, err
		}
		if p.c.cache != nil {
			_ = p.c.cache.Set(ctx, id, r)
		}
		rs = append(rs, r)
	}
	return rs, nil
}
