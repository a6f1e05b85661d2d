package propfind

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/davmeta/davxml"
	"github.com/xxxsen/davmeta/element"
	"github.com/xxxsen/davmeta/lock"
	"github.com/xxxsen/davmeta/resource"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultConcurrency   = 8
	defaultMaxDepthLimit = 16
)

type config struct {
	concurrency   int
	maxDepth      int
	lockDiscovery bool
}

type Option func(c *config)

// WithConcurrency limits how many responses are built at the same time.
func WithConcurrency(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithMaxDepth bounds how deep a Depth: infinity request walks.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}

func WithLockDiscovery(v bool) Option {
	return func(c *config) {
		c.lockDiscovery = v
	}
}

// Builder assembles PROPFIND multistatus documents from a resource providor.
type Builder struct {
	p resource.IResourceProvidor
	c *config
}

func New(p resource.IResourceProvidor, opts ...Option) *Builder {
	c := &config{
		concurrency:   defaultConcurrency,
		maxDepth:      defaultMaxDepthLimit,
		lockDiscovery: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return &Builder{p: p, c: c}
}

// Build returns the multistatus for the resource at rpath and, depending on
// depth, its members. The requested resource always comes first, followed by
// members with collections ahead of files.
func (b *Builder) Build(ctx context.Context, rpath string, depth lock.Depth) (*element.Element, error) {
	base, err := b.p.ResolveResource(ctx, rpath)
	if err != nil {
		return nil, fmt.Errorf("resolve base failed, path:%s, err:%w", rpath, err)
	}
	items, err := b.collect(ctx, base, depth)
	if err != nil {
		return nil, err
	}
	responses := make([]*element.Element, len(items))
	eg, subctx := errgroup.WithContext(ctx)
	eg.SetLimit(b.c.concurrency)
	for idx, item := range items {
		eg.Go(func() error {
			resp, err := b.buildResponse(subctx, item)
			if err != nil {
				return err
			}
			responses[idx] = resp
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	logutil.GetLogger(ctx).Debug("build propfind response finish", zap.String("path", rpath),
		zap.String("depth", depth.String()), zap.Int("count", len(responses)))
	return davxml.Multistatus(responses...)
}

func (b *Builder) collect(ctx context.Context, base resource.IResource, depth lock.Depth) ([]resource.IResource, error) {
	rs := []resource.IResource{base}
	if depth == lock.DepthZero || !base.IsCollection() {
		return rs, nil
	}
	lister, ok := b.p.(resource.IResourceLister)
	if !ok {
		logutil.GetLogger(ctx).Debug("providor can not list collections, use depth 0", zap.String("path", base.ID()))
		return rs, nil
	}
	levels := 1
	if depth == lock.DepthInfinity {
		levels = b.c.maxDepth
	}
	return b.walk(ctx, lister, base, levels, rs)
}

func (b *Builder) walk(ctx context.Context, lister resource.IResourceLister, dir resource.IResource, levels int, rs []resource.IResource) ([]resource.IResource, error) {
	members, err := lister.ListResources(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("list members failed, path:%s, err:%w", dir.ID(), err)
	}
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].IsCollection() && !members[j].IsCollection()
	})
	for _, m := range members {
		rs = append(rs, m)
		if !m.IsCollection() || levels <= 1 {
			continue
		}
		rs, err = b.walk(ctx, lister, m, levels-1, rs)
		if err != nil {
			return nil, err
		}
	}
	return rs, nil
}

func (b *Builder) buildResponse(ctx context.Context, r resource.IResource) (*element.Element, error) {
	uri, err := b.p.RelativizeResource(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("relativize resource failed, id:%s, err:%w", r.ID(), err)
	}
	props := make([]*element.Element, 0, 6)
	props = append(props, davxml.DisplayName(r.Name()))
	if !r.IsCollection() {
		props = append(props, davxml.GetContentLength(r.ContentLength()), davxml.GetContentType(r.ContentType()))
	}
	props = append(props, davxml.GetLastModified(r.LastModified()), davxml.ResourceType(r.IsCollection()))
	if b.c.lockDiscovery {
		ld, err := b.lockDiscovery(ctx, r)
		if err != nil {
			return nil, err
		}
		props = append(props, ld)
	}
	prop, err := davxml.Prop(props...)
	if err != nil {
		return nil, err
	}
	propstat, err := davxml.PropertyStatus(prop, davxml.NewHTTPStatus(http.StatusOK))
	if err != nil {
		return nil, err
	}
	return davxml.Response(davxml.Href(uri), propstat)
}

// lockDiscovery reports the lock held on r. Locks carry no depth of their own;
// a lock on a collection covers its subtree, a lock on a file only itself.
func (b *Builder) lockDiscovery(ctx context.Context, r resource.IResource) (*element.Element, error) {
	lk, ok := b.p.LockManager().GetLock(ctx, r)
	if !ok {
		return davxml.LockDiscovery()
	}
	al, err := ActiveLock(ctx, b.p, r, lk)
	if err != nil {
		return nil, err
	}
	return davxml.LockDiscovery(al)
}

// ActiveLock encodes lk held on r, using r's uri as the lock root.
func ActiveLock(ctx context.Context, p resource.IResourceProvidor, r resource.IResource, lk *lock.Lock) (*element.Element, error) {
	uri, err := p.RelativizeResource(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("relativize resource failed, id:%s, err:%w", r.ID(), err)
	}
	depth := lock.DepthZero
	if r.IsCollection() {
		depth = lock.DepthInfinity
	}
	return davxml.ActiveLock(lk, depth, uri)
}
