package resource

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/xxxsen/davmeta/lock"
)

var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrInvalidPath      = errors.New("invalid resource path")
	ErrNotCollection    = errors.New("resource is not a collection")
)

// IResource is a server side entity, a file or a collection. Its metadata is
// owned by the storage backend.
type IResource interface {
	// ID identifies the underlying entity, it is also the lock key.
	ID() string
	Name() string
	IsCollection() bool
	ContentLength() int64
	ContentType() string
	LastModified() time.Time
}

type IResourceProvidor interface {
	// ResolveResource maps a decoded request path, as held in url.URL.Path, to a
	// resource, failing with ErrResourceNotFound when nothing exists there.
	ResolveResource(ctx context.Context, p string) (IResource, error)
	// RelativizeResource is the inverse of ResolveResource, the returned uri is
	// relative to the publishing root. Pass its Path, not String(), back to
	// ResolveResource.
	RelativizeResource(ctx context.Context, r IResource) (*url.URL, error)
	LockManager() lock.ILockManager
}

// IResourceLister is implemented by providors able to enumerate collections.
type IResourceLister interface {
	ListResources(ctx context.Context, collection IResource) ([]IResource, error)
}
