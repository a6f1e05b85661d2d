package resource

import (
	"io/fs"
	"mime"
	"path"
	"time"
)

const (
	defaultContentType = "application/octet-stream"
)

func DetermineMimeType(filename string) string {
	ext := path.Ext(filename)
	mimeType := mime.TypeByExtension(ext)
	if mimeType == "" {
		return defaultContentType
	}
	return mimeType
}

type fileResource struct {
	id    string
	name  string
	size  int64
	mtime time.Time
	isDir bool
}

func newFileResource(id string, name string, info fs.FileInfo) *fileResource {
	r := &fileResource{
		id:    id,
		name:  name,
		mtime: info.ModTime(),
		isDir: info.IsDir(),
	}
	if !r.isDir {
		r.size = info.Size()
	}
	return r
}

func (f *fileResource) ID() string {
	return f.id
}

func (f *fileResource) Name() string {
	return f.name
}

func (f *fileResource) IsCollection() bool {
	return f.isDir
}

func (f *fileResource) ContentLength() int64 {
	return f.size
}

// ContentType is guessed from the file extension, collections have none.
func (f *fileResource) ContentType() string {
	if f.isDir {
		return ""
	}
	return DetermineMimeType(f.name)
}

func (f *fileResource) LastModified() time.Time {
	return f.mtime
}
