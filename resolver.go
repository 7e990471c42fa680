package hocon

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"
)

// ResourceResolver locates named resources (files on disk, embedded
// filesystems, whatever the host application loads configuration from)
// during parsing and include resolution. It is the Go counterpart of a
// classloader-style lookup context.
type ResourceResolver interface {
	// OpenResource opens the named resource for reading. Implementations
	// return an error wrapping ErrResourceNotFound when the resource does
	// not exist.
	OpenResource(name string) (io.ReadCloser, error)
}

type fsResolver struct {
	fsys fs.FS
}

// FSResolver wraps an fs.FS (embed.FS, os.DirFS, fstest.MapFS, ...) as a
// ResourceResolver. The returned resolver is comparable, so copy-on-write
// identity checks on ParseOptions work with it.
func FSResolver(fsys fs.FS) ResourceResolver {
	return &fsResolver{fsys: fsys}
}

func (r *fsResolver) OpenResource(name string) (io.ReadCloser, error) {
	f, err := r.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, name)
		}
		return nil, err
	}
	return f, nil
}

type osResolver struct{}

// OSResolver resolves resource names as paths against the process working
// directory. It is the initial ambient resolver.
func OSResolver() ResourceResolver {
	return osResolver{}
}

func (osResolver) OpenResource(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, name)
		}
		return nil, err
	}
	return f, nil
}

var (
	ambientMu       sync.RWMutex
	ambientResolver ResourceResolver = osResolver{}
)

// AmbientResolver returns the process-wide default resolver used when parse
// options carry no explicit one. Never returns nil.
func AmbientResolver() ResourceResolver {
	ambientMu.RLock()
	defer ambientMu.RUnlock()

	return ambientResolver
}

// SetAmbientResolver replaces the process-wide default resolver. Passing nil
// restores the OS resolver. Options values never cache the ambient resolver,
// so the change is visible to every subsequent Resolver() call on options
// with no explicit resolver set.
func SetAmbientResolver(r ResourceResolver) {
	if r == nil {
		r = osResolver{}
	}

	ambientMu.Lock()
	ambientResolver = r
	ambientMu.Unlock()
}
