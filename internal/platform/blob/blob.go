// Package blob stores uploaded media assets, pet and product photos
// mostly, behind a small driver-agnostic interface.
package blob

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrNotFound signals the requested object does not exist.
var ErrNotFound = errors.New("blob not found")

// Info describes a stored object.
type Info struct {
	Key          string
	Size         int64
	ContentType  string
	URL          string
	LastModified time.Time
}

// Store is the media storage port. Implementations must be safe for
// concurrent use.
type Store interface {
	// Put writes the object under key, replacing any previous content,
	// and returns its descriptor.
	Put(ctx context.Context, key, contentType string, r io.Reader) (Info, error)
	// Get streams the object. Callers close the reader.
	Get(ctx context.Context, key string) (Info, io.ReadCloser, error)
	// Delete removes the object. Deleting a missing key returns ErrNotFound.
	Delete(ctx context.Context, key string) error
}
