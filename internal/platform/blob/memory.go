package blob

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps objects in process memory. Used when no S3 endpoint is
// configured and in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]memoryObject
}

type memoryObject struct {
	data         []byte
	contentType  string
	lastModified time.Time
}

// NewMemoryStore constructs an empty in-memory object store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: map[string]memoryObject{}}
}

// Put stores the object under key.
func (s *MemoryStore) Put(_ context.Context, key, contentType string, r io.Reader) (Info, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Info{}, err
	}
	obj := memoryObject{data: data, contentType: contentType, lastModified: time.Now().UTC()}
	s.mu.Lock()
	s.objects[key] = obj
	s.mu.Unlock()
	return s.info(key, obj), nil
}

// Get returns the stored object.
func (s *MemoryStore) Get(_ context.Context, key string) (Info, io.ReadCloser, error) {
	s.mu.RLock()
	obj, ok := s.objects[key]
	s.mu.RUnlock()
	if !ok {
		return Info{}, nil, ErrNotFound
	}
	return s.info(key, obj), io.NopCloser(bytes.NewReader(obj.data)), nil
}

// Delete removes the object.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[key]; !ok {
		return ErrNotFound
	}
	delete(s.objects, key)
	return nil
}

func (s *MemoryStore) info(key string, obj memoryObject) Info {
	return Info{
		Key:          key,
		Size:         int64(len(obj.data)),
		ContentType:  obj.contentType,
		URL:          fmt.Sprintf("memory://%s", key),
		LastModified: obj.lastModified,
	}
}
