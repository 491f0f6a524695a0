package storage

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// ObjectStore is the blob backend for gallery images.
type ObjectStore interface {
	// Put stores the object under key and returns its public URL.
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

// --------------------------------------------------
// InMemoryStore
// --------------------------------------------------

// InMemoryStore keeps objects in a map. Test double for the R2 client.
type InMemoryStore struct {
	mu      sync.Mutex
	Objects map[string][]byte
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{Objects: make(map[string][]byte)}
}

func (s *InMemoryStore) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Objects[key] = data

	return fmt.Sprintf("mem://%s", key), nil
}

func (s *InMemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Objects, key)
	return nil
}
