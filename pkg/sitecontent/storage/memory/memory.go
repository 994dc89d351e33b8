// Package memory provides an in-memory document store for ephemeral
// deployments where data is not expected to survive a process restart.
package memory

import (
	"context"
	"sync"

	"github.com/markasai/site-content/pkg/sitecontent"
)

// Store is an in-memory implementation of the sitecontent.Store interface.
// The mutex protects map integrity only; read-modify-write sequences at the
// repository layer remain last-write-wins at document granularity.
type Store struct {
	mu        sync.RWMutex
	documents map[sitecontent.Key][]byte
}

// New creates a new in-memory document store.
func New() *Store {
	return &Store{
		documents: make(map[sitecontent.Key][]byte),
	}
}

// Read returns the document stored under key.
func (s *Store) Read(ctx context.Context, key sitecontent.Key) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, exists := s.documents[key]
	if !exists {
		return nil, sitecontent.ErrKeyNotFound
	}
	// Copy so callers cannot mutate the stored document.
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Write persists data under key, replacing any previous value.
func (s *Store) Write(ctx context.Context, key sitecontent.Key, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.documents[key] = stored
	return nil
}

// Exists reports whether a value has been written for key.
func (s *Store) Exists(ctx context.Context, key sitecontent.Key) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.documents[key]
	return exists, nil
}
