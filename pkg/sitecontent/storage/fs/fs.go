// Package fs provides a filesystem document store for deployments with a
// persistent disk. Each key is one JSON file under the base directory, with
// an in-memory cache so repeated reads do not hit the disk.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/markasai/site-content/pkg/sitecontent"
)

// Config options for the filesystem store
type Config struct {
	BaseDir string // Base directory for document files
}

// Store is a filesystem implementation of the sitecontent.Store interface.
type Store struct {
	mu      sync.RWMutex
	baseDir string
	cache   map[sitecontent.Key][]byte
}

// New creates a new filesystem document store.
func New(config Config) (*Store, error) {
	if config.BaseDir == "" {
		return nil, errors.New("base directory is required")
	}

	if err := os.MkdirAll(config.BaseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}

	return &Store{
		baseDir: config.BaseDir,
		cache:   make(map[sitecontent.Key][]byte),
	}, nil
}

func (s *Store) path(key sitecontent.Key) string {
	return filepath.Join(s.baseDir, string(key)+".json")
}

// Read returns the document stored under key, preferring the cache.
func (s *Store) Read(ctx context.Context, key sitecontent.Key) ([]byte, error) {
	s.mu.RLock()
	data, cached := s.cache[key]
	s.mu.RUnlock()
	if cached {
		out := make([]byte, len(data))
		copy(out, data)
		return out, nil
	}

	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, sitecontent.ErrKeyNotFound
	} else if err != nil {
		return nil, &sitecontent.StorageError{Backend: "fs", Key: key, Op: "read", Err: err}
	}

	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Write persists data under key. The cache is updated first so the value is
// served for the rest of the process even if the disk write fails (for
// example on a read-only filesystem); the error is still returned for the
// caller's degrade policy.
func (s *Store) Write(ctx context.Context, key sitecontent.Key, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)

	s.mu.Lock()
	s.cache[key] = stored
	s.mu.Unlock()

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return &sitecontent.StorageError{Backend: "fs", Key: key, Op: "write", Err: err}
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return &sitecontent.StorageError{Backend: "fs", Key: key, Op: "write", Err: err}
	}
	return nil
}

// Exists reports whether the key is cached or its backing file is present.
func (s *Store) Exists(ctx context.Context, key sitecontent.Key) (bool, error) {
	s.mu.RLock()
	_, cached := s.cache[key]
	s.mu.RUnlock()
	if cached {
		return true, nil
	}

	_, err := os.Stat(s.path(key))
	if os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, &sitecontent.StorageError{Backend: "fs", Key: key, Op: "exists", Err: err}
	}
	return true, nil
}
