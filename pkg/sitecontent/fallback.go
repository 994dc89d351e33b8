package sitecontent

import (
	"context"
	"log/slog"
	"sync"
)

// fallbackStore decorates a durable Store with an in-memory overlay. When a
// write to the primary fails, the value is kept in the overlay and served
// from there for the rest of the process lifetime, so content operations
// degrade to memory-only persistence instead of surfacing the failure.
type fallbackStore struct {
	primary Store

	mu      sync.RWMutex
	overlay map[Key][]byte
}

// NewFallbackStore wraps primary so that failed writes degrade to memory-only
// persistence. Reads prefer the overlay for keys that have degraded; all other
// keys pass through to the primary.
func NewFallbackStore(primary Store) Store {
	return &fallbackStore{
		primary: primary,
		overlay: make(map[Key][]byte),
	}
}

func (s *fallbackStore) Read(ctx context.Context, key Key) ([]byte, error) {
	s.mu.RLock()
	data, degraded := s.overlay[key]
	s.mu.RUnlock()
	if degraded {
		return data, nil
	}
	return s.primary.Read(ctx, key)
}

func (s *fallbackStore) Write(ctx context.Context, key Key, data []byte) error {
	s.mu.RLock()
	_, degraded := s.overlay[key]
	s.mu.RUnlock()

	if !degraded {
		err := s.primary.Write(ctx, key, data)
		if err == nil {
			return nil
		}
		slog.Warn("durable write failed, degrading key to memory-only persistence", "key", key, "error", err)
	}

	s.mu.Lock()
	s.overlay[key] = data
	s.mu.Unlock()
	return nil
}

func (s *fallbackStore) Exists(ctx context.Context, key Key) (bool, error) {
	s.mu.RLock()
	_, degraded := s.overlay[key]
	s.mu.RUnlock()
	if degraded {
		return true, nil
	}
	return s.primary.Exists(ctx, key)
}
