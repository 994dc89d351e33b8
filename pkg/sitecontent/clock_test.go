package sitecontent

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is a minimal in-package Store for tests that need to reach
// unexported internals like nowFunc.
type memStore struct {
	data map[Key][]byte
}

func (s *memStore) Read(ctx context.Context, key Key) ([]byte, error) {
	data, ok := s.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return data, nil
}

func (s *memStore) Write(ctx context.Context, key Key, data []byte) error {
	s.data[key] = data
	return nil
}

func (s *memStore) Exists(ctx context.Context, key Key) (bool, error) {
	_, ok := s.data[key]
	return ok, nil
}

func TestSettingsUpdate_StampsUpdatedAt(t *testing.T) {
	fixed := time.Date(2025, time.July, 15, 10, 30, 0, 0, time.UTC)
	restore := nowFunc
	nowFunc = func() time.Time { return fixed }
	t.Cleanup(func() { nowFunc = restore })

	repo := NewSettingsRepository(&memStore{data: map[Key][]byte{}})

	updated, err := repo.Update(context.Background(), json.RawMessage(`{"tagline":"AI praktis"}`))
	require.NoError(t, err)
	assert.Equal(t, fixed, updated.UpdatedAt)

	// The stamp is on the persisted document, not just the return value.
	assert.Equal(t, fixed, repo.Get(context.Background()).UpdatedAt)
}
