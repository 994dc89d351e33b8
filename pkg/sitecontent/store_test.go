package sitecontent_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markasai/site-content/pkg/sitecontent"
	"github.com/markasai/site-content/pkg/sitecontent/storage/memory"
)

func TestReadDocument_SeedOnMiss(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	exists, err := store.Exists(ctx, sitecontent.KeyBlogPosts)
	require.NoError(t, err)
	assert.False(t, exists)

	def := []string{"a", "b"}
	got := sitecontent.ReadDocument(ctx, store, sitecontent.KeyBlogPosts, def)
	assert.Equal(t, def, got)

	// The seeded default is persisted before it is returned.
	exists, err = store.Exists(ctx, sitecontent.KeyBlogPosts)
	require.NoError(t, err)
	assert.True(t, exists)

	// A later read with a different default returns the stored value.
	got = sitecontent.ReadDocument(ctx, store, sitecontent.KeyBlogPosts, []string{"other"})
	assert.Equal(t, def, got)
}

func TestWriteDocument_Idempotence(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	value := map[string]string{"siteName": "MarkasAI"}
	sitecontent.WriteDocument(ctx, store, sitecontent.KeySettings, value)
	got := sitecontent.ReadDocument(ctx, store, sitecontent.KeySettings, map[string]string{})
	assert.Equal(t, value, got)

	sitecontent.WriteDocument(ctx, store, sitecontent.KeySettings, value)
	got = sitecontent.ReadDocument(ctx, store, sitecontent.KeySettings, map[string]string{})
	assert.Equal(t, value, got)
}

func TestReadDocument_CorruptDocument(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, sitecontent.KeyProducts, []byte("{not json")))

	def := []int{1, 2, 3}
	got := sitecontent.ReadDocument(ctx, store, sitecontent.KeyProducts, def)
	assert.Equal(t, def, got)

	// The default replaced the corrupt document.
	got = sitecontent.ReadDocument(ctx, store, sitecontent.KeyProducts, []int{})
	assert.Equal(t, def, got)
}

// failingStore simulates a durable backend with a broken write path.
type failingStore struct {
	inner    sitecontent.Store
	failRead bool
}

func (s *failingStore) Read(ctx context.Context, key sitecontent.Key) ([]byte, error) {
	if s.failRead {
		return nil, &sitecontent.StorageError{Backend: "test", Key: key, Op: "read", Err: errors.New("disk gone")}
	}
	return s.inner.Read(ctx, key)
}

func (s *failingStore) Write(ctx context.Context, key sitecontent.Key, data []byte) error {
	return &sitecontent.StorageError{Backend: "test", Key: key, Op: "write", Err: errors.New("read-only filesystem")}
}

func (s *failingStore) Exists(ctx context.Context, key sitecontent.Key) (bool, error) {
	return s.inner.Exists(ctx, key)
}

func TestFallbackStore_DegradesToMemory(t *testing.T) {
	primary := &failingStore{inner: memory.New()}
	store := sitecontent.NewFallbackStore(primary)
	ctx := context.Background()

	// The failed durable write never surfaces; the value is served from the
	// overlay for the rest of the process lifetime.
	err := store.Write(ctx, sitecontent.KeySettings, []byte(`{"siteName":"MarkasAI"}`))
	require.NoError(t, err)

	data, err := store.Read(ctx, sitecontent.KeySettings)
	require.NoError(t, err)
	assert.JSONEq(t, `{"siteName":"MarkasAI"}`, string(data))

	exists, err := store.Exists(ctx, sitecontent.KeySettings)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFallbackStore_SwallowedReadError(t *testing.T) {
	primary := &failingStore{inner: memory.New(), failRead: true}
	store := sitecontent.NewFallbackStore(primary)
	ctx := context.Background()

	// A read failure is treated as "key absent" at the boundary and seeds
	// the default.
	def := []string{"seeded"}
	got := sitecontent.ReadDocument(ctx, store, sitecontent.KeyTestimonials, def)
	assert.Equal(t, def, got)

	// The seed write degraded to the overlay, so the value sticks.
	got = sitecontent.ReadDocument(ctx, store, sitecontent.KeyTestimonials, []string{})
	assert.Equal(t, def, got)
}

func TestStorageError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &sitecontent.StorageError{Backend: "fs", Key: sitecontent.KeyProducts, Op: "write", Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "products")
	assert.Contains(t, err.Error(), "fs")
}
