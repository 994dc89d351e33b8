package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestS3Store_Configuration(t *testing.T) {
	t.Run("EmptyBucket", func(t *testing.T) {
		_, err := New(Config{Region: "us-east-1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bucket name is required")
	})

	t.Run("Defaults", func(t *testing.T) {
		store, err := New(Config{
			Bucket:          "test-bucket",
			AccessKeyID:     "test-key",
			SecretAccessKey: "test-secret",
		})
		require.NoError(t, err)
		require.NotNil(t, store)
		assert.Equal(t, "us-east-1", store.config.Region)
		assert.Equal(t, "content/", store.config.DocumentPrefix)
		assert.Equal(t, "media/", store.config.MediaPrefix)
	})

	t.Run("CustomPrefixes", func(t *testing.T) {
		store, err := New(Config{
			Bucket:          "test-bucket",
			AccessKeyID:     "test-key",
			SecretAccessKey: "test-secret",
			DocumentPrefix:  "docs/",
			MediaPrefix:     "uploads/",
		})
		require.NoError(t, err)
		assert.Equal(t, "docs/settings.json", store.objectKey("settings"))
	})
}

func TestS3Store_PublicURL(t *testing.T) {
	newStore := func(t *testing.T, config Config) *Store {
		t.Helper()
		config.Bucket = "markasai-content"
		config.AccessKeyID = "test-key"
		config.SecretAccessKey = "test-secret"
		store, err := New(config)
		require.NoError(t, err)
		return store
	}

	t.Run("PublicBaseURLWins", func(t *testing.T) {
		store := newStore(t, Config{
			Endpoint:      "http://localhost:9000",
			PublicBaseURL: "https://cdn.markasai.id/",
		})
		assert.Equal(t, "https://cdn.markasai.id/media/a.jpg", store.publicURL("media/a.jpg"))
	})

	t.Run("EndpointFallback", func(t *testing.T) {
		store := newStore(t, Config{Endpoint: "http://localhost:9000"})
		assert.Equal(t, "http://localhost:9000/markasai-content/media/a.jpg", store.publicURL("media/a.jpg"))
	})

	t.Run("VirtualHostedDefault", func(t *testing.T) {
		store := newStore(t, Config{Region: "ap-southeast-1"})
		assert.Equal(t,
			"https://markasai-content.s3.ap-southeast-1.amazonaws.com/media/a.jpg",
			store.publicURL("media/a.jpg"))
	})
}
