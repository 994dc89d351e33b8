package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// WithEnv applies environment variable overrides using the provided prefix.
//
// Environment variable mapping:
//
// Server:
//   PORT - Server port (default: "8080")
//   ENVIRONMENT - Runtime environment (default: "development")
//
// Storage:
//   STORAGE_URL - Storage connection string (one of):
//                 - "memory://" - In-memory storage (default; ephemeral hosts)
//                 - "file:///path/to/data" - JSON files on a persistent disk
//                 - "badger:///path/to/db" - Embedded BadgerDB
//                 - "s3://bucket?region=ap-southeast-1&endpoint=..." - S3 or
//                   an S3-compatible service
//
// The s3 scheme also reads AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and
// AWS_REGION when present.
func WithEnv(prefix string) Option {
	return func(c *ServerConfig) error {
		if v, ok := lookupEnv(prefix, "PORT"); ok && v != "" {
			c.Port = v
		}
		if v, ok := lookupEnv(prefix, "ENVIRONMENT"); ok && v != "" {
			c.Environment = v
		}

		return applyStorageEnv(prefix, c)
	}
}

// applyStorageEnv applies storage configuration from environment
func applyStorageEnv(prefix string, c *ServerConfig) error {
	storageURL, hasURL := lookupEnv(prefix, "STORAGE_URL")

	if !hasURL || storageURL == "" || storageURL == "memory" || storageURL == "memory://" {
		c.Storage = StorageConfig{Type: "memory", Config: map[string]interface{}{}}
		return nil
	}

	switch {
	case strings.HasPrefix(storageURL, "file://"):
		path := strings.TrimPrefix(storageURL, "file://")
		if path == "" {
			return fmt.Errorf("filesystem path cannot be empty in STORAGE_URL")
		}
		c.Storage = StorageConfig{
			Type:   "fs",
			Config: map[string]interface{}{"base_dir": path},
		}
		return nil

	case strings.HasPrefix(storageURL, "badger://"):
		path := strings.TrimPrefix(storageURL, "badger://")
		if path == "" {
			return fmt.Errorf("badger path cannot be empty in STORAGE_URL")
		}
		c.Storage = StorageConfig{
			Type:   "badger",
			Config: map[string]interface{}{"db_path": path},
		}
		return nil

	case strings.HasPrefix(storageURL, "s3://"):
		return applyS3Storage(storageURL, c)
	}

	return fmt.Errorf("unsupported STORAGE_URL format: %s (use 'memory://', 'file://...', 'badger://...', or 's3://...')", storageURL)
}

// applyS3Storage configures S3 storage from URL
// Format: s3://bucket?region=ap-southeast-1&endpoint=http://localhost:9000
func applyS3Storage(rawURL string, c *ServerConfig) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid s3 STORAGE_URL: %w", err)
	}
	if u.Host == "" {
		return fmt.Errorf("S3 bucket name cannot be empty in STORAGE_URL")
	}

	cfg := map[string]interface{}{
		"bucket": u.Host,
		"region": "us-east-1",
	}

	query := u.Query()
	for _, key := range []string{"region", "endpoint", "document_prefix", "media_prefix", "public_base_url"} {
		if v := query.Get(key); v != "" {
			cfg[key] = v
		}
	}
	if v := query.Get("use_path_style"); v != "" {
		cfg["use_path_style"] = v
	}

	if accessKey, ok := os.LookupEnv("AWS_ACCESS_KEY_ID"); ok && accessKey != "" {
		cfg["access_key_id"] = accessKey
	}
	if secretKey, ok := os.LookupEnv("AWS_SECRET_ACCESS_KEY"); ok && secretKey != "" {
		cfg["secret_access_key"] = secretKey
	}
	// An explicit region in the URL wins over the ambient AWS_REGION.
	if region, ok := os.LookupEnv("AWS_REGION"); ok && region != "" && query.Get("region") == "" {
		cfg["region"] = region
	}

	c.Storage = StorageConfig{Type: "s3", Config: cfg}
	return nil
}

func lookupEnv(prefix, key string) (string, bool) {
	return os.LookupEnv(prefix + key)
}
