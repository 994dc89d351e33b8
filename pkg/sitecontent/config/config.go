// Package config builds a running service from explicit configuration. The
// concrete storage backend is constructed exactly once here and injected into
// the repositories; no other package inspects the environment.
package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/markasai/site-content/pkg/sitecontent"
	badgerstorage "github.com/markasai/site-content/pkg/sitecontent/storage/badger"
	fsstorage "github.com/markasai/site-content/pkg/sitecontent/storage/fs"
	memorystorage "github.com/markasai/site-content/pkg/sitecontent/storage/memory"
	s3storage "github.com/markasai/site-content/pkg/sitecontent/storage/s3"
)

// Option applies configuration to a ServerConfig instance.
type Option func(*ServerConfig) error

// Load constructs a ServerConfig by applying the supplied options on top of
// library defaults.
func Load(opts ...Option) (*ServerConfig, error) {
	cfg := defaults()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaults() ServerConfig {
	return ServerConfig{
		Port:        "8080",
		Environment: "development",
		Storage: StorageConfig{
			Type:   "memory",
			Config: map[string]interface{}{},
		},
	}
}

// ServerConfig represents server configuration for the site-content service
type ServerConfig struct {
	Port        string
	Environment string // development, production, testing

	// Storage configuration
	Storage StorageConfig
}

// StorageConfig represents configuration for the storage backend
type StorageConfig struct {
	Type   string // "memory", "fs", "badger", "s3"
	Config map[string]interface{}
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}

	switch c.Storage.Type {
	case "memory", "fs", "badger", "s3":
	default:
		return fmt.Errorf("unsupported storage type: %s", c.Storage.Type)
	}

	return nil
}

// BuildStore creates the configured storage backend. Durable backends are
// wrapped so failed writes degrade to memory-only persistence instead of
// surfacing to content operations. The returned ObjectLister is non-nil only
// for the s3 backend; media sync requires it.
func (c *ServerConfig) BuildStore() (sitecontent.Store, sitecontent.ObjectLister, error) {
	switch c.Storage.Type {
	case "memory":
		return memorystorage.New(), nil, nil

	case "fs":
		store, err := fsstorage.New(fsstorage.Config{
			BaseDir: getString(c.Storage.Config, "base_dir", "./data/content"),
		})
		if err != nil {
			return nil, nil, err
		}
		return sitecontent.NewFallbackStore(store), nil, nil

	case "badger":
		store, err := badgerstorage.New(badgerstorage.Config{
			DBPath: getString(c.Storage.Config, "db_path", "./data/badger"),
		})
		if err != nil {
			return nil, nil, err
		}
		return sitecontent.NewFallbackStore(store), nil, nil

	case "s3":
		store, err := s3storage.New(s3storage.Config{
			Region:                 getString(c.Storage.Config, "region", "us-east-1"),
			Bucket:                 getString(c.Storage.Config, "bucket", ""),
			AccessKeyID:            getString(c.Storage.Config, "access_key_id", ""),
			SecretAccessKey:        getString(c.Storage.Config, "secret_access_key", ""),
			Endpoint:               getString(c.Storage.Config, "endpoint", ""),
			UseSSL:                 getBool(c.Storage.Config, "use_ssl", true),
			UsePathStyle:           getBool(c.Storage.Config, "use_path_style", false),
			DocumentPrefix:         getString(c.Storage.Config, "document_prefix", "content/"),
			MediaPrefix:            getString(c.Storage.Config, "media_prefix", "media/"),
			PublicBaseURL:          getString(c.Storage.Config, "public_base_url", ""),
			CreateBucketIfNotExist: getBool(c.Storage.Config, "create_bucket_if_not_exist", false),
		})
		if err != nil {
			return nil, nil, err
		}
		return sitecontent.NewFallbackStore(store), store, nil

	default:
		return nil, nil, fmt.Errorf("unsupported storage type: %s", c.Storage.Type)
	}
}

// BuildRepositories builds the storage backend and the full repository set
// over it.
func (c *ServerConfig) BuildRepositories() (*sitecontent.Repositories, sitecontent.ObjectLister, error) {
	store, lister, err := c.BuildStore()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build storage backend: %w", err)
	}
	return sitecontent.NewRepositories(store), lister, nil
}

func getString(config map[string]interface{}, key string, defaultValue string) string {
	if value, exists := config[key]; exists {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return defaultValue
}

func getBool(config map[string]interface{}, key string, defaultValue bool) bool {
	if value, exists := config[key]; exists {
		if b, ok := value.(bool); ok {
			return b
		}
		if str, ok := value.(string); ok {
			if b, err := strconv.ParseBool(str); err == nil {
				return b
			}
		}
	}
	return defaultValue
}
