package sitecontent

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"
)

// Key addresses one JSON document in a Store. The set of keys is fixed: each
// content collection is persisted as a single document under its key.
type Key string

// Storage keys (typed).
const (
	KeyProducts     Key = "products"
	KeyBlogPosts    Key = "blog-posts"
	KeyCaseStudies  Key = "case-studies"
	KeyTestimonials Key = "testimonials"
	KeySettings     Key = "settings"
	KeyMediaFiles   Key = "media-files"
)

// Keys returns every known storage key.
func Keys() []Key {
	return []Key{KeyProducts, KeyBlogPosts, KeyCaseStudies, KeyTestimonials, KeySettings, KeyMediaFiles}
}

// Store defines the interface for document storage backends. A backend maps
// each Key to one serialized JSON document. Read returns ErrKeyNotFound when
// no value has been written; any other error is an I/O failure wrapped in
// *StorageError. Write overwrites unconditionally: there is no locking and no
// version check, so concurrent writers to the same key race and the last
// write wins. That is the documented behavior for this low-write-volume use.
type Store interface {
	// Read returns the document stored under key.
	Read(ctx context.Context, key Key) ([]byte, error)

	// Write persists data under key, replacing any previous value.
	Write(ctx context.Context, key Key, data []byte) error

	// Exists reports whether a value has been written for key.
	Exists(ctx context.Context, key Key) (bool, error)
}

// RemoteObject is one entry of the authoritative remote object listing.
type RemoteObject struct {
	Key  string
	URL  string
	Size int64
}

// ObjectLister lists the authoritative objects in the remote blob store.
// The s3 backend implements it; mediasync consumes it.
type ObjectLister interface {
	ListObjects(ctx context.Context) ([]RemoteObject, error)
}

// ReadDocument reads and decodes the document stored under key, seeding it
// with def on a miss. This is the single boundary where storage failures are
// downgraded: any read error is logged and treated as "key absent", falling
// through to the seed path so callers always get a usable value. The seeded
// default is persisted before it is returned.
func ReadDocument[T any](ctx context.Context, store Store, key Key, def T) T {
	data, err := store.Read(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			slog.Warn("storage read failed, seeding default", "key", key, "error", err)
		}
		WriteDocument(ctx, store, key, def)
		return def
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		slog.Warn("stored document is corrupt, seeding default", "key", key, "error", err)
		WriteDocument(ctx, store, key, def)
		return def
	}
	return out
}

// WriteDocument encodes and persists value under key. Write failures on a
// durable backend never abort the content operation: the fallback store keeps
// the value in memory for the rest of the process lifetime, and anything that
// still fails is only logged here.
func WriteDocument[T any](ctx context.Context, store Store, key Key, value T) {
	data, err := json.Marshal(value)
	if err != nil {
		slog.Error("document encode failed", "key", key, "error", err)
		return
	}
	if err := store.Write(ctx, key, data); err != nil {
		slog.Warn("storage write failed", "key", key, "error", err)
	}
}

// nowFunc is swapped in tests that need deterministic timestamps.
var nowFunc = time.Now
