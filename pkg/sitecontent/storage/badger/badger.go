// Package badger provides an embedded key-value document store backed by
// BadgerDB, for single-node deployments that want local durability without a
// filesystem of loose JSON files.
package badger

import (
	"context"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/markasai/site-content/pkg/sitecontent"
)

// Config options for the badger store
type Config struct {
	DBPath string // Directory for the badger database files
}

// Store is a BadgerDB implementation of the sitecontent.Store interface.
type Store struct {
	db *badger.DB
}

// New opens (creating if needed) a badger database at the configured path.
func New(config Config) (*Store, error) {
	if config.DBPath == "" {
		return nil, errors.New("database path is required")
	}

	opts := badger.DefaultOptions(config.DBPath)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Read returns the document stored under key.
func (s *Store) Read(ctx context.Context, key sitecontent.Key) ([]byte, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, sitecontent.ErrKeyNotFound
	} else if err != nil {
		return nil, &sitecontent.StorageError{Backend: "badger", Key: key, Op: "read", Err: err}
	}
	return data, nil
}

// Write persists data under key, replacing any previous value.
func (s *Store) Write(ctx context.Context, key sitecontent.Key, data []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return &sitecontent.StorageError{Backend: "badger", Key: key, Op: "write", Err: err}
	}
	return nil
}

// Exists reports whether a value has been written for key.
func (s *Store) Exists(ctx context.Context, key sitecontent.Key) (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(key))
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	} else if err != nil {
		return false, &sitecontent.StorageError{Backend: "badger", Key: key, Op: "exists", Err: err}
	}
	return true, nil
}
