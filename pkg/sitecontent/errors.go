package sitecontent

import (
	"errors"
	"fmt"
)

// Error types
var (
	// ErrKeyNotFound indicates no value has been written for a storage key
	ErrKeyNotFound = errors.New("storage key not found")

	// ErrInvalidStatus indicates an unknown content status
	ErrInvalidStatus = errors.New("invalid content status")

	// ErrListingFailed indicates the remote object listing could not be fetched
	ErrListingFailed = errors.New("remote object listing failed")

	// ErrMalformedPartial indicates a partial update document that does not
	// decode against the entity, for example a field with the wrong type
	ErrMalformedPartial = errors.New("malformed partial document")
)

// StorageError represents an error related to storage backend operations
type StorageError struct {
	Backend string
	Key     Key
	Op      string
	Err     error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage operation %s failed for key %s on backend %s: %v", e.Op, e.Key, e.Backend, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
