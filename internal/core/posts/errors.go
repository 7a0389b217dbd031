package posts

import (
	"errors"
	"fmt"
)

// Sentinel errors for common post operations
var (
	// ErrUnauthorized is returned when a mutating call presents a missing or
	// wrong admin token
	ErrUnauthorized = errors.New("unauthorized: invalid admin token")

	// ErrNotFound is returned when an operation references an id absent from
	// the store
	ErrNotFound = errors.New("post not found")
)

// StoreError wraps a failure from the backing store. The upstream message is
// kept verbatim; the single-admin caller sees it as-is.
type StoreError struct {
	Op  string // "list", "create", "update", "delete"
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store unavailable (%s): %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// NewStoreError wraps a backing-store failure for the given operation.
func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// IsStoreUnavailable checks if error is a backing-store failure
func IsStoreUnavailable(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}

// UploadError wraps a failure from the object store. The whole create/update
// call aborts on it; no record is persisted.
type UploadError struct {
	Key string
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload failed (%s): %v", e.Key, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// NewUploadError wraps an object-store failure for the given object key.
func NewUploadError(key string, err error) error {
	return &UploadError{Key: key, Err: err}
}

// IsUploadFailed checks if error is an object-store failure
func IsUploadFailed(err error) bool {
	var uploadErr *UploadError
	return errors.As(err, &uploadErr)
}

// IsNotFound checks if error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized checks if error is an authorization failure
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
