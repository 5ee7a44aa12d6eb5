// Package errors defines the error types used across the service. The only
// distinguished kind is StorageError: any failure surfaced by the
// persistence gateway. Handlers treat every error identically, so nothing
// finer-grained is needed.
package errors

import "fmt"

// StorageError wraps a database failure with the gateway operation that
// produced it. The underlying error is preserved for errors.Is/As.
type StorageError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying database error.
func (e *StorageError) Unwrap() error { return e.Err }

// Storage wraps err as a StorageError for the named operation. It returns
// nil when err is nil so repositories can wrap return values directly.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
