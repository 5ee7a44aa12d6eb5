package testutil

import (
	"errors"
	"testing"

	apperrors "billtracker/internal/errors"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertStorageError checks that err wraps a StorageError.
func AssertStorageError(t *testing.T, err error) {
	t.Helper()

	if err == nil {
		t.Fatal("expected a storage error, got nil")
	}

	var storageErr *apperrors.StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected *StorageError, got %T: %v", err, err)
	}
}
