// Package blob defines the contract for storing raw file payloads addressed
// by an opaque storage key, separate from the metadata backend.
package blob

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by Open when no blob exists for the key.
var ErrNotFound = errors.New("blob not found")

// Store defines the contract for saving, retrieving, and deleting blobs.
type Store interface {
	// Write stores the reader contents under key, overwriting any existing
	// blob, and returns the number of bytes written.
	Write(ctx context.Context, key string, r io.Reader) (int64, error)
	// Open returns a reader for the blob, or ErrNotFound if it is absent.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes the blob. Deleting an absent blob is not an error.
	Delete(ctx context.Context, key string) error
}

// ValidateKey rejects keys that could escape the storage area.
func ValidateKey(key string) error {
	clean := filepath.Clean(key)
	if clean == "" || clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return errors.New("invalid storage key")
	}
	return nil
}
