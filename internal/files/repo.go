package files

import "context"

// Repo defines persistence operations for file metadata records.
type Repo interface {
	// Insert adds a new record and returns ErrConflict if the id is taken.
	Insert(ctx context.Context, file StoredFile) error
	// GetByID returns the record or ErrNotFound.
	GetByID(ctx context.Context, id string) (StoredFile, error)
	// Delete removes the record and reports whether it existed. Concurrent
	// deletes of the same id must yield at most one true.
	Delete(ctx context.Context, id string) (bool, error)
}
