package pastes

import "context"

// Repo defines persistence operations for pastes. Pastes are immutable and
// permanent, so there is no update or delete.
type Repo interface {
	// Insert adds a new paste and returns ErrConflict if the id is taken.
	Insert(ctx context.Context, paste Paste) error
	// GetByID returns the paste or ErrNotFound.
	GetByID(ctx context.Context, id string) (Paste, error)
	// ListRecent returns at most limit pastes ordered by CreatedAt descending.
	ListRecent(ctx context.Context, limit int) ([]Paste, error)
}
