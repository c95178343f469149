package files

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]StoredFile
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]StoredFile),
	}
}

// Insert stores a new record, rejecting duplicate ids.
func (r *MemoryRepo) Insert(ctx context.Context, file StoredFile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.data[file.ID]; exists {
		return ErrConflict
	}
	r.data[file.ID] = file
	return nil
}

// GetByID returns a record by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return StoredFile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	file, ok := r.data[id]
	if !ok {
		return StoredFile{}, ErrNotFound
	}
	return file, nil
}

// Delete removes a record and reports whether it existed. The write lock
// serializes racing deletes so only one caller observes the record.
func (r *MemoryRepo) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return false, nil
	}
	delete(r.data, id)
	return true, nil
}

var _ Repo = (*MemoryRepo)(nil)
