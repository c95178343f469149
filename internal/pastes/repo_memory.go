package pastes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo. Contents are lost on
// restart; it backs dev and test runs where no Mongo is configured.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Paste
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Paste),
	}
}

// Insert stores a new paste, rejecting duplicate ids.
func (r *MemoryRepo) Insert(ctx context.Context, paste Paste) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.data[paste.ID]; exists {
		return ErrConflict
	}
	r.data[paste.ID] = paste
	return nil
}

// GetByID returns a paste by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Paste, error) {
	if err := ctx.Err(); err != nil {
		return Paste{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	paste, ok := r.data[id]
	if !ok {
		return Paste{}, ErrNotFound
	}
	return paste, nil
}

// ListRecent returns pastes newest first, honoring limit. Creation-time ties
// break on id so ordering is stable within one instance.
func (r *MemoryRepo) ListRecent(ctx context.Context, limit int) ([]Paste, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return []Paste{}, nil
	}

	r.mu.RLock()
	out := make([]Paste, 0, len(r.data))
	for _, paste := range r.data {
		out = append(out, paste)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
