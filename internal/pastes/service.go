package pastes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pastebin-backend/internal/shared/ident"
)

const (
	defaultRecentLimit = 10
	maxRecentLimit     = 50

	// maxInsertAttempts bounds the generate-insert-regenerate loop used to
	// recover from id collisions.
	maxInsertAttempts = 5
)

const untitled = "Untitled"

// Service contains business logic for pastes.
type Service struct {
	Repo Repo
}

// Create stores a new paste. The title is trimmed and substituted with
// "Untitled" when empty; content is stored as given, since emptiness checks
// belong to the transport layer.
func (s *Service) Create(ctx context.Context, title, content string) (Paste, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = untitled
	}

	paste := Paste{
		Title:   title,
		Content: content,
	}

	for attempt := 0; attempt < maxInsertAttempts; attempt++ {
		paste.ID = ident.NewPasteID()
		paste.CreatedAt = time.Now().UTC()

		err := s.Repo.Insert(ctx, paste)
		if err == nil {
			return paste, nil
		}
		if !errors.Is(err, ErrConflict) {
			return Paste{}, err
		}
	}
	return Paste{}, fmt.Errorf("allocate paste id after %d attempts: %w", maxInsertAttempts, ErrConflict)
}

// Get returns a paste by id.
func (s *Service) Get(ctx context.Context, id string) (Paste, error) {
	return s.Repo.GetByID(ctx, id)
}

// Recent returns the newest pastes. The limit defaults to 10 and is clamped
// to 50 regardless of the caller-supplied value.
func (s *Service) Recent(ctx context.Context, limit int) ([]Paste, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	return s.Repo.ListRecent(ctx, limit)
}
