package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"pastebin-backend/internal/pastes"
	"pastebin-backend/internal/shared/ident"
	"pastebin-backend/internal/shared/storage/blob"
	"pastebin-backend/internal/shared/telemetry"
)

const defaultContentType = "application/octet-stream"

// maxIDAttempts bounds the existence-check-and-regenerate loop for file ids.
const maxIDAttempts = 5

// Service contains business logic for files. It owns the pairing between
// metadata records and blobs: a blob is written before its record and deleted
// before it, so a crash mid-operation can leave a dangling record (re-deletable)
// but never an unreachable blob.
type Service struct {
	Repo           Repo
	Blobs          blob.Store
	Pastes         *pastes.Service
	MaxUploadBytes int64
}

// Upload stores the stream in the blob store and persists a metadata record.
// declaredSize is the client-declared byte count; streams that turn out
// larger than the configured maximum are rejected as well.
func (s *Service) Upload(ctx context.Context, originalName, contentType string, declaredSize int64, r io.Reader) (StoredFile, error) {
	if declaredSize > s.MaxUploadBytes {
		return StoredFile{}, fmt.Errorf("%w: %d bytes, maximum is %d", ErrTooLarge, declaredSize, s.MaxUploadBytes)
	}

	contentType = strings.TrimSpace(contentType)
	if contentType == "" {
		contentType = defaultContentType
	}

	id, err := s.allocateID(ctx)
	if err != nil {
		return StoredFile{}, err
	}
	storageKey := id + filepath.Ext(originalName)

	// Cap the stream one byte past the maximum so an understated
	// declaredSize cannot smuggle in an oversized payload.
	written, err := s.Blobs.Write(ctx, storageKey, io.LimitReader(r, s.MaxUploadBytes+1))
	if err != nil {
		return StoredFile{}, err
	}
	if written > s.MaxUploadBytes {
		s.removeBlob(ctx, id, storageKey)
		return StoredFile{}, fmt.Errorf("%w: stream exceeds maximum of %d bytes", ErrTooLarge, s.MaxUploadBytes)
	}

	file := StoredFile{
		ID:           id,
		OriginalName: originalName,
		ContentType:  contentType,
		Size:         written,
		UploadedAt:   time.Now().UTC(),
		StorageKey:   storageKey,
	}

	if err := s.Repo.Insert(ctx, file); err != nil {
		s.removeBlob(ctx, id, storageKey)
		return StoredFile{}, err
	}
	return file, nil
}

// Get returns the metadata record for a file.
func (s *Service) Get(ctx context.Context, id string) (StoredFile, error) {
	return s.Repo.GetByID(ctx, id)
}

// Download resolves the metadata record and opens its blob. A record whose
// blob is missing is a storage fault, not a not-found.
func (s *Service) Download(ctx context.Context, id string) (io.ReadCloser, StoredFile, error) {
	file, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, StoredFile{}, err
	}

	rc, err := s.Blobs.Open(ctx, file.StorageKey)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			return nil, StoredFile{}, fmt.Errorf("blob missing for file %s key %s", id, file.StorageKey)
		}
		return nil, StoredFile{}, err
	}
	return rc, file, nil
}

// Delete removes the blob and then the metadata record, reporting whether the
// record existed. The blob goes first so an interrupted delete leaves a
// dangling record that a retry can clean up, never an orphaned blob. An
// already-absent blob counts as deleted.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	file, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := s.Blobs.Delete(ctx, file.StorageKey); err != nil {
		return false, err
	}
	return s.Repo.Delete(ctx, id)
}

// CreatePasteFromFile creates a paste whose content is a rendered summary of
// an existing file's metadata. includeContent is accepted for request
// compatibility; the summary is all that is ever rendered.
func (s *Service) CreatePasteFromFile(ctx context.Context, fileID, title string, includeContent bool) (pastes.Paste, error) {
	_ = includeContent

	file, err := s.Repo.GetByID(ctx, fileID)
	if err != nil {
		return pastes.Paste{}, err
	}
	return s.Pastes.Create(ctx, title, renderAttachmentSummary(file))
}

// allocateID draws fresh ids until one is unused. Insert still enforces
// uniqueness, so losing a race here surfaces as ErrConflict from Upload.
func (s *Service) allocateID(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := ident.NewFileID()
		_, err := s.Repo.GetByID(ctx, id)
		if errors.Is(err, ErrNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("allocate file id after %d attempts: %w", maxIDAttempts, ErrConflict)
}

// removeBlob is the best-effort cleanup for a blob whose metadata never made
// it in. Failure only costs disk space, so it is logged and swallowed.
func (s *Service) removeBlob(ctx context.Context, id, storageKey string) {
	if err := s.Blobs.Delete(ctx, storageKey); err != nil {
		telemetry.Warn("upload.cleanup_failed", map[string]any{
			"file_id":     id,
			"storage_key": storageKey,
			"error":       err.Error(),
		})
	}
}

func renderAttachmentSummary(file StoredFile) string {
	return fmt.Sprintf(
		"[FILE ATTACHMENT]\nFile: %s\nSize: %.2f KB\nType: %s\nUploaded: %s\n\nFile ID: %s",
		file.OriginalName,
		float64(file.Size)/1024.0,
		file.ContentType,
		file.UploadedAt.Format(time.RFC1123),
		file.ID,
	)
}
