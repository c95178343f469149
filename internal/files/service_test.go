package files

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"pastebin-backend/internal/pastes"
	localblob "pastebin-backend/internal/shared/storage/blob/local"
)

const testMaxUploadBytes = 1024

func newTestService(t *testing.T) *Service {
	t.Helper()
	blobs, err := localblob.New(t.TempDir())
	if err != nil {
		t.Fatalf("new blob store: %v", err)
	}
	return &Service{
		Repo:           NewMemoryRepo(),
		Blobs:          blobs,
		Pastes:         &pastes.Service{Repo: pastes.NewMemoryRepo()},
		MaxUploadBytes: testMaxUploadBytes,
	}
}

func TestUploadDownloadRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	payload := []byte("0123456789")
	file, err := svc.Upload(ctx, "notes.txt", "", int64(len(payload)), bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if file.Size != 10 {
		t.Fatalf("expected size 10, got %d", file.Size)
	}
	if file.ContentType != "application/octet-stream" {
		t.Fatalf("expected defaulted content type, got %q", file.ContentType)
	}
	if len(file.ID) != 12 {
		t.Fatalf("expected 12-char id, got %q", file.ID)
	}
	if file.StorageKey != file.ID+".txt" {
		t.Fatalf("expected storage key %s.txt, got %q", file.ID, file.StorageKey)
	}

	rc, meta, err := svc.Download(ctx, file.ID)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	defer rc.Close()

	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("expected %q, got %q", payload, got)
	}
	if meta.OriginalName != "notes.txt" {
		t.Fatalf("expected originalName notes.txt, got %q", meta.OriginalName)
	}
}

func TestUploadKeepsClientContentType(t *testing.T) {
	svc := newTestService(t)

	file, err := svc.Upload(context.Background(), "a.json", "application/json", 2, strings.NewReader("{}"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if file.ContentType != "application/json" {
		t.Fatalf("expected application/json, got %q", file.ContentType)
	}
}

func TestUploadSizeBoundary(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	exact := bytes.Repeat([]byte("a"), testMaxUploadBytes)
	file, err := svc.Upload(ctx, "exact.bin", "application/octet-stream", int64(len(exact)), bytes.NewReader(exact))
	if err != nil {
		t.Fatalf("upload at the limit should succeed: %v", err)
	}
	if file.Size != testMaxUploadBytes {
		t.Fatalf("expected size %d, got %d", testMaxUploadBytes, file.Size)
	}

	over := bytes.Repeat([]byte("a"), testMaxUploadBytes+1)
	_, err = svc.Upload(ctx, "over.bin", "application/octet-stream", int64(len(over)), bytes.NewReader(over))
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge one byte over the limit, got %v", err)
	}
}

func TestUploadRejectsUnderdeclaredStream(t *testing.T) {
	svc := newTestService(t)

	// Declared size fits, the stream does not.
	over := bytes.Repeat([]byte("a"), testMaxUploadBytes+100)
	_, err := svc.Upload(context.Background(), "liar.bin", "", 10, bytes.NewReader(over))
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge for oversized stream, got %v", err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	file, err := svc.Upload(ctx, "victim.txt", "text/plain", 4, strings.NewReader("data"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	deleted, err := svc.Delete(ctx, file.ID)
	if err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if !deleted {
		t.Fatal("first delete should report true")
	}

	deleted, err = svc.Delete(ctx, file.ID)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if deleted {
		t.Fatal("second delete should report false")
	}

	if _, err := svc.Get(ctx, file.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound from Get after delete, got %v", err)
	}
	if _, _, err := svc.Download(ctx, file.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound from Download after delete, got %v", err)
	}
}

// conflictingRepo reports every id as free but rejects every insert, to
// exercise the blob cleanup path.
type conflictingRepo struct {
	*MemoryRepo
}

func (r *conflictingRepo) Insert(ctx context.Context, file StoredFile) error {
	return ErrConflict
}

func TestUploadCleansUpBlobWhenInsertFails(t *testing.T) {
	dir := t.TempDir()
	blobs, err := localblob.New(dir)
	if err != nil {
		t.Fatalf("new blob store: %v", err)
	}
	svc := &Service{
		Repo:           &conflictingRepo{MemoryRepo: NewMemoryRepo()},
		Blobs:          blobs,
		MaxUploadBytes: testMaxUploadBytes,
	}

	_, err = svc.Upload(context.Background(), "x.txt", "", 4, strings.NewReader("data"))
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestDownloadMissingBlobIsAFault(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	file, err := svc.Upload(ctx, "gone.txt", "", 4, strings.NewReader("data"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	// Remove the blob out from under the record.
	if err := svc.Blobs.Delete(ctx, file.StorageKey); err != nil {
		t.Fatalf("delete blob: %v", err)
	}

	_, _, err = svc.Download(ctx, file.ID)
	if err == nil {
		t.Fatal("expected an error for dangling metadata")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("dangling metadata must not read as not-found, got %v", err)
	}
}

func TestCreatePasteFromFile(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	file, err := svc.Upload(ctx, "report.pdf", "application/pdf", 6, strings.NewReader("%PDF-1"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	paste, err := svc.CreatePasteFromFile(ctx, file.ID, "My report", false)
	if err != nil {
		t.Fatalf("create paste from file: %v", err)
	}
	if paste.Title != "My report" {
		t.Fatalf("expected title My report, got %q", paste.Title)
	}
	for _, want := range []string{"[FILE ATTACHMENT]", "report.pdf", "application/pdf", file.ID} {
		if !strings.Contains(paste.Content, want) {
			t.Fatalf("summary missing %q:\n%s", want, paste.Content)
		}
	}

	got, err := svc.Pastes.Get(ctx, paste.ID)
	if err != nil {
		t.Fatalf("get created paste: %v", err)
	}
	if got.Content != paste.Content {
		t.Fatal("stored paste content differs from returned paste")
	}
}

func TestCreatePasteFromMissingFile(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreatePasteFromFile(context.Background(), "ffffffffffff", "t", false)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
