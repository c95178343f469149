package files

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestMemoryRepoInsertRejectsDuplicates(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	file := StoredFile{ID: "abc123def456", OriginalName: "a.txt", Size: 1, UploadedAt: time.Now().UTC()}
	if err := repo.Insert(ctx, file); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if err := repo.Insert(ctx, file); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestMemoryRepoConcurrentDeletes(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	file := StoredFile{ID: "abc123def456", OriginalName: "a.txt", Size: 1, UploadedAt: time.Now().UTC()}
	if err := repo.Insert(ctx, file); err != nil {
		t.Fatalf("insert: %v", err)
	}

	const n = 10
	results := make(chan bool, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			deleted, err := repo.Delete(ctx, file.ID)
			if err != nil {
				t.Errorf("delete: %v", err)
				return
			}
			results <- deleted
		}()
	}
	wg.Wait()
	close(results)

	trues := 0
	for deleted := range results {
		if deleted {
			trues++
		}
	}
	if trues != 1 {
		t.Fatalf("expected exactly one successful delete, got %d", trues)
	}
}
