package ident

import (
	"strings"
	"testing"
)

func TestNewPasteIDFormat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewPasteID()
		if len(id) != pasteIDLen {
			t.Fatalf("expected length %d, got %q", pasteIDLen, id)
		}
		for _, c := range id {
			if !strings.ContainsRune(pasteAlphabet, c) {
				t.Fatalf("unexpected character %q in id %q", c, id)
			}
		}
		seen[id] = true
	}
	if len(seen) < 990 {
		t.Fatalf("expected ~1000 distinct ids, got %d", len(seen))
	}
}

func TestNewFileIDFormat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewFileID()
		if len(id) != fileIDLen {
			t.Fatalf("expected length %d, got %q", fileIDLen, id)
		}
		for _, c := range id {
			if !strings.ContainsRune("0123456789abcdef", c) {
				t.Fatalf("unexpected character %q in id %q", c, id)
			}
		}
		seen[id] = true
	}
	if len(seen) != 1000 {
		t.Fatalf("expected 1000 distinct ids, got %d", len(seen))
	}
}
