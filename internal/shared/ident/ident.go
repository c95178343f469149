// Package ident generates the short identifiers handed out for pastes and
// files. Neither scheme checks the store for collisions; callers are expected
// to treat a duplicate-key insert as the signal to regenerate.
package ident

import (
	"encoding/hex"
	"math/rand/v2"

	"github.com/google/uuid"
)

const (
	pasteAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	pasteIDLen    = 8
	fileIDLen     = 12
)

// NewPasteID returns an 8-character identifier drawn uniformly from
// [A-Za-z0-9]. The space is 62^8 (~2.2e14), so collisions are birthday-bound
// rare but not impossible.
func NewPasteID() string {
	b := make([]byte, pasteIDLen)
	for i := range b {
		b[i] = pasteAlphabet[rand.IntN(len(pasteAlphabet))]
	}
	return string(b)
}

// NewFileID returns the first 12 hex characters of a random UUID, giving a
// 16^12 identifier space.
func NewFileID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])[:fileIDLen]
}
