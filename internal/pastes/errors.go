package pastes

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("id already exists")
)
