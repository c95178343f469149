package files

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("id already exists")
	ErrTooLarge = errors.New("file exceeds maximum allowed size")
)
