package models

import "errors"

var (
	// ErrNotFound means no row matched the primary key.
	ErrNotFound = errors.New("record not found")
	// ErrVersionConflict means the row exists but its version moved on.
	ErrVersionConflict = errors.New("record was modified by someone else")
)
