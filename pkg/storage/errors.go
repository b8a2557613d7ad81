package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrInvalidName is returned when a result name is empty or would escape
	// the store, e.g. because it contains a path separator.
	ErrInvalidName = errors.New("invalid result name")
	// ErrNotResult is returned when a name does not carry the result suffix.
	ErrNotResult = errors.New("not a result file")
)
