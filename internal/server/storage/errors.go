package storage

import "errors"

// Storage errors
var (
	// ErrEntityNotFound is returned when an update or reorder targets an
	// entity the server has never seen
	ErrEntityNotFound = errors.New("entity not found")
)
