package storage

import "errors"

// Common client storage errors
var (
	// ErrRecordNotFound indicates that a queued mutation record was not found
	ErrRecordNotFound = errors.New("mutation record not found")

	// ErrWidgetNotFound indicates that a widget was not found in the local replica
	ErrWidgetNotFound = errors.New("widget not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
