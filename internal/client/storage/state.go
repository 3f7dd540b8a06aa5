package storage

import "context"

//go:generate moq -out statestorage_mock.go . StateStorage

// StateStorage persists small pieces of client state across process
// restarts, such as the last known connectivity mode.
type StateStorage interface {
	// SaveOnline records whether the client was last in online mode
	SaveOnline(ctx context.Context, online bool) error

	// GetOnline reports the last recorded connectivity mode.
	// Returns false when no mode has been recorded yet.
	GetOnline(ctx context.Context) (bool, error)
}
