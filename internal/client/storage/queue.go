package storage

import (
	"context"

	"github.com/tabdeck/tabdeck/internal/models"
)

//go:generate moq -out queuestorage_mock.go . QueueStorage

// QueueStorage defines durable, ordered storage for pending mutation records.
// It is the single source of truth for pending state: records survive process
// restarts and are replayed in the order their ids were assigned.
type QueueStorage interface {
	// Enqueue assigns the next sequence id to record, persists it, and
	// removes any superseded records in the same transaction so a crash
	// can never observe a half-coalesced queue. Returns the stored record
	// with its id set.
	Enqueue(ctx context.Context, record *models.MutationRecord, supersededIDs []uint64) (*models.MutationRecord, error)

	// Update rewrites an existing record in place, keeping its id and
	// therefore its replay position. Returns ErrRecordNotFound if the
	// record was already removed.
	Update(ctx context.Context, record *models.MutationRecord) error

	// Remove deletes a record by id.
	// Returns ErrRecordNotFound if it does not exist.
	Remove(ctx context.Context, id uint64) error

	// Discard deletes the given records in one transaction, ignoring ids
	// that no longer exist. Used when pending records collapse to nothing
	// (create followed by delete before any sync).
	Discard(ctx context.Context, ids []uint64) error

	// List returns all pending records in id order without removing them.
	List(ctx context.Context) ([]*models.MutationRecord, error)

	// Count returns the number of pending records.
	Count(ctx context.Context) (int, error)
}
