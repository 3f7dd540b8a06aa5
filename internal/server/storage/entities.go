package storage

import (
	"context"

	"github.com/tabdeck/tabdeck/internal/models"
)

// EntityStorage persists the server-side view of dashboard entities.
type EntityStorage interface {
	// Apply applies one mutation to the entity table. Creates are
	// idempotent: applying a create for an existing entity is a no-op.
	// Deletes of unknown entities are also a no-op. Updates and reorders
	// of unknown entities return ErrEntityNotFound.
	Apply(ctx context.Context, mutation *models.MutationRecord) error

	// GetEntity returns the stored JSON document for an entity, or
	// ErrEntityNotFound
	GetEntity(ctx context.Context, entityType models.EntityType, id string) ([]byte, error)

	// ListEntities returns the stored JSON documents of one entity type in
	// creation order
	ListEntities(ctx context.Context, entityType models.EntityType) ([][]byte, error)
}
