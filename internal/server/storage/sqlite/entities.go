package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tabdeck/tabdeck/internal/models"
	"github.com/tabdeck/tabdeck/internal/server/storage"
)

// Apply applies one mutation to the entities table
func (s *Storage) Apply(ctx context.Context, mutation *models.MutationRecord) error {
	now := time.Now().Unix()

	switch mutation.Operation {
	case models.OpCreate:
		return s.applyCreate(ctx, mutation, now)
	case models.OpUpdate, models.OpReorder:
		return s.applyUpdate(ctx, mutation, now)
	case models.OpDelete:
		return s.applyDelete(ctx, mutation)
	default:
		return fmt.Errorf("unknown operation: %s", mutation.Operation)
	}
}

// applyCreate inserts the entity. A create replayed after a retried pass
// finds the row already present and does nothing.
func (s *Storage) applyCreate(ctx context.Context, mutation *models.MutationRecord, now int64) error {
	query := `
		INSERT INTO entities (entity_type, id, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (entity_type, id) DO NOTHING
	`

	payload := mutation.Payload
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	_, err := s.db.ExecContext(ctx, query,
		string(mutation.EntityType),
		mutation.EntityID,
		string(payload),
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert entity: %w", err)
	}

	return nil
}

// applyUpdate overlays the mutation payload's top-level fields onto the
// stored document
func (s *Storage) applyUpdate(ctx context.Context, mutation *models.MutationRecord, now int64) error {
	existing, err := s.GetEntity(ctx, mutation.EntityType, mutation.EntityID)
	if err != nil {
		return err
	}

	merged, err := mergeDocuments(existing, mutation.Payload)
	if err != nil {
		return fmt.Errorf("failed to merge entity data: %w", err)
	}

	query := `
		UPDATE entities
		SET data = ?, updated_at = ?
		WHERE entity_type = ? AND id = ?
	`

	_, err = s.db.ExecContext(ctx, query,
		string(merged),
		now,
		string(mutation.EntityType),
		mutation.EntityID,
	)
	if err != nil {
		return fmt.Errorf("failed to update entity: %w", err)
	}

	return nil
}

// applyDelete removes the entity. Deleting an unknown entity is a no-op so
// a replayed delete stays idempotent.
func (s *Storage) applyDelete(ctx context.Context, mutation *models.MutationRecord) error {
	query := `DELETE FROM entities WHERE entity_type = ? AND id = ?`

	_, err := s.db.ExecContext(ctx, query, string(mutation.EntityType), mutation.EntityID)
	if err != nil {
		return fmt.Errorf("failed to delete entity: %w", err)
	}

	return nil
}

// GetEntity returns the stored JSON document for an entity
func (s *Storage) GetEntity(ctx context.Context, entityType models.EntityType, id string) ([]byte, error) {
	query := `SELECT data FROM entities WHERE entity_type = ? AND id = ?`

	var data string

	err := s.db.QueryRowContext(ctx, query, string(entityType), id).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEntityNotFound
		}
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}

	return []byte(data), nil
}

// ListEntities returns all documents of one entity type in creation order
func (s *Storage) ListEntities(ctx context.Context, entityType models.EntityType) ([][]byte, error) {
	query := `
		SELECT data FROM entities
		WHERE entity_type = ?
		ORDER BY created_at ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, string(entityType))
	if err != nil {
		return nil, fmt.Errorf("failed to query entities: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var docs [][]byte

	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan entity: %w", err)
		}

		docs = append(docs, []byte(data))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return docs, nil
}

// mergeDocuments overlays the top-level fields of patch onto base
func mergeDocuments(base, patch []byte) ([]byte, error) {
	merged := map[string]json.RawMessage{}
	if len(base) > 0 {
		if err := json.Unmarshal(base, &merged); err != nil {
			return nil, err
		}
	}

	overlay := map[string]json.RawMessage{}
	if len(patch) > 0 {
		if err := json.Unmarshal(patch, &overlay); err != nil {
			return nil, err
		}
	}

	for k, v := range overlay {
		merged[k] = v
	}

	return json.Marshal(merged)
}
