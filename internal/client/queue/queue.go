// Package queue implements the client-side mutation queue: edits made while
// offline are coalesced, validated against the locally-known layout, and
// persisted durably before the enqueue call returns.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/tabdeck/tabdeck/internal/client/storage"
	"github.com/tabdeck/tabdeck/internal/layout"
	"github.com/tabdeck/tabdeck/internal/models"
)

//go:generate moq -out layoutprovider_mock.go . LayoutProvider

// LayoutProvider supplies the locally-known widget layout. The layout is
// owned by the UI layer; the queue only reads it to validate placements.
type LayoutProvider interface {
	Layout(ctx context.Context) ([]models.Widget, models.Bounds, error)
}

var (
	// ErrInvalidRecord indicates an unknown entity type or operation, a
	// missing entity id, or an undecodable payload
	ErrInvalidRecord = errors.New("invalid mutation record")

	// ErrPlacementConflict indicates that a reorder would overlap an
	// already-placed widget
	ErrPlacementConflict = errors.New("placement conflicts with an existing widget")
)

// Queue buffers mutations on the client until the sync coordinator drains
// them. Enqueue operations are serialized: two edits issued in rapid
// succession are coalesced and persisted atomically with respect to each
// other.
type Queue struct {
	storage storage.QueueStorage
	layout  LayoutProvider
	logger  *slog.Logger
	mu      sync.Mutex
}

// New creates a new mutation queue over the given durable store
func New(queueStorage storage.QueueStorage, layoutProvider LayoutProvider, logger *slog.Logger) *Queue {
	return &Queue{
		storage: queueStorage,
		layout:  layoutProvider,
		logger:  logger,
	}
}

// Enqueue applies the coalescing rules, persists the resulting queue state,
// and returns the net change in queued record count:
//
//   - create appends a new record (+1)
//   - update merges into a pending create for the same entity, or supersedes
//     a pending update (0), or appends (+1)
//   - reorder supersedes a pending reorder (0) or appends (+1), after the
//     target geometry passes layout validation
//   - delete discards all pending records for the entity; if one of them is
//     a create the entity never reaches the sink and nothing is queued
//
// A storage failure fails the whole call: the edit is reported as not saved
// and the caller retries the user action.
func (q *Queue) Enqueue(ctx context.Context, record *models.MutationRecord) (int, error) {
	if err := validateRecord(record); err != nil {
		return 0, err
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	pending, err := q.storage.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read pending records: %w", err)
	}

	if record.Operation == models.OpReorder && record.EntityType == models.EntityWidget {
		if err := q.validateReorder(ctx, record, pending); err != nil {
			return 0, err
		}
	}

	same := make([]*models.MutationRecord, 0, 2)
	for _, p := range pending {
		if p.EntityKey() == record.EntityKey() {
			same = append(same, p)
		}
	}

	switch record.Operation {
	case models.OpCreate:
		if _, err := q.storage.Enqueue(ctx, record, nil); err != nil {
			return 0, fmt.Errorf("failed to enqueue create: %w", err)
		}
		return 1, nil

	case models.OpUpdate:
		// An update on a not-yet-synced entity folds into the pending
		// create, keeping the create's replay position.
		if create := findOperation(same, models.OpCreate); create != nil {
			merged, err := mergePayloads(create.Payload, record.Payload)
			if err != nil {
				return 0, err
			}
			create.Payload = merged
			if err := q.storage.Update(ctx, create); err != nil {
				return 0, fmt.Errorf("failed to merge update into pending create: %w", err)
			}
			return 0, nil
		}
		return q.supersedeSameKind(ctx, record, same)

	case models.OpReorder:
		return q.supersedeSameKind(ctx, record, same)

	case models.OpDelete:
		if len(same) == 0 {
			if _, err := q.storage.Enqueue(ctx, record, nil); err != nil {
				return 0, fmt.Errorf("failed to enqueue delete: %w", err)
			}
			return 1, nil
		}

		ids := make([]uint64, 0, len(same))
		for _, p := range same {
			ids = append(ids, p.ID)
		}

		if findOperation(same, models.OpCreate) != nil {
			// The entity was created offline and deleted before any sync:
			// it must never reach the sink.
			if err := q.storage.Discard(ctx, ids); err != nil {
				return 0, fmt.Errorf("failed to discard pending records: %w", err)
			}
			q.logger.Debug("collapsed create+delete to no-op",
				"entity_type", record.EntityType,
				"entity_id", record.EntityID,
				"discarded", len(ids))
			return -len(same), nil
		}

		if _, err := q.storage.Enqueue(ctx, record, ids); err != nil {
			return 0, fmt.Errorf("failed to enqueue delete: %w", err)
		}
		return 1 - len(same), nil
	}

	return 0, fmt.Errorf("%w: operation %q", ErrInvalidRecord, record.Operation)
}

// supersedeSameKind replaces a pending record of the same operation kind on
// the same entity, bounding the queue to one outstanding edit per
// field-group per entity.
func (q *Queue) supersedeSameKind(ctx context.Context, record *models.MutationRecord, same []*models.MutationRecord) (int, error) {
	if prev := findOperation(same, record.Operation); prev != nil {
		if _, err := q.storage.Enqueue(ctx, record, []uint64{prev.ID}); err != nil {
			return 0, fmt.Errorf("failed to supersede record %d: %w", prev.ID, err)
		}
		return 0, nil
	}

	if _, err := q.storage.Enqueue(ctx, record, nil); err != nil {
		return 0, fmt.Errorf("failed to enqueue %s: %w", record.Operation, err)
	}
	return 1, nil
}

// validateReorder checks the target geometry against the locally-known
// layout. A widget with a pending delete no longer occupies its cells.
func (q *Queue) validateReorder(ctx context.Context, record *models.MutationRecord, pending []*models.MutationRecord) error {
	var geom models.WidgetGeometry
	if err := json.Unmarshal(record.Payload, &geom); err != nil {
		return fmt.Errorf("%w: undecodable reorder payload: %w", ErrInvalidRecord, err)
	}

	if geom.Size.Width <= 0 || geom.Size.Height <= 0 {
		return layout.ErrInvalidGeometry
	}

	widgets, bounds, err := q.layout.Layout(ctx)
	if err != nil {
		return fmt.Errorf("failed to read local layout: %w", err)
	}

	candidate := models.Widget{
		ID:       record.EntityID,
		Position: geom.Position,
		Size:     geom.Size,
	}
	if !layout.IsWithinBounds(candidate, bounds) {
		return layout.ErrInvalidGeometry
	}

	pendingDelete := make(map[string]bool)
	for _, p := range pending {
		if p.EntityType == models.EntityWidget && p.Operation == models.OpDelete {
			pendingDelete[p.EntityID] = true
		}
	}

	for _, w := range widgets {
		if w.ID == record.EntityID || pendingDelete[w.ID] {
			continue
		}
		if layout.Overlaps(candidate, w) {
			return fmt.Errorf("%w: widget %s", ErrPlacementConflict, w.ID)
		}
	}

	return nil
}

// PendingCount returns the current queue length after coalescing
func (q *Queue) PendingCount(ctx context.Context) (int, error) {
	return q.storage.Count(ctx)
}

// Drain returns all pending records in creation order without removing
// them. Removal stays the caller's responsibility after a successful sink
// call so a crash mid-sync never loses records.
func (q *Queue) Drain(ctx context.Context) ([]*models.MutationRecord, error) {
	return q.storage.List(ctx)
}

// Remove deletes a record after it was applied by the sink
func (q *Queue) Remove(ctx context.Context, id uint64) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.storage.Remove(ctx, id)
}

// MarkFailed increments a record's attempt counter and stores the failure
// reason; the record keeps its replay position.
func (q *Queue) MarkFailed(ctx context.Context, id uint64, reason string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	pending, err := q.storage.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to read pending records: %w", err)
	}

	for _, record := range pending {
		if record.ID != id {
			continue
		}
		record.Attempts++
		record.LastError = reason
		if err := q.storage.Update(ctx, record); err != nil {
			return fmt.Errorf("failed to mark record %d failed: %w", id, err)
		}
		return nil
	}

	return storage.ErrRecordNotFound
}

// validateRecord rejects records the queue could never replay
func validateRecord(record *models.MutationRecord) error {
	if record == nil {
		return fmt.Errorf("%w: nil record", ErrInvalidRecord)
	}
	if !models.KnownEntityType(record.EntityType) {
		return fmt.Errorf("%w: entity type %q", ErrInvalidRecord, record.EntityType)
	}
	if !models.KnownOperation(record.Operation) {
		return fmt.Errorf("%w: operation %q", ErrInvalidRecord, record.Operation)
	}
	if record.EntityID == "" {
		return fmt.Errorf("%w: empty entity id", ErrInvalidRecord)
	}
	return nil
}

// findOperation returns the first record with the given operation, nil if none
func findOperation(records []*models.MutationRecord, op models.Operation) *models.MutationRecord {
	for _, r := range records {
		if r.Operation == op {
			return r
		}
	}
	return nil
}

// mergePayloads overlays the top-level fields of diff onto base. Both sides
// must be JSON objects (or empty).
func mergePayloads(base, diff json.RawMessage) (json.RawMessage, error) {
	merged := map[string]any{}
	if len(base) > 0 {
		if err := json.Unmarshal(base, &merged); err != nil {
			return nil, fmt.Errorf("%w: base payload is not an object: %w", ErrInvalidRecord, err)
		}
	}

	overlay := map[string]any{}
	if len(diff) > 0 {
		if err := json.Unmarshal(diff, &overlay); err != nil {
			return nil, fmt.Errorf("%w: update payload is not an object: %w", ErrInvalidRecord, err)
		}
	}

	for k, v := range overlay {
		merged[k] = v
	}

	out, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal merged payload: %w", err)
	}
	return out, nil
}
