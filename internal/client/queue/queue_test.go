package queue

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabdeck/tabdeck/internal/client/storage"
	"github.com/tabdeck/tabdeck/internal/client/storage/boltdb"
	"github.com/tabdeck/tabdeck/internal/layout"
	"github.com/tabdeck/tabdeck/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func emptyLayout() *LayoutProviderMock {
	return &LayoutProviderMock{
		LayoutFunc: func(ctx context.Context) ([]models.Widget, models.Bounds, error) {
			return nil, models.Bounds{Columns: 4, Rows: 4}, nil
		},
	}
}

func newTestQueue(t *testing.T, layoutProvider LayoutProvider) *Queue {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "queue.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	if layoutProvider == nil {
		layoutProvider = emptyLayout()
	}
	return New(store, layoutProvider, testLogger())
}

func record(entityType models.EntityType, entityID string, op models.Operation, payload string) *models.MutationRecord {
	var raw json.RawMessage
	if payload != "" {
		raw = json.RawMessage(payload)
	}
	return &models.MutationRecord{
		EntityType: entityType,
		EntityID:   entityID,
		Operation:  op,
		Payload:    raw,
		CreatedAt:  time.Now().UTC(),
	}
}

func TestEnqueue_Create(t *testing.T) {
	q := newTestQueue(t, nil)
	ctx := context.Background()

	delta, err := q.Enqueue(ctx, record(models.EntityLink, "a", models.OpCreate, `{"title":"docs","url":"https://example.com"}`))
	require.NoError(t, err)
	assert.Equal(t, 1, delta)

	count, err := q.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestEnqueue_InvalidRecord(t *testing.T) {
	q := newTestQueue(t, nil)
	ctx := context.Background()

	_, err := q.Enqueue(ctx, record("bookmark", "a", models.OpCreate, ""))
	assert.ErrorIs(t, err, ErrInvalidRecord)

	_, err = q.Enqueue(ctx, record(models.EntityLink, "a", "rename", ""))
	assert.ErrorIs(t, err, ErrInvalidRecord)

	_, err = q.Enqueue(ctx, record(models.EntityLink, "", models.OpCreate, ""))
	assert.ErrorIs(t, err, ErrInvalidRecord)

	count, err := q.PendingCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestEnqueue_UpdateSupersedesUpdate(t *testing.T) {
	q := newTestQueue(t, nil)
	ctx := context.Background()

	_, err := q.Enqueue(ctx, record(models.EntityLink, "a", models.OpUpdate, `{"title":"first"}`))
	require.NoError(t, err)

	delta, err := q.Enqueue(ctx, record(models.EntityLink, "a", models.OpUpdate, `{"title":"second"}`))
	require.NoError(t, err)
	assert.Zero(t, delta)

	records, err := q.Drain(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.OpUpdate, records[0].Operation)
	assert.JSONEq(t, `{"title":"second"}`, string(records[0].Payload))
}

func TestEnqueue_UpdateMergesIntoPendingCreate(t *testing.T) {
	q := newTestQueue(t, nil)
	ctx := context.Background()

	_, err := q.Enqueue(ctx, record(models.EntityLink, "a", models.OpCreate, `{"title":"docs","url":"https://example.com"}`))
	require.NoError(t, err)

	delta, err := q.Enqueue(ctx, record(models.EntityLink, "a", models.OpUpdate, `{"title":"x"}`))
	require.NoError(t, err)
	assert.Zero(t, delta)

	records, err := q.Drain(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.OpCreate, records[0].Operation)
	assert.JSONEq(t, `{"title":"x","url":"https://example.com"}`, string(records[0].Payload))
}

// Queue [create(link A), reorder(widget B), update(link A)] coalesces to
// [merged-create(A), reorder(B)]: the update folds into the create, the
// reorder of a different entity is untouched.
func TestEnqueue_MixedEntitiesCoalesce(t *testing.T) {
	q := newTestQueue(t, nil)
	ctx := context.Background()

	_, err := q.Enqueue(ctx, record(models.EntityLink, "A", models.OpCreate, `{"title":"a"}`))
	require.NoError(t, err)

	_, err = q.Enqueue(ctx, record(models.EntityWidget, "B", models.OpReorder, `{"position":{"x":0,"y":0},"size":{"width":1,"height":1}}`))
	require.NoError(t, err)

	_, err = q.Enqueue(ctx, record(models.EntityLink, "A", models.OpUpdate, `{"title":"x"}`))
	require.NoError(t, err)

	records, err := q.Drain(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, models.OpCreate, records[0].Operation)
	assert.Equal(t, "A", records[0].EntityID)
	assert.JSONEq(t, `{"title":"x"}`, string(records[0].Payload))

	assert.Equal(t, models.OpReorder, records[1].Operation)
	assert.Equal(t, "B", records[1].EntityID)
}

func TestEnqueue_CreateThenDeleteCollapses(t *testing.T) {
	q := newTestQueue(t, nil)
	ctx := context.Background()

	_, err := q.Enqueue(ctx, record(models.EntityTag, "t1", models.OpCreate, `{"name":"work"}`))
	require.NoError(t, err)
	_, err = q.Enqueue(ctx, record(models.EntityTag, "t1", models.OpUpdate, `{"name":"home"}`))
	require.NoError(t, err)

	delta, err := q.Enqueue(ctx, record(models.EntityTag, "t1", models.OpDelete, ""))
	require.NoError(t, err)
	assert.Equal(t, -1, delta)

	count, err := q.PendingCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestEnqueue_DeleteSupersedesPendingEdits(t *testing.T) {
	q := newTestQueue(t, nil)
	ctx := context.Background()

	_, err := q.Enqueue(ctx, record(models.EntityLink, "a", models.OpUpdate, `{"title":"x"}`))
	require.NoError(t, err)
	_, err = q.Enqueue(ctx, record(models.EntityWidget, "a", models.OpReorder, `{"position":{"x":0,"y":0},"size":{"width":1,"height":1}}`))
	require.NoError(t, err)

	// Same entity id but different entity types: only the link records
	// coalesce with the link delete.
	delta, err := q.Enqueue(ctx, record(models.EntityLink, "a", models.OpDelete, ""))
	require.NoError(t, err)
	assert.Zero(t, delta)

	records, err := q.Drain(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, models.EntityWidget, records[0].EntityType)
	assert.Equal(t, models.OpDelete, records[1].Operation)
	assert.Equal(t, models.EntityLink, records[1].EntityType)
}

func TestEnqueue_ReorderSupersedesReorder(t *testing.T) {
	q := newTestQueue(t, nil)
	ctx := context.Background()

	_, err := q.Enqueue(ctx, record(models.EntityWidget, "w1", models.OpReorder, `{"position":{"x":0,"y":0},"size":{"width":2,"height":2}}`))
	require.NoError(t, err)

	delta, err := q.Enqueue(ctx, record(models.EntityWidget, "w1", models.OpReorder, `{"position":{"x":2,"y":2},"size":{"width":2,"height":2}}`))
	require.NoError(t, err)
	assert.Zero(t, delta)

	records, err := q.Drain(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)

	var geom models.WidgetGeometry
	require.NoError(t, json.Unmarshal(records[0].Payload, &geom))
	assert.Equal(t, models.Position{X: 2, Y: 2}, geom.Position)
}

func TestEnqueue_ReorderPlacementConflict(t *testing.T) {
	layoutProvider := &LayoutProviderMock{
		LayoutFunc: func(ctx context.Context) ([]models.Widget, models.Bounds, error) {
			return []models.Widget{
				{ID: "other", Position: models.Position{X: 0, Y: 0}, Size: models.Size{Width: 2, Height: 2}},
			}, models.Bounds{Columns: 4, Rows: 4}, nil
		},
	}
	q := newTestQueue(t, layoutProvider)
	ctx := context.Background()

	_, err := q.Enqueue(ctx, record(models.EntityWidget, "w1", models.OpReorder, `{"position":{"x":1,"y":1},"size":{"width":2,"height":2}}`))
	assert.ErrorIs(t, err, ErrPlacementConflict)

	count, err := q.PendingCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestEnqueue_ReorderIgnoresPendingDeleteWidget(t *testing.T) {
	layoutProvider := &LayoutProviderMock{
		LayoutFunc: func(ctx context.Context) ([]models.Widget, models.Bounds, error) {
			return []models.Widget{
				{ID: "doomed", Position: models.Position{X: 0, Y: 0}, Size: models.Size{Width: 2, Height: 2}},
			}, models.Bounds{Columns: 4, Rows: 4}, nil
		},
	}
	q := newTestQueue(t, layoutProvider)
	ctx := context.Background()

	_, err := q.Enqueue(ctx, record(models.EntityWidget, "doomed", models.OpDelete, ""))
	require.NoError(t, err)

	// The doomed widget's cells are free for placement purposes.
	_, err = q.Enqueue(ctx, record(models.EntityWidget, "w1", models.OpReorder, `{"position":{"x":0,"y":0},"size":{"width":2,"height":2}}`))
	assert.NoError(t, err)
}

func TestEnqueue_ReorderOwnCellsAllowed(t *testing.T) {
	layoutProvider := &LayoutProviderMock{
		LayoutFunc: func(ctx context.Context) ([]models.Widget, models.Bounds, error) {
			return []models.Widget{
				{ID: "w1", Position: models.Position{X: 0, Y: 0}, Size: models.Size{Width: 2, Height: 2}},
			}, models.Bounds{Columns: 4, Rows: 4}, nil
		},
	}
	q := newTestQueue(t, layoutProvider)

	// Resizing in place overlaps only the widget itself.
	_, err := q.Enqueue(context.Background(), record(models.EntityWidget, "w1", models.OpReorder, `{"position":{"x":0,"y":0},"size":{"width":3,"height":2}}`))
	assert.NoError(t, err)
}

func TestEnqueue_ReorderInvalidGeometry(t *testing.T) {
	q := newTestQueue(t, nil)
	ctx := context.Background()

	_, err := q.Enqueue(ctx, record(models.EntityWidget, "w1", models.OpReorder, `{"position":{"x":0,"y":0},"size":{"width":0,"height":2}}`))
	assert.ErrorIs(t, err, layout.ErrInvalidGeometry)

	// Out-of-bounds placement on a 4x4 grid
	_, err = q.Enqueue(ctx, record(models.EntityWidget, "w1", models.OpReorder, `{"position":{"x":3,"y":0},"size":{"width":2,"height":2}}`))
	assert.ErrorIs(t, err, layout.ErrInvalidGeometry)
}

func TestEnqueue_StorageFailureSurfaces(t *testing.T) {
	storageErr := errors.New("disk full")
	mockStorage := &storage.QueueStorageMock{
		ListFunc: func(ctx context.Context) ([]*models.MutationRecord, error) {
			return nil, nil
		},
		EnqueueFunc: func(ctx context.Context, record *models.MutationRecord, supersededIDs []uint64) (*models.MutationRecord, error) {
			return nil, storageErr
		},
	}
	q := New(mockStorage, emptyLayout(), testLogger())

	_, err := q.Enqueue(context.Background(), record(models.EntityLink, "a", models.OpCreate, `{}`))
	assert.ErrorIs(t, err, storageErr)
}

func TestMarkFailed(t *testing.T) {
	q := newTestQueue(t, nil)
	ctx := context.Background()

	_, err := q.Enqueue(ctx, record(models.EntityLink, "a", models.OpCreate, `{}`))
	require.NoError(t, err)

	records, err := q.Drain(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)

	require.NoError(t, q.MarkFailed(ctx, records[0].ID, "connection reset"))
	require.NoError(t, q.MarkFailed(ctx, records[0].ID, "timeout"))

	records, err = q.Drain(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 2, records[0].Attempts)
	assert.Equal(t, "timeout", records[0].LastError)

	err = q.MarkFailed(ctx, 999, "nope")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestRemove(t *testing.T) {
	q := newTestQueue(t, nil)
	ctx := context.Background()

	_, err := q.Enqueue(ctx, record(models.EntityLink, "a", models.OpCreate, `{}`))
	require.NoError(t, err)

	records, err := q.Drain(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)

	require.NoError(t, q.Remove(ctx, records[0].ID))

	count, err := q.PendingCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
