// Package engine ties the mutation queue, the drain service and the
// connectivity monitor into the single entry point an embedding host
// talks to.
package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tabdeck/tabdeck/internal/client/connectivity"
	"github.com/tabdeck/tabdeck/internal/client/queue"
	"github.com/tabdeck/tabdeck/internal/client/sync"
	"github.com/tabdeck/tabdeck/internal/models"
)

// Engine is the offline mutation engine facade.
type Engine struct {
	queue   *queue.Queue
	syncer  sync.Service
	monitor *connectivity.Monitor
	logger  *slog.Logger
	closers []io.Closer
}

// New wires an Engine from its already-constructed parts. The closers are
// released on Close in reverse order.
func New(
	q *queue.Queue,
	syncer sync.Service,
	monitor *connectivity.Monitor,
	logger *slog.Logger,
	closers ...io.Closer,
) *Engine {
	return &Engine{
		queue:   q,
		syncer:  syncer,
		monitor: monitor,
		logger:  logger,
		closers: closers,
	}
}

// Enqueue records a local mutation. It returns the change in the number of
// pending records the enqueue caused.
func (e *Engine) Enqueue(ctx context.Context, record *models.MutationRecord) (int, error) {
	return e.queue.Enqueue(ctx, record)
}

// PendingCount reports how many records wait for delivery.
func (e *Engine) PendingCount(ctx context.Context) (int, error) {
	return e.queue.PendingCount(ctx)
}

// SyncNow triggers a drain pass immediately, regardless of connectivity
// events. Concurrent callers share one pass.
func (e *Engine) SyncNow(ctx context.Context) (*sync.Result, error) {
	return e.syncer.ProcessPendingMutations(ctx)
}

// Handle feeds a connectivity event to the monitor.
func (e *Engine) Handle(ctx context.Context, event connectivity.Event) {
	e.monitor.Handle(ctx, event)
}

// IsOnline reports the last known connectivity state.
func (e *Engine) IsOnline() bool {
	return e.monitor.IsOnline()
}

// LastSyncResult returns the outcome of the most recent drain pass, or nil
// if none ran yet.
func (e *Engine) LastSyncResult() *sync.Result {
	return e.syncer.LastResult()
}

// NewEntityID issues an identifier for a locally created entity.
func (e *Engine) NewEntityID() string {
	return uuid.NewString()
}

// Close releases the engine's resources.
func (e *Engine) Close() error {
	var errs []error

	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
