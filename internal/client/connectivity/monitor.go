// Package connectivity turns host-delivered environment events into sync
// triggers. The core registers no platform listeners itself: the host
// delivers typed events into a single entry point.
package connectivity

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/tabdeck/tabdeck/internal/client/sync"
)

// Event is a typed environment notification delivered by the host
type Event interface {
	connectivityEvent()
}

// ConnectivityChanged reports an offline/online transition
type ConnectivityChanged struct {
	Online bool
}

func (ConnectivityChanged) connectivityEvent() {}

// RemoteSyncCompleted reports that a background process already drained the
// queue remotely; local pending state only needs a refresh, not a drain.
type RemoteSyncCompleted struct{}

func (RemoteSyncCompleted) connectivityEvent() {}

// PendingCounter is the slice of the mutation queue the monitor refreshes
type PendingCounter interface {
	PendingCount(ctx context.Context) (int, error)
}

// Monitor tracks the offline/online state and triggers drain passes. It
// relies on the sync service's single-flight guarantee, so a race between a
// connectivity trigger and a manual sync never double-sends a record.
type Monitor struct {
	syncer  sync.Service
	queue   PendingCounter
	logger  *slog.Logger
	online  atomic.Bool
	pending atomic.Int64
}

// New creates a monitor with the given initial connectivity state
func New(syncer sync.Service, queue PendingCounter, logger *slog.Logger, initiallyOnline bool) *Monitor {
	m := &Monitor{
		syncer: syncer,
		queue:  queue,
		logger: logger,
	}
	m.online.Store(initiallyOnline)
	return m
}

// Handle processes one environment event. It returns after any triggered
// drain pass completes; hosts whose event loop must not block deliver
// events from a dedicated goroutine.
func (m *Monitor) Handle(ctx context.Context, event Event) {
	switch ev := event.(type) {
	case ConnectivityChanged:
		wasOnline := m.online.Swap(ev.Online)
		if wasOnline == ev.Online {
			return
		}
		m.logger.Info("connectivity changed", "online", ev.Online)
		if !ev.Online {
			return
		}

		// Exactly one trigger per offline-to-online transition.
		result, err := m.syncer.ProcessPendingMutations(ctx)
		if err != nil {
			m.logger.Error("drain pass after reconnect failed", "error", err)
			return
		}
		m.logger.Info("drain pass after reconnect completed",
			"synced", result.Synced, "failed", result.Failed)
		m.refreshPending(ctx)

	case RemoteSyncCompleted:
		// The remote side already applied the mutations; re-running the
		// drain would be wasted work.
		m.logger.Info("remote sync completed out-of-band")
		m.refreshPending(ctx)

	default:
		m.logger.Warn("ignoring unknown connectivity event")
	}
}

// IsOnline reports the last known connectivity state
func (m *Monitor) IsOnline() bool {
	return m.online.Load()
}

// LastKnownPending returns the pending count captured by the most recent
// refresh. The authoritative value is always PendingCounter.PendingCount;
// this one is for non-blocking indicators.
func (m *Monitor) LastKnownPending() int {
	return int(m.pending.Load())
}

func (m *Monitor) refreshPending(ctx context.Context) {
	count, err := m.queue.PendingCount(ctx)
	if err != nil {
		m.logger.Warn("failed to refresh pending count", "error", err)
		return
	}
	m.pending.Store(int64(count))
	m.logger.Debug("pending count refreshed", "pending", count)
}
