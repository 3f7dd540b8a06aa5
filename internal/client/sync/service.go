// Package sync drains the mutation queue against the remote sink. A drain
// pass is single-flight: concurrent triggers (user action, connectivity
// event, background notification) join the in-flight pass instead of
// double-sending records.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/tabdeck/tabdeck/internal/models"
)

const (
	// defaultFanOut bounds how many entity streams are sent concurrently
	defaultFanOut = 4

	// defaultRecordTimeout bounds a single sink call; a call that does not
	// complete in time counts as a retryable failure
	defaultRecordTimeout = 10 * time.Second
)

//go:generate moq -out sink_mock.go . Sink

// Sink delivers a single mutation record to the remote store. It must treat
// re-delivery of an already-applied create or update as a no-op success,
// since a retry may follow an ambiguous prior failure.
type Sink interface {
	ApplyMutation(ctx context.Context, record *models.MutationRecord) error
}

// PendingQueue is the slice of the mutation queue the coordinator drains
type PendingQueue interface {
	// Drain returns all pending records in creation order without removing them
	Drain(ctx context.Context) ([]*models.MutationRecord, error)

	// Remove deletes a record after the sink accepted or rejected it
	Remove(ctx context.Context, id uint64) error

	// MarkFailed records a retryable failure, keeping the record queued
	MarkFailed(ctx context.Context, id uint64, reason string) error
}

// Result contains the outcome of one drain pass. Failed counts records the
// sink rejected permanently; records awaiting retry are in neither count.
type Result struct {
	Synced int
	Failed int
}

//go:generate moq -out service_mock.go . Service

// Service defines the interface for the sync coordinator
type Service interface {
	// ProcessPendingMutations drains the queue against the remote sink.
	// If a pass is already running, the call joins it and returns that
	// pass's eventual result instead of starting a second one.
	ProcessPendingMutations(ctx context.Context) (*Result, error)

	// LastResult returns the result of the most recent completed drain
	// pass, nil before the first one.
	LastResult() *Result
}

// Options tune a sync service; zero values select defaults
type Options struct {
	FanOut        int
	RecordTimeout time.Duration
}

// service drains pending mutations against the remote sink
type service struct {
	queue         PendingQueue
	sink          Sink
	logger        *slog.Logger
	last          atomic.Pointer[Result]
	flight        singleflight.Group
	fanOut        int
	recordTimeout time.Duration
}

// NewService creates a new sync coordinator
func NewService(queue PendingQueue, sink Sink, logger *slog.Logger, opts Options) Service {
	if opts.FanOut <= 0 {
		opts.FanOut = defaultFanOut
	}
	if opts.RecordTimeout <= 0 {
		opts.RecordTimeout = defaultRecordTimeout
	}

	return &service{
		queue:         queue,
		sink:          sink,
		logger:        logger,
		fanOut:        opts.FanOut,
		recordTimeout: opts.RecordTimeout,
	}
}

// ProcessPendingMutations drains the queue, single-flight
func (s *service) ProcessPendingMutations(ctx context.Context) (*Result, error) {
	v, err, shared := s.flight.Do("drain", func() (any, error) {
		return s.drain(ctx)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("joined in-flight drain pass")
	}
	return v.(*Result), nil
}

// LastResult returns the most recent completed pass result
func (s *service) LastResult() *Result {
	return s.last.Load()
}

// drain runs one full pass over the queue. Every record ends up synced,
// kept for the next pass, or dropped as failed; individual sink errors
// never abort the pass.
func (s *service) drain(ctx context.Context) (*Result, error) {
	// A pass runs to completion even if the triggering caller goes away;
	// there is no mid-pass cancellation.
	ctx = context.WithoutCancel(ctx)

	records, err := s.queue.Drain(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read pending records: %w", err)
	}

	result := &Result{}
	if len(records) == 0 {
		s.last.Store(result)
		return result, nil
	}

	s.logger.Info("starting drain pass", "pending", len(records))

	// Records for one entity must reach the sink in creation order;
	// different entities may be sent concurrently up to the fan-out.
	keys := make([]string, 0, len(records))
	groups := make(map[string][]*models.MutationRecord)
	for _, record := range records {
		key := record.EntityKey()
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], record)
	}

	var synced, failed atomic.Int64

	var g errgroup.Group
	g.SetLimit(s.fanOut)
	for _, key := range keys {
		batch := groups[key]
		g.Go(func() error {
			s.drainEntity(ctx, batch, &synced, &failed)
			return nil
		})
	}
	// Batch goroutines swallow their errors; the pass waits for all
	// outstanding calls before reporting.
	_ = g.Wait()

	result.Synced = int(synced.Load())
	result.Failed = int(failed.Load())
	s.last.Store(result)

	s.logger.Info("drain pass completed",
		"synced", result.Synced,
		"failed", result.Failed,
		"retrying", len(records)-result.Synced-result.Failed)

	return result, nil
}

// drainEntity sends one entity's records in order. A retryable failure
// stops the stream so later records never overtake the failed one; they are
// all retried on the next pass rather than in a tight loop.
func (s *service) drainEntity(ctx context.Context, records []*models.MutationRecord, synced, failed *atomic.Int64) {
	for _, record := range records {
		err := s.send(ctx, record)
		if err == nil {
			if rerr := s.queue.Remove(ctx, record.ID); rerr != nil {
				s.logger.Warn("failed to remove synced record",
					"record_id", record.ID, "error", rerr)
			}
			synced.Add(1)
			continue
		}

		var rejected *models.RejectedError
		if errors.As(err, &rejected) {
			s.logger.Warn("mutation rejected by sink",
				"record_id", record.ID,
				"entity", record.EntityKey(),
				"operation", record.Operation,
				"reason", rejected.Reason)
			if rerr := s.queue.Remove(ctx, record.ID); rerr != nil {
				s.logger.Warn("failed to remove rejected record",
					"record_id", record.ID, "error", rerr)
			}
			failed.Add(1)
			continue
		}

		s.logger.Warn("mutation sync failed, retrying next pass",
			"record_id", record.ID,
			"entity", record.EntityKey(),
			"attempts", record.Attempts+1,
			"error", err)
		if merr := s.queue.MarkFailed(ctx, record.ID, err.Error()); merr != nil {
			s.logger.Warn("failed to mark record failed",
				"record_id", record.ID, "error", merr)
		}
		return
	}
}

// send performs one sink call with the per-record timeout. Anything that is
// not an explicit rejection is treated as retryable.
func (s *service) send(ctx context.Context, record *models.MutationRecord) error {
	callCtx, cancel := context.WithTimeout(ctx, s.recordTimeout)
	defer cancel()

	err := s.sink.ApplyMutation(callCtx, record)
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &models.RetryableError{Err: err}
	}
	return err
}
