package events

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"charter-booking/internal/infra/metrics"
	"charter-booking/internal/infra/pgsql"
	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
)

const maxRetryDelay = 5 * time.Minute

type RelayQueries interface {
	ClaimDueOutboxEvents(ctx context.Context, db pgsql.DBTX, arg pgsql.ClaimDueOutboxEventsParams) ([]pgsql.OutboxEvents, error)
	MarkOutboxEventPublished(ctx context.Context, db pgsql.DBTX, arg pgsql.MarkOutboxEventPublishedParams) error
	MarkOutboxEventRetry(ctx context.Context, db pgsql.DBTX, arg pgsql.MarkOutboxEventRetryParams) error
}

type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type RelayConfig struct {
	Interval    time.Duration
	Batch       int32
	MaxAttempts int32
}

// Relay moves queued outbox rows to the publisher. Rows are claimed with
// SKIP LOCKED inside one transaction, so several relays can run side by side.
// Delivery is at least once.
type Relay struct {
	db        TxBeginner
	queries   RelayQueries
	publisher Publisher
	metrics   *metrics.Metrics
	clock     clock.Clock
	cfg       RelayConfig
}

func NewRelay(db TxBeginner, queries RelayQueries, publisher Publisher, m *metrics.Metrics, clk clock.Clock, cfg RelayConfig) *Relay {
	return &Relay{
		db:        db,
		queries:   queries,
		publisher: publisher,
		metrics:   m,
		clock:     clk,
		cfg:       cfg,
	}
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	slog.Info("outbox relay started", "interval", r.cfg.Interval.String(), "batch", r.cfg.Batch)
	for {
		select {
		case <-ctx.Done():
			slog.Info("outbox relay stopped")
			return
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("outbox relay pass failed", "error", err.Error())
			}
		}
	}
}

// RunOnce relays one batch and reports how many events were published.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("outbox relay rollback failed", "error", rbErr.Error())
		}
	}()

	now := r.clock.Now()
	rows, err := r.queries.ClaimDueOutboxEvents(ctx, tx, pgsql.ClaimDueOutboxEventsParams{
		Now:   pgconv.TimeToPgtype(now),
		Limit: r.cfg.Batch,
	})
	if err != nil {
		return 0, err
	}

	published := 0
	for _, row := range rows {
		msg := Message{ID: row.ID.String(), Topic: row.Topic, Key: row.EventKey, Payload: row.Payload}
		if pubErr := r.publisher.Publish(ctx, msg); pubErr != nil {
			slog.Warn("outbox publish failed",
				"event_id", row.ID.String(),
				"topic", row.Topic,
				"attempt", row.Attempts+1,
				"error", pubErr.Error())
			r.observe(row.Topic, "retry")
			errText := pubErr.Error()
			if err := r.queries.MarkOutboxEventRetry(ctx, tx, pgsql.MarkOutboxEventRetryParams{
				ID:          row.ID,
				LastError:   pgconv.StringPtrToPgtype(&errText),
				RunAt:       pgconv.TimeToPgtype(now.Add(retryDelay(row.Attempts))),
				MaxAttempts: r.cfg.MaxAttempts,
			}); err != nil {
				return published, err
			}
			continue
		}

		if err := r.queries.MarkOutboxEventPublished(ctx, tx, pgsql.MarkOutboxEventPublishedParams{
			ID:          row.ID,
			PublishedAt: pgconv.TimeToPgtype(now),
		}); err != nil {
			return published, err
		}
		r.observe(row.Topic, "published")
		published++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return published, nil
}

// retryDelay doubles per attempt from one second, capped at five minutes.
func retryDelay(attempts int32) time.Duration {
	if attempts > 8 {
		return maxRetryDelay
	}
	d := time.Duration(1<<attempts) * time.Second
	if d > maxRetryDelay {
		return maxRetryDelay
	}
	return d
}

func (r *Relay) observe(topic, result string) {
	if r.metrics != nil {
		r.metrics.ObserveOutbox(topic, result)
	}
}
