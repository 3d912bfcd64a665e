package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

type Completer interface {
	SweepCompleted(ctx context.Context, limit int) (int, error)
}

type KeyPurger interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

type SweepResult struct {
	Completed  int
	KeysPurged int64
}

// Sweeper periodically completes confirmed reservations whose end date has
// passed and purges expired idempotency keys.
type Sweeper struct {
	completer Completer
	keys      KeyPurger
	interval  time.Duration
	batch     int
}

func NewSweeper(completer Completer, keys KeyPurger, interval time.Duration, batch int) *Sweeper {
	return &Sweeper{
		completer: completer,
		keys:      keys,
		interval:  interval,
		batch:     batch,
	}
}

// Run blocks until ctx is cancelled. A non-positive interval disables the loop.
func (s *Sweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		slog.Info("sweeper disabled")
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("sweeper started", "interval", s.interval.String(), "batch", s.batch)
	for {
		select {
		case <-ctx.Done():
			slog.Info("sweeper stopped")
			return
		case <-ticker.C:
			res, err := s.RunOnce(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("sweep pass failed", "error", err.Error())
				continue
			}
			if res.Completed > 0 || res.KeysPurged > 0 {
				slog.Info("sweep pass finished", "completed", res.Completed, "keys_purged", res.KeysPurged)
			}
		}
	}
}

// RunOnce runs both passes concurrently. Partial results are returned with the
// first error.
func (s *Sweeper) RunOnce(ctx context.Context) (SweepResult, error) {
	var res SweepResult
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.completer.SweepCompleted(gctx, s.batch)
		res.Completed = n
		return err
	})
	g.Go(func() error {
		n, err := s.keys.DeleteExpired(gctx)
		res.KeysPurged = n
		return err
	})

	err := g.Wait()
	return res, err
}
