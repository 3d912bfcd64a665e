package bootstrap

import (
	"context"
	"sync"

	"charter-booking/internal/infra/events"
	"charter-booking/internal/infra/metrics"
	"charter-booking/internal/infra/pgsql"
	"charter-booking/internal/infra/repository"
	"charter-booking/internal/infra/worker"
	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/pkg/config"
	"charter-booking/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewPublisher,
		NewRelay,
		NewSweeper,
	),
	fx.Invoke(
		StartWorkers,
	),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config) (events.Publisher, error) {
	publisher, err := events.NewPublisher(cfg.Events)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}

func NewRelay(pool *pgxpool.Pool, q *pgsql.Queries, publisher events.Publisher, m *metrics.Metrics, clk clock.Clock, cfg config.Config) *events.Relay {
	return events.NewRelay(pool, q, publisher, m, clk, events.RelayConfig{
		Interval:    cfg.Events.RelayInterval,
		Batch:       cfg.Events.RelayBatch,
		MaxAttempts: cfg.Events.MaxAttempts,
	})
}

func NewSweeper(cmds commands.ReservationCommands, pool *pgxpool.Pool, q *pgsql.Queries, cfg config.Config) *worker.Sweeper {
	keys := repository.NewIdempotencyRepository(q, pool)
	return worker.NewSweeper(cmds, keys, cfg.Sweep.Interval, int(cfg.Sweep.Batch))
}

// StartWorkers runs the outbox relay and the sweeper for the lifetime of the app.
func StartWorkers(lc fx.Lifecycle, relay *events.Relay, sweeper *worker.Sweeper, cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if cfg.Events.RelayInterval > 0 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					relay.Run(ctx)
				}()
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				sweeper.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
