package bootstrap

import (
	"context"
	"log/slog"

	"charter-booking/internal/infra/metrics"
	"charter-booking/internal/pkg/config"
	"charter-booking/internal/pkg/tracing"

	"go.uber.org/fx"
)

var ObservabilityModule = fx.Module("observability",
	fx.Provide(
		metrics.New,
	),
	fx.Invoke(
		StartTracing,
	),
)

func StartTracing(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) error {
	if !cfg.Tracing.Enabled {
		return nil
	}

	tp, err := tracing.Init(cfg.Tracing.ServiceName, cfg.Tracing.JaegerEndpoint)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := tp.Shutdown(ctx); err != nil {
				logger.Warn("tracer shutdown failed", "error", err.Error())
			}
			return nil
		},
	})
	return nil
}
