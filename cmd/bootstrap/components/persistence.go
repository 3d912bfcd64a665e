package components

import (
	"charter-booking/internal/infra/cache"
	"charter-booking/internal/infra/metrics"
	"charter-booking/internal/infra/pgsql"
	"charter-booking/internal/infra/readstore"
	"charter-booking/internal/infra/uow"
	"charter-booking/internal/pkg/config"
	"charter-booking/internal/usecase/commands"
	"charter-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	calendarModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	uow.NewPostgresUoW,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationReadQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Payment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PaymentReadQueries)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentReadStore)),
		),
		// Eligibility
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.EligibilityReadQueries)),
		),
		fx.Annotate(
			readstore.NewEligibilityReadStore,
			fx.As(new(queries.EligibilityReadStore)),
		),
		// Calendar
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CalendarReadQueries)),
		),
		readstore.NewCalendarReadStore,
	),
)

// Calendar reads go through Redis when it is enabled; writes invalidate it.
var calendarModule = fx.Module("persistence/calendar",
	fx.Provide(
		NewCalendarReadStore,
		NewCalendarInvalidator,
	),
)

func NewCalendarReadStore(cfg config.Config, client redis.UniversalClient, db *readstore.CalendarReadStore, m *metrics.Metrics) queries.CalendarReadStore {
	if !cfg.Redis.Enabled || client == nil {
		return db
	}
	return cache.NewCalendarCache(client, db, cfg.Redis.TTL, m)
}

func NewCalendarInvalidator(store queries.CalendarReadStore) commands.CalendarInvalidator {
	if c, ok := store.(*cache.CalendarCache); ok {
		return c
	}
	return cache.NoopInvalidator{}
}

func NewSQLQueries(_ *pgxpool.Pool) *pgsql.Queries {
	return pgsql.New()
}

func NewDBTX(pool *pgxpool.Pool) pgsql.DBTX {
	return pool
}
