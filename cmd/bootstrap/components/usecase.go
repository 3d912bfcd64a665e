package components

import (
	"charter-booking/internal/domain/eligibility"
	"charter-booking/internal/domain/reservation"
	"charter-booking/internal/infra/metrics"
	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/pkg/config"
	"charter-booking/internal/usecase"
	"charter-booking/internal/usecase/commands"
	"charter-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(m *metrics.Metrics) commands.Observer { return m },
	func(cfg config.Config) reservation.OccupancyPolicy {
		return reservation.NewOccupancyPolicy(cfg.Pricing.IncludedGuests, cfg.Pricing.ExtraGuestPercent)
	},
	func(cfg config.Config) (eligibility.Rules, error) {
		return eligibility.DefaultRules().WithCooldowns(cfg.Loyalty.Cooldowns)
	},
	commands.NewSettlementEngine,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewCalendarCommands,
		commands.NewPaymentCommands,
		commands.NewLoyaltyCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewCalendarQueries,
		queries.NewPaymentQueries,
		queries.NewEligibilityQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
