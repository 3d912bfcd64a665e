package components

import (
	"charter-booking/internal/handler"
	"charter-booking/internal/handler/api"
	"charter-booking/internal/handler/middleware"
	"charter-booking/internal/pkg/config"
	"charter-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCalendarHandler,
		api.NewReservationHandler,
		api.NewPaymentHandler,
		api.NewEligibilityHandler,
		func(cmds commands.ReservationCommands, cfg config.Config) *api.AdminHandler {
			return api.NewAdminHandler(cmds, cfg.Sweep)
		},
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	calendar *api.CalendarHandler,
	reservation *api.ReservationHandler,
	payment *api.PaymentHandler,
	eligibility *api.EligibilityHandler,
	admin *api.AdminHandler,
) handler.Handlers {
	return handler.Handlers{
		Calendar:    calendar,
		Reservation: reservation,
		Payment:     payment,
		Eligibility: eligibility,
		Admin:       admin,
	}
}
