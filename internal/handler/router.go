package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"charter-booking/internal/domain/user"
	"charter-booking/internal/handler/api"
	"charter-booking/internal/handler/middleware"
	"charter-booking/internal/infra/metrics"
	"charter-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Calendar    *api.CalendarHandler
	Reservation *api.ReservationHandler
	Payment     *api.PaymentHandler
	Eligibility *api.EligibilityHandler
	Admin       *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, m *metrics.Metrics) {
	setupMiddleware(engine, cfg, m)
	setupRoutes(engine, cfg, h, authMiddleware, m)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.Metrics(m))
	engine.Use(middleware.Tracing())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, m *metrics.Metrics) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	operator := authMiddleware.RequireRoleAtLeast(user.RoleOperator)
	admin := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/resources/:id/calendar", Handler: h.Calendar.GetRange},
		})

		authed := apiGroup.Group("")
		authed.Use(authMiddleware.RequireAuth())
		addRoutes(authed, []route{
			{Method: http.MethodPut, Path: "/resources/:id/calendar", Handler: h.Calendar.SetDays, Mw: []gin.HandlerFunc{operator}},
			{Method: http.MethodGet, Path: "/resources/:id/reservations", Handler: h.Reservation.ListForResource, Mw: []gin.HandlerFunc{operator}},
			{Method: http.MethodPatch, Path: "/calendar-days/:id", Handler: h.Calendar.PatchDay, Mw: []gin.HandlerFunc{operator}},
			{Method: http.MethodDelete, Path: "/calendar-days/:id", Handler: h.Calendar.DeleteDay, Mw: []gin.HandlerFunc{operator}},
		})

		reservations := authed.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Reservation.Complete, Mw: []gin.HandlerFunc{operator}},
				{Method: http.MethodPost, Path: "/:id/override-confirm", Handler: h.Reservation.OverrideConfirm, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodGet, Path: "/:id/payments", Handler: h.Payment.ListForReservation},
			})
		}

		payments := authed.Group("/payments")
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Payment.Record},
				{Method: http.MethodPost, Path: "/:id/settle", Handler: h.Payment.Settle, Mw: []gin.HandlerFunc{operator, middleware.RateLimit(cfg.RateLimit)}},
			})
		}

		principals := authed.Group("/principals/:id/eligibility")
		{
			addRoutes(principals, []route{
				{Method: http.MethodGet, Path: "/review", Handler: h.Eligibility.CanReview},
				{Method: http.MethodGet, Path: "/loyalty/:kind", Handler: h.Eligibility.CanPerformLoyaltyAction},
				{Method: http.MethodPost, Path: "/loyalty/:kind", Handler: h.Eligibility.RecordLoyaltyAction},
			})
		}

		adminGroup := authed.Group("/admin")
		adminGroup.Use(admin)
		addRoutes(adminGroup, []route{
			{Method: http.MethodPost, Path: "/sweep-completed", Handler: h.Admin.SweepCompleted},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
