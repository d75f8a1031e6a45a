package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"padelhub/internal/domain/user"
	"padelhub/internal/handler/api"
	"padelhub/internal/handler/middleware"
	"padelhub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	clubHandler *api.ClubHandler,
	scheduleHandler *api.ScheduleHandler,
	availabilityHandler *api.AvailabilityHandler,
	reservationHandler *api.ReservationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, clubHandler, scheduleHandler, availabilityHandler, reservationHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	clubHandler *api.ClubHandler,
	scheduleHandler *api.ScheduleHandler,
	availabilityHandler *api.AvailabilityHandler,
	reservationHandler *api.ReservationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		clubs := apiGroup.Group("/clubs")
		{
			addRoutes(clubs, []route{
				{Method: http.MethodGet, Path: "", Handler: clubHandler.ListClubs},
				{Method: http.MethodGet, Path: "/:id", Handler: clubHandler.GetClub},
				{Method: http.MethodGet, Path: "/:id/courts", Handler: clubHandler.ListCourtsByClub},
			})

			ownerRequired := clubs.Group("")
			ownerRequired.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleOwner))
			addRoutes(ownerRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: clubHandler.CreateClub},
			})
		}

		courts := apiGroup.Group("/courts")
		{
			// Availability is the public read path; no auth required.
			addRoutes(courts, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: clubHandler.GetCourt},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: availabilityHandler.GetDayAvailability},
				{Method: http.MethodGet, Path: "/:id/rules", Handler: scheduleHandler.ListWeeklyRules},
				{Method: http.MethodGet, Path: "/:id/blackouts", Handler: scheduleHandler.ListBlackouts},
			})

			ownerRequired := courts.Group("")
			ownerRequired.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleOwner))
			addRoutes(ownerRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: clubHandler.CreateCourt},
			})
		}

		schedule := apiGroup.Group("/schedule")
		schedule.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleOwner))
		{
			addRoutes(schedule, []route{
				{Method: http.MethodPost, Path: "/rules", Handler: scheduleHandler.CreateWeeklyRule},
				{Method: http.MethodDelete, Path: "/rules/:id", Handler: scheduleHandler.DeactivateWeeklyRule},
				{Method: http.MethodPost, Path: "/blackouts", Handler: scheduleHandler.CreateBlackout},
				{Method: http.MethodDelete, Path: "/blackouts/:id", Handler: scheduleHandler.DeleteBlackout},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.GetUserReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.CancelReservation},
			})
		}
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
