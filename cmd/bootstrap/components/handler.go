package components

import (
	"padelhub/internal/handler"
	"padelhub/internal/handler/api"
	"padelhub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewClubHandler,
		api.NewScheduleHandler,
		api.NewAvailabilityHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
