package components

import (
	"lab-dashboard/internal/handler"
	"lab-dashboard/internal/handler/api"
	"lab-dashboard/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewEquipmentHandler,
		api.NewReservationHandler,
		api.NewAvailabilityHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
