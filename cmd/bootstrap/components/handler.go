package components

import (
	"dogbarber-api/internal/handler"
	"dogbarber-api/internal/handler/api"
	"dogbarber-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAppointmentHandler,
		api.NewCustomerHandler,
		api.NewGroomingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
