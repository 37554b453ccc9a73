package components

import (
	"dogbarber-api/internal/pkg/clock"
	"dogbarber-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAuthUseCase,
		usecase.NewAppointmentUseCase,
		usecase.NewCustomerUseCase,
		usecase.NewCatalogUseCase,
		usecase.NewTokenValidator,
	),
)
