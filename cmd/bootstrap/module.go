package bootstrap

import (
	"lab-dashboard/cmd/bootstrap/components"
	"lab-dashboard/internal/pkg/clock"

	"go.uber.org/fx"
)

var ClockModule = fx.Module("clock",
	fx.Provide(
		clock.NewRealClock,
	),
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	ClockModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
