package components

import (
	"log/slog"

	"lab-dashboard/internal/pkg/clock"
	"lab-dashboard/internal/pkg/config"
	"lab-dashboard/internal/usecase"
	"lab-dashboard/internal/usecase/commands"
	"lab-dashboard/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewUserCommands,
		commands.NewEquipmentCommands,
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewEquipmentQueries,
		queries.NewReservationQueries,
		NewAvailabilityQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewAvailabilityQueries(
	equipment queries.EquipmentQueries,
	reservations queries.ReservationReadStore,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) (queries.AvailabilityQueries, error) {
	return queries.NewAvailabilityQueries(equipment, reservations, clk, cfg.Availability, logger)
}
