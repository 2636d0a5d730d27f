package components

import (
	"lab-dashboard/internal/infra/db"
	"lab-dashboard/internal/infra/readstore"
	"lab-dashboard/internal/infra/uow"
	"lab-dashboard/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewEquipmentReadStore,
			fx.As(new(queries.EquipmentReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)

// Write repositories are built per transaction by the unit of work.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
