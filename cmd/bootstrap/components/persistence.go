package components

import (
	"room-reserve/internal/infra/db"
	"room-reserve/internal/infra/readstore"
	"room-reserve/internal/infra/uow"
	"room-reserve/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork, already typed as shared.UnitOfWork
		uow.NewPostgresUoW,
		// Reservation read side
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
		// Room read side
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomViewRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
