package components

import (
	"event-booking/internal/infra/readstore"
	sqlc "event-booking/internal/infra/sqlc/generated"
	"event-booking/internal/infra/uow"
	"event-booking/internal/usecase/queries"
	"event-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Event
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.EventReadQueries)),
		),
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(queries.EventReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Admin
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AdminReadQueries)),
		),
		fx.Annotate(
			readstore.NewAdminReadStore,
			fx.As(new(queries.AdminReadStore)),
		),
	),
)

// Write repositories are created per transaction by the unit of work.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
