package components

import (
	"fleet-dispatch/internal/infra/cache"
	"fleet-dispatch/internal/infra/readstore"
	sqlc "fleet-dispatch/internal/infra/sqlc/generated"
	"fleet-dispatch/internal/infra/uow"
	"fleet-dispatch/internal/pkg/config"
	"fleet-dispatch/internal/usecase/queries"
	"fleet-dispatch/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
	cacheModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Availability
		func(q *sqlc.Queries) readstore.AvailabilityQueries { return q },
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilitySnapshotReader)),
		),
		// Capability
		func(q *sqlc.Queries) readstore.CapabilityReadQueries { return q },
		fx.Annotate(
			readstore.NewCapabilityReadStore,
			fx.As(new(queries.CapabilityReader)),
		),
		// Reservation
		func(q *sqlc.Queries) readstore.ReservationViewQueries { return q },
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
	),
)

// The concrete unit of work is also needed by the workers for WithinDB.
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
		func(u *uow.PostgresUoW) shared.UnitOfWork { return u },
		func(u *uow.PostgresUoW) queries.ReadOnlyRunner { return u },
	),
)

var cacheModule = fx.Module("persistence/cache",
	fx.Provide(
		NewAvailabilityCache,
	),
)

// NewAvailabilityCache falls back to a no-op cache without Redis.
func NewAvailabilityCache(rdb *redis.Client, cfg config.Config) (queries.AvailabilityCache, shared.AvailabilityInvalidator) {
	if rdb == nil {
		return cache.Noop{}, cache.Noop{}
	}
	c := cache.NewAvailabilityCache(rdb, cfg.Redis)
	return c, c
}

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
