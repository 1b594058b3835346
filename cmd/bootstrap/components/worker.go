package components

import (
	"context"

	"fleet-dispatch/internal/infra/messaging"
	"fleet-dispatch/internal/infra/repository"
	sqlc "fleet-dispatch/internal/infra/sqlc/generated"
	"fleet-dispatch/internal/infra/uow"
	"fleet-dispatch/internal/pkg/clock"
	"fleet-dispatch/internal/pkg/config"
	"fleet-dispatch/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewWorkerGroup,
	),
	fx.Invoke(startWorkers),
)

// NewWorkerGroup always runs the idempotency janitor; the outbox relay only
// when a broker is configured.
func NewWorkerGroup(u *uow.PostgresUoW, q *sqlc.Queries, publisher *messaging.Publisher, clk clock.Clock, cfg config.Config) *worker.Group {
	var relay *worker.OutboxRelay
	if publisher != nil {
		relay = worker.NewOutboxRelay(u, repository.NewNotificationRepository(q), publisher, clk, cfg.AMQP)
	}
	janitor := worker.NewIdempotencyJanitor(u, repository.NewIdempotencyRepository(q), cfg.Booking.IdempotencyCleanupInterval)
	return worker.NewGroup(relay, janitor)
}

func startWorkers(lc fx.Lifecycle, group *worker.Group) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			group.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return group.Stop(ctx)
		},
	})
}
