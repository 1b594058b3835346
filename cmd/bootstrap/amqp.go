package bootstrap

import (
	"context"
	"log/slog"

	"fleet-dispatch/internal/infra/messaging"
	"fleet-dispatch/internal/pkg/config"

	"go.uber.org/fx"
)

var AMQPModule = fx.Module("amqp",
	fx.Provide(
		NewPublisher,
	),
)

// NewPublisher returns nil when AMQP_URL is unset; jobs then stay queued in
// the outbox until a relay runs.
func NewPublisher(lc fx.Lifecycle, cfg config.Config) *messaging.Publisher {
	if !cfg.AMQP.Enabled() {
		slog.Info("amqp disabled, outbox relay off")
		return nil
	}

	p := messaging.NewPublisher(cfg.AMQP)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p
}
