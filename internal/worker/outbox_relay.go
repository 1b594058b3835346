package worker

import (
	"context"
	"log/slog"
	"time"

	"fleet-dispatch/internal/infra/repository"
	sqlc "fleet-dispatch/internal/infra/sqlc/generated"
	"fleet-dispatch/internal/pkg/clock"
	"fleet-dispatch/internal/pkg/config"
	"fleet-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	retryBaseDelay = 5 * time.Second
	retryMaxDelay  = 5 * time.Minute
	maxErrorLength = 500
)

type TxRunner interface {
	WithinDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type JobStore interface {
	ClaimPending(ctx context.Context, tx sqlc.DBTX, kind string, limit int32) ([]repository.PendingJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, lastError string, maxAttempts int32, nextRunAt time.Time) error
}

type Publisher interface {
	Publish(ctx context.Context, topic string, body []byte) error
}

// OutboxRelay moves committed notification jobs to the message broker. A job
// is marked sent only after the broker accepted it, so delivery is at least once.
type OutboxRelay struct {
	runner    TxRunner
	jobs      JobStore
	publisher Publisher
	clock     clock.Clock
	cfg       config.AMQPConfig
}

func NewOutboxRelay(runner TxRunner, jobs JobStore, publisher Publisher, clk clock.Clock, cfg config.AMQPConfig) *OutboxRelay {
	return &OutboxRelay{
		runner:    runner,
		jobs:      jobs,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
	}
}

// RunOnce relays one batch and reports how many jobs were published.
func (r *OutboxRelay) RunOnce(ctx context.Context) (int, error) {
	sent := 0
	err := r.runner.WithinDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		sent = 0
		jobs, err := r.jobs.ClaimPending(ctx, db, shared.NotificationKindAMQP, r.cfg.BatchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			if pubErr := r.publisher.Publish(ctx, job.Topic, job.Payload); pubErr != nil {
				slog.Warn("outbox publish failed",
					slog.String("job_id", job.ID.String()),
					slog.String("topic", job.Topic),
					slog.Int("attempt", int(job.Attempts)+1),
					slog.Any("error", pubErr))

				next := r.clock.Now().Add(retryDelay(job.Attempts))
				if err := r.jobs.MarkFailed(ctx, db, job.ID, truncate(pubErr.Error(), maxErrorLength), r.cfg.MaxAttempts, next); err != nil {
					return err
				}
				continue
			}

			if err := r.jobs.MarkSent(ctx, db, job.ID); err != nil {
				return err
			}
			sent++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return sent, nil
}

// Run relays batches every RelayInterval until ctx is cancelled.
func (r *OutboxRelay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.cfg.RelayInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			n, err := r.RunOnce(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				slog.Error("outbox relay batch failed", slog.Any("error", err))
				continue
			}
			if n > 0 {
				slog.Debug("outbox relay batch published", slog.Int("count", n))
			}
		}
	}
}

// retryDelay doubles per attempt from retryBaseDelay up to retryMaxDelay.
func retryDelay(attempts int32) time.Duration {
	d := retryBaseDelay
	for i := int32(0); i < attempts; i++ {
		d *= 2
		if d >= retryMaxDelay {
			return retryMaxDelay
		}
	}
	return d
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
