package worker

import (
	"context"
	"log/slog"
	"time"

	sqlc "fleet-dispatch/internal/infra/sqlc/generated"
)

type ExpiredKeyDeleter interface {
	DeleteExpired(ctx context.Context, db sqlc.DBTX) (int64, error)
}

// IdempotencyJanitor removes expired idempotency keys. Expired keys are
// reclaimable by bookings anyway; this only bounds table growth.
type IdempotencyJanitor struct {
	runner   TxRunner
	keys     ExpiredKeyDeleter
	interval time.Duration
}

func NewIdempotencyJanitor(runner TxRunner, keys ExpiredKeyDeleter, interval time.Duration) *IdempotencyJanitor {
	return &IdempotencyJanitor{
		runner:   runner,
		keys:     keys,
		interval: interval,
	}
}

func (j *IdempotencyJanitor) RunOnce(ctx context.Context) (int64, error) {
	var deleted int64
	err := j.runner.WithinDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		n, err := j.keys.DeleteExpired(ctx, db)
		deleted = n
		return err
	})
	return deleted, err
}

func (j *IdempotencyJanitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			n, err := j.RunOnce(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				slog.Error("idempotency cleanup failed", slog.Any("error", err))
				continue
			}
			if n > 0 {
				slog.Info("expired idempotency keys deleted", slog.Int64("count", n))
			}
		}
	}
}
