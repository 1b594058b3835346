package repository

import (
	"context"
	"time"

	"fleet-dispatch/internal/infra"
	sqlc "fleet-dispatch/internal/infra/sqlc/generated"
	"fleet-dispatch/internal/pkg/pgconv"
	"fleet-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimPendingNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimPendingNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	MarkNotificationJobFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobFailedParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, job shared.NotificationJob) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:    job.Kind,
		Topic:   job.Topic,
		Payload: job.Payload,
		RunAt:   pgconv.TimeToPgtype(job.RunAt),
		Status:  shared.NotificationStatusQueued,
	}

	if err := r.queries.CreateNotificationJob(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

// PendingJob is a claimed outbox row.
type PendingJob struct {
	ID       uuid.UUID
	Topic    string
	Payload  []byte
	Attempts int32
}

// ClaimPending locks up to limit due jobs of kind; other relays skip them.
func (r *NotificationRepository) ClaimPending(ctx context.Context, tx sqlc.DBTX, kind string, limit int32) ([]PendingJob, error) {
	rows, err := r.queries.ClaimPendingNotificationJobs(ctx, tx, sqlc.ClaimPendingNotificationJobsParams{
		Kind:  kind,
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]PendingJob, len(rows))
	for i, row := range rows {
		jobs[i] = PendingJob{
			ID:       row.ID,
			Topic:    row.Topic,
			Payload:  row.Payload,
			Attempts: row.Attempts,
		}
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) error {
	if err := r.queries.MarkNotificationJobSent(ctx, tx, jobID); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

// MarkFailed records lastError and requeues the job at nextRunAt, or gives up
// once maxAttempts is reached.
func (r *NotificationRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, lastError string, maxAttempts int32, nextRunAt time.Time) error {
	params := sqlc.MarkNotificationJobFailedParams{
		ID:          jobID,
		LastError:   pgtype.Text{String: lastError, Valid: true},
		MaxAttempts: maxAttempts,
		NextRunAt:   pgconv.TimeToPgtype(nextRunAt),
	}

	if err := r.queries.MarkNotificationJobFailed(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}
