package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"fleet-dispatch/internal/domain/assignment"
	"fleet-dispatch/internal/domain/reservation"
	"fleet-dispatch/internal/domain/resource"
	"fleet-dispatch/internal/infra/readstore"
	"fleet-dispatch/internal/infra/repository"
	sqlc "fleet-dispatch/internal/infra/sqlc/generated"
	"fleet-dispatch/internal/pkg/config"
	"fleet-dispatch/internal/pkg/errs"
	"fleet-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
	errOperationTimeout   = errs.New("unit of work timed out")
)

// TxBeginner is the part of *pgxpool.Pool the unit of work needs.
type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type PostgresUoW struct {
	pool       TxBeginner
	q          *sqlc.Queries
	timeout    time.Duration
	maxRetries int
	backoff    time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config) *PostgresUoW {
	return newPostgresUoW(pool, q, cfg.DB.OperationTimeout, cfg.DB.MaxRetries)
}

func newPostgresUoW(pool TxBeginner, q *sqlc.Queries, timeout time.Duration, maxRetries int) *PostgresUoW {
	return &PostgresUoW{
		pool:       pool,
		q:          q,
		timeout:    timeout,
		maxRetries: maxRetries,
		backoff:    50 * time.Millisecond,
	}
}

// ReadCommitted prevents dirty reads; the ledger's unique constraints decide races
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()

	err := u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
	return markTimeout(ctx, err)
}

// Read-only REPEATABLE READ snapshot for consistent multi-table reads
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()

	err := u.runPlainTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
	return markTimeout(ctx, err)
}

// WithinDB runs fn in a READ COMMITTED transaction without retries, for
// background jobs that work on raw queries.
func (u *PostgresUoW) WithinDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()

	err := u.runPlainTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
	return markTimeout(ctx, err)
}

func (u *PostgresUoW) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, u.timeout)
}

func markTimeout(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) && !errs.IsTransient(err) {
		return errs.Mark(errs.Mark(err, errOperationTimeout), errs.ErrTransient)
	}
	return err
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			err = errs.Mark(err, errTransactionBegin)
			if !u.shouldRetry(err, attempt) {
				return err
			}
			if waitErr := u.wait(ctx, attempt, err); waitErr != nil {
				return waitErr
			}
			continue
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !u.shouldRetry(err, attempt) {
			if isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(errs.Mark(err, errMaxRetriesExceeded), errs.ErrTransient)
			}
			return err
		}

		if waitErr := u.wait(ctx, attempt, err); waitErr != nil {
			return waitErr
		}
	}

	return errs.Mark(errMaxRetriesExceeded, errs.ErrTransient)
}

func (u *PostgresUoW) wait(ctx context.Context, attempt int, cause error) error {
	waitTime := calculateBackoff(attempt, u.backoff)

	slog.Warn("retrying transaction due to retryable error",
		"attempt", attempt+1,
		"wait_ms", waitTime.Milliseconds(),
		"error", cause.Error())

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(waitTime):
		return nil
	}
}

func (u *PostgresUoW) runPlainTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func (u *PostgresUoW) shouldRetry(err error, attempt int) bool {
	return isRetryableError(err) && attempt < u.maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}

// isRetryableError: serialization failure, deadlock, or a connection error
// pgconn guarantees never reached the server.
func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
			return true
		default:
			return false
		}
	}
	return pgconn.SafeToRetry(err)
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	reservationRepo  shared.ReservationRepository
	capabilityRepo   shared.CapabilityRepository
	ratingRepo       shared.RatingRepository
	idempotencyRepo  shared.IdempotencyRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q)
	}
	return t.reservationRepo
}

func (t *pgTx) Capabilities() shared.CapabilityRepository {
	if t.capabilityRepo == nil {
		t.capabilityRepo = repository.NewCapabilityRepository(t.uow.q)
	}
	return t.capabilityRepo
}

func (t *pgTx) Ratings() shared.RatingRepository {
	if t.ratingRepo == nil {
		t.ratingRepo = repository.NewRatingRepository(t.uow.q)
	}
	return t.ratingRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	catalogStore     *readstore.CatalogReadStore
	capabilityStore  *readstore.CapabilityReadStore
	reservationStore *readstore.ReservationReadStore
	idempotencyStore *readstore.IdempotencyReadStore
}

func (r *commandReads) catalog() *readstore.CatalogReadStore {
	if r.catalogStore == nil {
		r.catalogStore = readstore.NewCatalogReadStore(r.uow.q, r.dbtx)
	}
	return r.catalogStore
}

func (r *commandReads) reservations() *readstore.ReservationReadStore {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.uow.q, r.dbtx)
	}
	return r.reservationStore
}

func (r *commandReads) VariantByID(ctx context.Context, id uuid.UUID) (*shared.VariantSnapshot, error) {
	return r.catalog().VariantByID(ctx, id)
}

func (r *commandReads) VariantsByResource(ctx context.Context, resourceID uuid.UUID) ([]resource.Variant, error) {
	return r.catalog().VariantsByResource(ctx, resourceID)
}

func (r *commandReads) OperatorExists(ctx context.Context, operatorID string) (bool, error) {
	return r.catalog().OperatorExists(ctx, operatorID)
}

func (r *commandReads) CandidateOperators(ctx context.Context, variantID uuid.UUID) ([]assignment.Candidate, error) {
	if r.capabilityStore == nil {
		r.capabilityStore = readstore.NewCapabilityReadStore(r.uow.q, r.dbtx)
	}
	return r.capabilityStore.CandidateOperators(ctx, variantID)
}

func (r *commandReads) CustomerHasReservationWithOperator(ctx context.Context, customerID, operatorID string) (bool, error) {
	return r.reservations().CustomerHasReservationWithOperator(ctx, customerID, operatorID)
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key uuid.UUID, customerID string) (*shared.IdempotencyRecord, error) {
	if r.idempotencyStore == nil {
		r.idempotencyStore = readstore.NewIdempotencyReadStore(r.uow.q)
	}
	return r.idempotencyStore.Get(ctx, r.dbtx, key, customerID)
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	return r.reservations().LoadByID(ctx, id)
}
