package shared

import (
	"context"

	"fleet-dispatch/internal/domain/assignment"
	"fleet-dispatch/internal/domain/capability"
	"fleet-dispatch/internal/domain/rating"
	"fleet-dispatch/internal/domain/reservation"
	"fleet-dispatch/internal/domain/resource"
	sqlc "fleet-dispatch/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: READ COMMITTED write transaction, retried on serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: REPEATABLE READ snapshot for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	Capabilities() CapabilityRepository
	Ratings() RatingRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are the lookups a command needs inside its transaction.
type CommandReads interface {
	VariantByID(ctx context.Context, id uuid.UUID) (*VariantSnapshot, error)
	VariantsByResource(ctx context.Context, resourceID uuid.UUID) ([]resource.Variant, error)
	OperatorExists(ctx context.Context, operatorID string) (bool, error)
	CandidateOperators(ctx context.Context, variantID uuid.UUID) ([]assignment.Candidate, error)
	CustomerHasReservationWithOperator(ctx context.Context, customerID, operatorID string) (bool, error)
	IdempotencyByKey(ctx context.Context, key uuid.UUID, customerID string) (*IdempotencyRecord, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
}

// ReservationRepository is the reservation ledger.
type ReservationRepository interface {
	ExistsForVariant(ctx context.Context, tx sqlc.DBTX, variantID uuid.UUID, date reservation.BookingDate) (bool, error)
	BusyOperators(ctx context.Context, tx sqlc.DBTX, date reservation.BookingDate) (map[string]struct{}, error)
	// Create fails with reservation.ErrVariantBooked or reservation.ErrOperatorBooked
	// when a concurrent booking committed first.
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
}

type CapabilityRepository interface {
	// Create fails with capability.ErrAlreadyDeclared on a duplicate pair.
	Create(ctx context.Context, tx sqlc.DBTX, c capability.Capability) error
	// Delete fails with capability.ErrNotDeclared when no row matched.
	Delete(ctx context.Context, tx sqlc.DBTX, operatorID string, variantID uuid.UUID) error
}

type RatingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *rating.Rating) error
}

type IdempotencyRepository interface {
	// TryInsert reports false when the key already exists for the customer.
	TryInsert(ctx context.Context, tx sqlc.DBTX, rec IdempotencyRecord) (bool, error)
	UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, customerID string, reservationID uuid.UUID) error
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, rec IdempotencyRecord) (bool, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, job NotificationJob) error
}

// AvailabilityInvalidator is told about committed changes that alter availability.
// It must never fail the command that triggered it.
type AvailabilityInvalidator interface {
	InvalidateDate(ctx context.Context, date reservation.BookingDate)
	InvalidateAll(ctx context.Context)
}
