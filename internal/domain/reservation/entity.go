package reservation

import (
	"time"

	"fleet-dispatch/internal/pkg/clock"

	"github.com/google/uuid"
)

// Reservation is a committed (variant, operator, date) assignment. It is never
// updated or deleted once written.
type Reservation struct {
	id         uuid.UUID
	customerID string
	variantID  uuid.UUID
	resourceID uuid.UUID
	operatorID string
	date       BookingDate
	createdAt  time.Time
}

func NewReservation(
	clk clock.Clock,
	customerID string,
	variantID, resourceID uuid.UUID,
	operatorID string,
	date BookingDate,
) (*Reservation, error) {
	if customerID == "" {
		return nil, ErrEmptyCustomer
	}
	if operatorID == "" {
		return nil, ErrEmptyOperator
	}
	if date.IsZero() {
		return nil, ErrInvalidDate
	}

	return &Reservation{
		id:         uuid.New(),
		customerID: customerID,
		variantID:  variantID,
		resourceID: resourceID,
		operatorID: operatorID,
		date:       date,
		createdAt:  clk.Now(),
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	customerID string,
	variantID, resourceID uuid.UUID,
	operatorID string,
	date BookingDate,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		customerID: customerID,
		variantID:  variantID,
		resourceID: resourceID,
		operatorID: operatorID,
		date:       date,
		createdAt:  createdAt,
	}
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) CustomerID() string    { return r.customerID }
func (r *Reservation) VariantID() uuid.UUID  { return r.variantID }
func (r *Reservation) ResourceID() uuid.UUID { return r.resourceID }
func (r *Reservation) OperatorID() string    { return r.operatorID }
func (r *Reservation) Date() BookingDate     { return r.date }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }

// VisibleTo reports whether subject is the booking customer or the assigned operator.
func (r *Reservation) VisibleTo(subject string) bool {
	return subject == r.customerID || subject == r.operatorID
}
