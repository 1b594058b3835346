package reservation

import "fleet-dispatch/internal/pkg/errs"

var (
	ErrVariantBooked       = errs.NewKind(errs.ErrConflict, "variant already booked for this date")
	ErrOperatorBooked      = errs.NewKind(errs.ErrConflict, "operator already booked for this date")
	ErrReservationNotFound = errs.NewKind(errs.ErrNotFound, "reservation not found")
	ErrEmptyCustomer       = errs.NewKind(errs.ErrValidation, "customer id cannot be empty")
	ErrEmptyOperator       = errs.NewKind(errs.ErrValidation, "operator id cannot be empty")
)

// Ledger constraint names; a unique violation on either means a concurrent
// booking won the race.
const (
	ConstraintVariantDate  = "reservations_variant_date_key"
	ConstraintOperatorDate = "reservations_operator_date_key"
)

// ConflictForConstraint maps a violated ledger constraint to its conflict.
func ConflictForConstraint(name string) error {
	switch name {
	case ConstraintVariantDate:
		return ErrVariantBooked
	case ConstraintOperatorDate:
		return ErrOperatorBooked
	default:
		return nil
	}
}
