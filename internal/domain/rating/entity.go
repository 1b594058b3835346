package rating

import (
	"time"

	"fleet-dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidScore   = errs.NewKind(errs.ErrValidation, "score must be between 1 and 5")
	ErrCommentTooLong = errs.NewKind(errs.ErrValidation, "comment exceeds maximum length")
	ErrEmptyCustomer  = errs.NewKind(errs.ErrValidation, "rating customer cannot be empty")

	ErrNoReservationWithOperator = errs.NewKind(errs.ErrForbidden, "customer has no reservation with this operator")
)

type Rating struct {
	id         uuid.UUID
	operatorID string
	customerID string
	score      Score
	comment    Comment
	createdAt  time.Time
}

func NewRating(operatorID, customerID string, score Score, comment Comment, now time.Time) (*Rating, error) {
	if customerID == "" {
		return nil, ErrEmptyCustomer
	}
	if score.Value() == 0 {
		return nil, ErrInvalidScore
	}

	return &Rating{
		id:         uuid.New(),
		operatorID: operatorID,
		customerID: customerID,
		score:      score,
		comment:    comment,
		createdAt:  now,
	}, nil
}

func (r *Rating) ID() uuid.UUID        { return r.id }
func (r *Rating) OperatorID() string   { return r.operatorID }
func (r *Rating) CustomerID() string   { return r.customerID }
func (r *Rating) Score() Score         { return r.score }
func (r *Rating) Comment() Comment     { return r.comment }
func (r *Rating) CreatedAt() time.Time { return r.createdAt }
