package queries

import (
	"context"
	"time"

	"fleet-dispatch/internal/domain/auth"
	"fleet-dispatch/internal/domain/reservation"
	"fleet-dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidCursor = errs.NewKind(errs.ErrValidation, "invalid cursor")
	ErrInvalidLimit  = errs.NewKind(errs.ErrValidation, "limit must be a positive integer")
)

type ReservationPage struct {
	Items      []ReservationView `json:"items"`
	NextCursor *string           `json:"next_cursor,omitempty"`
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actor auth.Principal, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, actor auth.Principal, after string, limit int) (*ReservationPage, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByCustomer(ctx context.Context, customerID string, afterCreatedAt time.Time, afterID uuid.UUID, limit int32) ([]ReservationView, error)
	FindByOperator(ctx context.Context, operatorID string, afterCreatedAt time.Time, afterID uuid.UUID, limit int32) ([]ReservationView, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

// GetByID hides reservations the caller is not party to behind NotFound.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor auth.Principal, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case auth.RoleAdmin:
		return view, nil
	case auth.RoleCustomer:
		if view.CustomerID == actor.Subject {
			return view, nil
		}
	case auth.RoleOperator:
		if view.OperatorID == actor.Subject {
			return view, nil
		}
	}
	return nil, reservation.ErrReservationNotFound
}

// List returns the caller's reservations newest first. Customers see what they
// booked, operators what they were assigned.
func (q *reservationQueriesImpl) List(ctx context.Context, actor auth.Principal, after string, limit int) (*ReservationPage, error) {
	var (
		afterCreatedAt time.Time
		afterID        uuid.UUID
	)
	if after != "" {
		var err error
		afterCreatedAt, afterID, err = DecodeAfterCursor(after)
		if err != nil {
			return nil, errs.WithCause(ErrInvalidCursor, err)
		}
	}

	limit = ValidateLimit(limit)
	// one extra row tells whether another page exists
	fetch := int32(limit + 1) // #nosec G115 -- bounded by MaxListLimit

	var (
		rows []ReservationView
		err  error
	)
	switch actor.Role {
	case auth.RoleCustomer:
		rows, err = q.repo.FindByCustomer(ctx, actor.Subject, afterCreatedAt, afterID, fetch)
	case auth.RoleOperator:
		rows, err = q.repo.FindByOperator(ctx, actor.Subject, afterCreatedAt, afterID, fetch)
	default:
		return nil, auth.ErrRoleNotAllowed
	}
	if err != nil {
		return nil, err
	}

	page := &ReservationPage{Items: rows}
	if len(rows) > limit {
		page.Items = rows[:limit]
		last := page.Items[limit-1]
		next := EncodeAfterCursor(last.CreatedAt, last.ID)
		page.NextCursor = &next
	}
	if page.Items == nil {
		page.Items = []ReservationView{}
	}
	return page, nil
}
