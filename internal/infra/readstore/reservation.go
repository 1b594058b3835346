package readstore

import (
	"context"
	"time"

	"fleet-dispatch/internal/domain/reservation"
	"fleet-dispatch/internal/infra"
	sqlc "fleet-dispatch/internal/infra/sqlc/generated"
	"fleet-dispatch/internal/pkg/errs"
	"fleet-dispatch/internal/pkg/pgconv"
	"fleet-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationViewQueries interface {
	GetReservationViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewByIDRow, error)
	ListReservationsByCustomerFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByCustomerFirstPageParams) ([]sqlc.ListReservationsByCustomerFirstPageRow, error)
	ListReservationsByCustomerKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByCustomerKeysetParams) ([]sqlc.ListReservationsByCustomerKeysetRow, error)
	ListReservationsByOperatorFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByOperatorFirstPageParams) ([]sqlc.ListReservationsByOperatorFirstPageRow, error)
	ListReservationsByOperatorKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByOperatorKeysetParams) ([]sqlc.ListReservationsByOperatorKeysetRow, error)
	CustomerHasReservationWithOperator(ctx context.Context, db sqlc.DBTX, arg sqlc.CustomerHasReservationWithOperatorParams) (bool, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.WithCause(reservation.ErrReservationNotFound,
				infra.WrapRepoErr("reservation not found", err, infra.KindNotFound))
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	view := toReservationView(reservationRow(row))
	return &view, nil
}

// LoadByID rebuilds the ledger entity, for commands that replay a reservation.
func (r *ReservationReadStore) LoadByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.WithCause(reservation.ErrReservationNotFound,
				infra.WrapRepoErr("reservation not found", err, infra.KindNotFound))
		}
		return nil, infra.WrapRepoErr("failed to load reservation", err)
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.CustomerID,
		row.VariantID,
		row.ResourceID,
		row.OperatorID,
		reservation.BookingDateOf(pgconv.DateFromPgtype(row.BookingDate)),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

// FindByCustomer pages newest first; a zero afterID selects the first page.
func (r *ReservationReadStore) FindByCustomer(ctx context.Context, customerID string, afterCreatedAt time.Time, afterID uuid.UUID, limit int32) ([]queries.ReservationView, error) {
	var rows []reservationRow
	if afterID == uuid.Nil {
		page, err := r.queries.ListReservationsByCustomerFirstPage(ctx, r.db, sqlc.ListReservationsByCustomerFirstPageParams{
			CustomerID: customerID,
			Limit:      limit,
		})
		if err != nil {
			return nil, infra.WrapRepoErr("failed to find reservations first page", err)
		}
		for _, row := range page {
			rows = append(rows, reservationRow(row))
		}
	} else {
		page, err := r.queries.ListReservationsByCustomerKeyset(ctx, r.db, sqlc.ListReservationsByCustomerKeysetParams{
			CustomerID:     customerID,
			AfterCreatedAt: pgconv.TimeToPgtype(afterCreatedAt),
			AfterID:        afterID,
			LimitCount:     limit,
		})
		if err != nil {
			return nil, infra.WrapRepoErr("failed to find reservations keyset", err)
		}
		for _, row := range page {
			rows = append(rows, reservationRow(row))
		}
	}
	return toReservationViews(rows), nil
}

func (r *ReservationReadStore) FindByOperator(ctx context.Context, operatorID string, afterCreatedAt time.Time, afterID uuid.UUID, limit int32) ([]queries.ReservationView, error) {
	var rows []reservationRow
	if afterID == uuid.Nil {
		page, err := r.queries.ListReservationsByOperatorFirstPage(ctx, r.db, sqlc.ListReservationsByOperatorFirstPageParams{
			OperatorID: operatorID,
			Limit:      limit,
		})
		if err != nil {
			return nil, infra.WrapRepoErr("failed to find operator reservations first page", err)
		}
		for _, row := range page {
			rows = append(rows, reservationRow(row))
		}
	} else {
		page, err := r.queries.ListReservationsByOperatorKeyset(ctx, r.db, sqlc.ListReservationsByOperatorKeysetParams{
			OperatorID:     operatorID,
			AfterCreatedAt: pgconv.TimeToPgtype(afterCreatedAt),
			AfterID:        afterID,
			LimitCount:     limit,
		})
		if err != nil {
			return nil, infra.WrapRepoErr("failed to find operator reservations keyset", err)
		}
		for _, row := range page {
			rows = append(rows, reservationRow(row))
		}
	}
	return toReservationViews(rows), nil
}

func (r *ReservationReadStore) CustomerHasReservationWithOperator(ctx context.Context, customerID, operatorID string) (bool, error) {
	ok, err := r.queries.CustomerHasReservationWithOperator(ctx, r.db, sqlc.CustomerHasReservationWithOperatorParams{
		CustomerID: customerID,
		OperatorID: operatorID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check customer reservation", err)
	}
	return ok, nil
}

// reservationRow has the column set shared by every reservation view query.
type reservationRow struct {
	ID           uuid.UUID
	CustomerID   string
	VariantID    uuid.UUID
	VariantLabel string
	ResourceID   uuid.UUID
	Make         string
	Model        string
	Year         int32
	OperatorID   string
	BookingDate  pgtype.Date
	CreatedAt    pgtype.Timestamptz
}

func toReservationViews(rows []reservationRow) []queries.ReservationView {
	views := make([]queries.ReservationView, len(rows))
	for i, row := range rows {
		views[i] = toReservationView(row)
	}
	return views
}

func toReservationView(row reservationRow) queries.ReservationView {
	return queries.ReservationView{
		ID:           row.ID,
		CustomerID:   row.CustomerID,
		VariantID:    row.VariantID,
		VariantLabel: row.VariantLabel,
		ResourceID:   row.ResourceID,
		Make:         row.Make,
		Model:        row.Model,
		Year:         int(row.Year),
		OperatorID:   row.OperatorID,
		BookingDate:  reservation.BookingDateOf(pgconv.DateFromPgtype(row.BookingDate)).String(),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
