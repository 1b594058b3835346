package repository

import (
	"context"

	"fleet-dispatch/internal/domain/reservation"
	"fleet-dispatch/internal/infra"
	"fleet-dispatch/internal/infra/repository/converter"
	sqlc "fleet-dispatch/internal/infra/sqlc/generated"
	"fleet-dispatch/internal/pkg/errs"
	"fleet-dispatch/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	ReservationExistsForVariant(ctx context.Context, db sqlc.DBTX, arg sqlc.ReservationExistsForVariantParams) (bool, error)
	ListBusyOperatorsByDate(ctx context.Context, db sqlc.DBTX, bookingDate pgtype.Date) ([]string, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

func (r *ReservationRepository) ExistsForVariant(ctx context.Context, tx sqlc.DBTX, variantID uuid.UUID, date reservation.BookingDate) (bool, error) {
	exists, err := r.queries.ReservationExistsForVariant(ctx, tx, sqlc.ReservationExistsForVariantParams{
		VariantID:   variantID,
		BookingDate: pgconv.DateToPgtype(date.Time()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check variant reservation", err)
	}
	return exists, nil
}

func (r *ReservationRepository) BusyOperators(ctx context.Context, tx sqlc.DBTX, date reservation.BookingDate) (map[string]struct{}, error) {
	ids, err := r.queries.ListBusyOperatorsByDate(ctx, tx, pgconv.DateToPgtype(date.Time()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list busy operators", err)
	}
	busy := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		busy[id] = struct{}{}
	}
	return busy, nil
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	err := r.queries.CreateReservation(ctx, tx, converter.ReservationToInfra(res))
	if err == nil {
		return nil
	}

	repoErr := infra.WrapRepoErr("failed to create reservation", err)
	if infra.IsKind(repoErr, infra.KindDuplicateKey) {
		if conflict := reservation.ConflictForConstraint(infra.ConstraintOf(repoErr)); conflict != nil {
			return errs.WithCause(conflict, repoErr)
		}
	}
	return repoErr
}
