package readstore

import (
	"context"

	"fleet-dispatch/internal/domain/availability"
	"fleet-dispatch/internal/domain/reservation"
	"fleet-dispatch/internal/domain/resource"
	"fleet-dispatch/internal/infra"
	sqlc "fleet-dispatch/internal/infra/sqlc/generated"
	"fleet-dispatch/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AvailabilityQueries interface {
	ListCapabilityPairings(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListCapabilityPairingsRow, error)
	ListBookedVariantsByDate(ctx context.Context, db sqlc.DBTX, bookingDate pgtype.Date) ([]uuid.UUID, error)
	ListBusyOperatorsByDate(ctx context.Context, db sqlc.DBTX, bookingDate pgtype.Date) ([]string, error)
}

// AvailabilityReadStore loads the inputs of availability.Calculate. Callers pass a
// read-only snapshot so the three reads agree with each other.
type AvailabilityReadStore struct {
	queries AvailabilityQueries
}

func NewAvailabilityReadStore(queries AvailabilityQueries) *AvailabilityReadStore {
	return &AvailabilityReadStore{queries: queries}
}

func (r *AvailabilityReadStore) Snapshot(ctx context.Context, db sqlc.DBTX, date reservation.BookingDate) (availability.Snapshot, error) {
	pgDate := pgconv.DateToPgtype(date.Time())

	pairRows, err := r.queries.ListCapabilityPairings(ctx, db)
	if err != nil {
		return availability.Snapshot{}, infra.WrapRepoErr("failed to list capability pairings", err)
	}
	booked, err := r.queries.ListBookedVariantsByDate(ctx, db, pgDate)
	if err != nil {
		return availability.Snapshot{}, infra.WrapRepoErr("failed to list booked variants", err)
	}
	busy, err := r.queries.ListBusyOperatorsByDate(ctx, db, pgDate)
	if err != nil {
		return availability.Snapshot{}, infra.WrapRepoErr("failed to list busy operators", err)
	}

	snap := availability.Snapshot{
		Pairings:       make([]availability.Pairing, len(pairRows)),
		BookedVariants: make(map[uuid.UUID]struct{}, len(booked)),
		BusyOperators:  make(map[string]struct{}, len(busy)),
	}
	for i, row := range pairRows {
		snap.Pairings[i] = availability.Pairing{
			Resource: resource.Resource{
				ID:    row.ResourceID,
				Make:  row.Make,
				Model: row.Model,
				Year:  int(row.Year),
			},
			Variant: resource.Variant{
				ID:         row.VariantID,
				ResourceID: row.ResourceID,
				Label:      row.Label,
			},
			OperatorID: row.OperatorID,
		}
	}
	for _, id := range booked {
		snap.BookedVariants[id] = struct{}{}
	}
	for _, id := range busy {
		snap.BusyOperators[id] = struct{}{}
	}
	return snap, nil
}
