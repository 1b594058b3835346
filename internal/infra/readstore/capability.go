package readstore

import (
	"context"

	"fleet-dispatch/internal/domain/assignment"
	"fleet-dispatch/internal/domain/rating"
	"fleet-dispatch/internal/infra"
	sqlc "fleet-dispatch/internal/infra/sqlc/generated"
	"fleet-dispatch/internal/pkg/pgconv"
	"fleet-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
)

type CapabilityReadQueries interface {
	ListCapabilitiesByOperator(ctx context.Context, db sqlc.DBTX, operatorID string) ([]sqlc.ListCapabilitiesByOperatorRow, error)
	ListCandidateOperatorStats(ctx context.Context, db sqlc.DBTX, variantID uuid.UUID) ([]sqlc.ListCandidateOperatorStatsRow, error)
	OperatorExists(ctx context.Context, db sqlc.DBTX, id string) (bool, error)
}

type CapabilityReadStore struct {
	queries CapabilityReadQueries
	db      sqlc.DBTX
}

func NewCapabilityReadStore(queries CapabilityReadQueries, db sqlc.DBTX) *CapabilityReadStore {
	return &CapabilityReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CapabilityReadStore) OperatorExists(ctx context.Context, operatorID string) (bool, error) {
	exists, err := r.queries.OperatorExists(ctx, r.db, operatorID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check operator", err)
	}
	return exists, nil
}

func (r *CapabilityReadStore) ListByOperator(ctx context.Context, operatorID string) ([]queries.CapabilityView, error) {
	rows, err := r.queries.ListCapabilitiesByOperator(ctx, r.db, operatorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list capabilities", err)
	}

	views := make([]queries.CapabilityView, len(rows))
	for i, row := range rows {
		views[i] = queries.CapabilityView{
			VariantID:    row.VariantID,
			VariantLabel: row.Label,
			ResourceID:   row.ResourceID,
			Make:         row.Make,
			Model:        row.Model,
			Year:         int(row.Year),
			DeclaredAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return views, nil
}

// CandidateOperators returns every capability holder for the variant with its rating totals.
func (r *CapabilityReadStore) CandidateOperators(ctx context.Context, variantID uuid.UUID) ([]assignment.Candidate, error) {
	rows, err := r.queries.ListCandidateOperatorStats(ctx, r.db, variantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list candidate operators", err)
	}

	candidates := make([]assignment.Candidate, len(rows))
	for i, row := range rows {
		candidates[i] = assignment.Candidate{
			OperatorID: row.OperatorID,
			Stats: rating.Stats{
				OperatorID: row.OperatorID,
				Sum:        row.RatingSum,
				Count:      row.RatingCount,
			},
		}
	}
	return candidates, nil
}
