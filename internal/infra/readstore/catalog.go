package readstore

import (
	"context"

	"fleet-dispatch/internal/domain/resource"
	"fleet-dispatch/internal/infra"
	sqlc "fleet-dispatch/internal/infra/sqlc/generated"
	"fleet-dispatch/internal/pkg/errs"
	"fleet-dispatch/internal/pkg/pgconv"
	"fleet-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	GetVariantWithResource(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetVariantWithResourceRow, error)
	ListVariantsByResource(ctx context.Context, db sqlc.DBTX, resourceID uuid.UUID) ([]sqlc.Variants, error)
	ResourceExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
	OperatorExists(ctx context.Context, db sqlc.DBTX, id string) (bool, error)
}

// CatalogReadStore reads the externally maintained resource catalog and operator table.
type CatalogReadStore struct {
	queries CatalogQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogReadStore) VariantByID(ctx context.Context, id uuid.UUID) (*shared.VariantSnapshot, error) {
	row, err := r.queries.GetVariantWithResource(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.WithCause(resource.ErrVariantNotFound,
				infra.WrapRepoErr("variant not found", err, infra.KindNotFound))
		}
		return nil, infra.WrapRepoErr("failed to find variant by ID", err)
	}

	return &shared.VariantSnapshot{
		Variant: resource.Variant{
			ID:         row.VariantID,
			ResourceID: row.ResourceID,
			Label:      row.Label,
		},
		Resource: resource.Resource{
			ID:    row.ResourceID,
			Make:  row.Make,
			Model: row.Model,
			Year:  int(row.Year),
		},
	}, nil
}

// VariantsByResource fails with resource.ErrResourceNotFound for an unknown resource.
func (r *CatalogReadStore) VariantsByResource(ctx context.Context, resourceID uuid.UUID) ([]resource.Variant, error) {
	exists, err := r.queries.ResourceExists(ctx, r.db, resourceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to check resource", err)
	}
	if !exists {
		return nil, resource.ErrResourceNotFound
	}

	rows, err := r.queries.ListVariantsByResource(ctx, r.db, resourceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list variants by resource", err)
	}

	variants := make([]resource.Variant, len(rows))
	for i, row := range rows {
		variants[i] = resource.Variant{
			ID:         row.ID,
			ResourceID: row.ResourceID,
			Label:      row.Label,
		}
	}
	return variants, nil
}

func (r *CatalogReadStore) OperatorExists(ctx context.Context, operatorID string) (bool, error) {
	exists, err := r.queries.OperatorExists(ctx, r.db, operatorID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check operator", err)
	}
	return exists, nil
}
