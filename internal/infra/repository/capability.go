package repository

import (
	"context"

	"fleet-dispatch/internal/domain/capability"
	"fleet-dispatch/internal/domain/operator"
	"fleet-dispatch/internal/domain/resource"
	"fleet-dispatch/internal/infra"
	sqlc "fleet-dispatch/internal/infra/sqlc/generated"
	"fleet-dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

type CapabilityWriteQueries interface {
	CreateCapability(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCapabilityParams) error
	DeleteCapability(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteCapabilityParams) (int64, error)
}

type CapabilityRepository struct {
	queries CapabilityWriteQueries
}

func NewCapabilityRepository(queries CapabilityWriteQueries) *CapabilityRepository {
	return &CapabilityRepository{queries: queries}
}

func (r *CapabilityRepository) Create(ctx context.Context, tx sqlc.DBTX, c capability.Capability) error {
	err := r.queries.CreateCapability(ctx, tx, sqlc.CreateCapabilityParams{
		OperatorID: c.OperatorID,
		VariantID:  c.VariantID,
		ResourceID: c.ResourceID,
	})
	if err == nil {
		return nil
	}

	repoErr := infra.WrapRepoErr("failed to create capability", err)
	switch {
	case infra.IsKind(repoErr, infra.KindDuplicateKey):
		return errs.WithCause(capability.ErrAlreadyDeclared, repoErr)
	case infra.IsKind(repoErr, infra.KindForeignKeyViolated):
		// operator or variant disappeared after it was checked
		if infra.ConstraintOf(repoErr) == "capabilities_operator_id_fkey" {
			return errs.WithCause(operator.ErrOperatorNotFound, repoErr)
		}
		return errs.WithCause(resource.ErrVariantNotFound, repoErr)
	}
	return repoErr
}

func (r *CapabilityRepository) Delete(ctx context.Context, tx sqlc.DBTX, operatorID string, variantID uuid.UUID) error {
	n, err := r.queries.DeleteCapability(ctx, tx, sqlc.DeleteCapabilityParams{
		OperatorID: operatorID,
		VariantID:  variantID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to delete capability", err)
	}
	if n == 0 {
		return capability.ErrNotDeclared
	}
	return nil
}
