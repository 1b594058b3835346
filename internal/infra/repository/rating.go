package repository

import (
	"context"

	"fleet-dispatch/internal/domain/operator"
	"fleet-dispatch/internal/domain/rating"
	"fleet-dispatch/internal/infra"
	"fleet-dispatch/internal/infra/repository/converter"
	sqlc "fleet-dispatch/internal/infra/sqlc/generated"
	"fleet-dispatch/internal/pkg/errs"
)

type RatingWriteQueries interface {
	CreateRating(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRatingParams) error
}

type RatingRepository struct {
	queries RatingWriteQueries
}

func NewRatingRepository(queries RatingWriteQueries) *RatingRepository {
	return &RatingRepository{queries: queries}
}

func (r *RatingRepository) Create(ctx context.Context, tx sqlc.DBTX, rt *rating.Rating) error {
	if err := r.queries.CreateRating(ctx, tx, converter.RatingToInfra(rt)); err != nil {
		repoErr := infra.WrapRepoErr("failed to create rating", err)
		if infra.IsKind(repoErr, infra.KindForeignKeyViolated) {
			return errs.WithCause(operator.ErrOperatorNotFound, repoErr)
		}
		return repoErr
	}
	return nil
}
