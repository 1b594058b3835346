package commands

import (
	"context"
	"log/slog"

	"fleet-dispatch/internal/domain/auth"
	"fleet-dispatch/internal/domain/operator"
	"fleet-dispatch/internal/domain/rating"
	"fleet-dispatch/internal/pkg/clock"
	"fleet-dispatch/internal/usecase/shared"
)

type RatingInput struct {
	OperatorID string
	Score      int
	Comment    *string
}

type RatingCommands interface {
	// Submit records a rating; the customer must hold a reservation with the operator.
	Submit(ctx context.Context, actor auth.Principal, in RatingInput) (*rating.Rating, error)
}

type ratingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRatingCommands(uow shared.UnitOfWork, clk clock.Clock) RatingCommands {
	return &ratingCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

func (c *ratingCommandsImpl) Submit(ctx context.Context, actor auth.Principal, in RatingInput) (*rating.Rating, error) {
	if actor.Role != auth.RoleCustomer {
		return nil, auth.ErrRoleNotAllowed
	}
	operatorID, err := operator.NormalizeID(in.OperatorID)
	if err != nil {
		return nil, err
	}
	score, err := rating.NewScore(in.Score)
	if err != nil {
		return nil, err
	}
	comment, err := rating.NewComment(in.Comment)
	if err != nil {
		return nil, err
	}

	var created *rating.Rating
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := ensureOperator(ctx, tx, operatorID); err != nil {
			return err
		}

		ok, err := tx.Reads().CustomerHasReservationWithOperator(ctx, actor.Subject, operatorID)
		if err != nil {
			return err
		}
		if !ok {
			return rating.ErrNoReservationWithOperator
		}

		r, err := rating.NewRating(operatorID, actor.Subject, score, comment, c.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Ratings().Create(ctx, tx.DB(), r); err != nil {
			return err
		}
		created = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("rating submitted",
		slog.String("rating_id", created.ID().String()),
		slog.String("operator_id", created.OperatorID()),
		slog.Int("score", created.Score().Value()))
	return created, nil
}
