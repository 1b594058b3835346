//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"

	"fleet-dispatch/internal/domain/auth"
	"fleet-dispatch/internal/domain/operator"
	"fleet-dispatch/internal/domain/rating"
	"fleet-dispatch/internal/pkg/errs"
	"fleet-dispatch/internal/usecase/commands"
	"fleet-dispatch/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRatingCommands_Submit(t *testing.T) {
	ctx := context.Background()
	actor := builder.Customer("cust-1")
	comment := "smooth ride"

	t.Run("success", func(t *testing.T) {
		m := newTxMocks(t)
		m.reads.EXPECT().OperatorExists(gomock.Any(), "alice").Return(true, nil)
		m.reads.EXPECT().CustomerHasReservationWithOperator(gomock.Any(), "cust-1", "alice").Return(true, nil)
		m.ratings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		got, err := commands.NewRatingCommands(m.uow, m.clock).Submit(ctx, actor, commands.RatingInput{
			OperatorID: "alice",
			Score:      4,
			Comment:    &comment,
		})
		require.NoError(t, err)
		assert.Equal(t, "alice", got.OperatorID())
		assert.Equal(t, "cust-1", got.CustomerID())
		assert.Equal(t, 4, got.Score().Value())
		assert.Equal(t, comment, got.Comment().String())
		assert.Equal(t, testNow, got.CreatedAt())
	})

	t.Run("forbidden: no reservation with the operator", func(t *testing.T) {
		m := newTxMocks(t)
		m.reads.EXPECT().OperatorExists(gomock.Any(), "alice").Return(true, nil)
		m.reads.EXPECT().CustomerHasReservationWithOperator(gomock.Any(), "cust-1", "alice").Return(false, nil)

		_, err := commands.NewRatingCommands(m.uow, m.clock).Submit(ctx, actor, commands.RatingInput{OperatorID: "alice", Score: 5})
		assert.ErrorIs(t, err, rating.ErrNoReservationWithOperator)
		assert.Equal(t, errs.KindForbidden, errs.KindOf(err))
	})

	t.Run("not found: unknown operator", func(t *testing.T) {
		m := newTxMocks(t)
		m.reads.EXPECT().OperatorExists(gomock.Any(), "ghost").Return(false, nil)

		_, err := commands.NewRatingCommands(m.uow, m.clock).Submit(ctx, actor, commands.RatingInput{OperatorID: "ghost", Score: 5})
		assert.ErrorIs(t, err, operator.ErrOperatorNotFound)
	})

	t.Run("rejected before the transaction", func(t *testing.T) {
		long := strings.Repeat("x", 1001)

		testCases := []struct {
			name    string
			actor   auth.Principal
			in      commands.RatingInput
			wantErr error
		}{
			{name: "operator cannot rate", actor: builder.Operator("bob"), in: commands.RatingInput{OperatorID: "alice", Score: 5}, wantErr: auth.ErrRoleNotAllowed},
			{name: "admin cannot rate", actor: builder.Admin("root"), in: commands.RatingInput{OperatorID: "alice", Score: 5}, wantErr: auth.ErrRoleNotAllowed},
			{name: "score too low", actor: actor, in: commands.RatingInput{OperatorID: "alice", Score: 0}, wantErr: rating.ErrInvalidScore},
			{name: "score too high", actor: actor, in: commands.RatingInput{OperatorID: "alice", Score: 6}, wantErr: rating.ErrInvalidScore},
			{name: "comment too long", actor: actor, in: commands.RatingInput{OperatorID: "alice", Score: 3, Comment: &long}, wantErr: rating.ErrCommentTooLong},
			{name: "empty operator", actor: actor, in: commands.RatingInput{Score: 3}, wantErr: operator.ErrInvalidID},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				m := newTxMocks(t)
				_, err := commands.NewRatingCommands(m.uow, m.clock).Submit(ctx, tc.actor, tc.in)
				assert.ErrorIs(t, err, tc.wantErr)
			})
		}
	})
}
