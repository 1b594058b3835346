//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"fleet-dispatch/internal/domain/operator"
	"fleet-dispatch/internal/infra"
	"fleet-dispatch/internal/infra/repository"
	sqlc "fleet-dispatch/internal/infra/sqlc/generated"
	"fleet-dispatch/internal/pkg/errs"
	"fleet-dispatch/tests/common/builder"
	repositorymock "fleet-dispatch/tests/mock/repository"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRatingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		queryErr    error
		expectedErr error
		expectKind  infra.RepositoryErrorKind
	}{
		{name: "success: rating stored"},
		{
			name:        "not found: operator removed concurrently",
			queryErr:    foreignKeyViolation("ratings_operator_id_fkey"),
			expectedErr: operator.ErrOperatorNotFound,
		},
		{
			name:       "error: database failure",
			queryErr:   errors.New("connection reset"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockRatingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRatingRepository(mockQueries)

			r := builder.NewRatingBuilder().WithComment("smooth ride").BuildDomain()

			mockQueries.EXPECT().
				CreateRating(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateRatingParams) error {
					assert.Equal(t, r.ID(), arg.ID)
					assert.Equal(t, int32(r.Score().Value()), arg.Score)
					assert.Equal(t, "smooth ride", arg.Comment.String)
					assert.True(t, arg.Comment.Valid)
					return tc.queryErr
				})

			err := repo.Create(ctx, mockDB, r)

			switch {
			case tc.expectedErr != nil:
				assert.True(t, errs.Is(err, tc.expectedErr))
			case tc.expectKind != "":
				assert.True(t, infra.IsKind(err, tc.expectKind))
			default:
				assert.NoError(t, err)
			}
		})
	}
}
