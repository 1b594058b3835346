//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fleet-dispatch/internal/domain/reservation"
	"fleet-dispatch/internal/infra"
	"fleet-dispatch/internal/infra/repository"
	sqlc "fleet-dispatch/internal/infra/sqlc/generated"
	"fleet-dispatch/internal/pkg/errs"
	"fleet-dispatch/tests/common/builder"
	repositorymock "fleet-dispatch/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		queryErr    error
		expectedErr error
		expectKind  infra.RepositoryErrorKind
	}{
		{
			name: "success: reservation inserted",
		},
		{
			name:        "conflict: variant already booked by a concurrent commit",
			queryErr:    uniqueViolation(reservation.ConstraintVariantDate),
			expectedErr: reservation.ErrVariantBooked,
		},
		{
			name:        "conflict: operator already booked by a concurrent commit",
			queryErr:    uniqueViolation(reservation.ConstraintOperatorDate),
			expectedErr: reservation.ErrOperatorBooked,
		},
		{
			name:       "error: unknown unique constraint stays a repository error",
			queryErr:   uniqueViolation("reservations_pkey"),
			expectKind: infra.KindDuplicateKey,
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
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries)

			res := builder.NewReservationBuilder().BuildDomain()

			mockQueries.EXPECT().
				CreateReservation(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReservationParams) error {
					assert.Equal(t, res.ID(), arg.ID)
					assert.Equal(t, res.OperatorID(), arg.OperatorID)
					assert.Equal(t, res.Date().Time(), arg.BookingDate.Time)
					return tc.queryErr
				})

			err := repo.Create(ctx, mockDB, res)

			switch {
			case tc.expectedErr != nil:
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectedErr), "got %v", err)
				assert.True(t, errs.Is(err, errs.ErrConflict))
			case tc.expectKind != "":
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestReservationRepository_BusyOperators(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewReservationRepository(mockQueries)
	date := reservation.BookingDateOf(time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC))

	mockQueries.EXPECT().
		ListBusyOperatorsByDate(ctx, mockDB, gomock.Any()).
		Return([]string{"alice", "bob"}, nil)

	busy, err := repo.BusyOperators(ctx, mockDB, date)

	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"alice": {}, "bob": {}}, busy)
}

func TestReservationRepository_ExistsForVariant(t *testing.T) {
	ctx := context.Background()
	variantID := uuid.New()
	date := reservation.BookingDateOf(time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC))

	testCases := []struct {
		name       string
		exists     bool
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: booked", exists: true},
		{name: "success: free", exists: false},
		{name: "error: database failure", queryErr: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries)

			mockQueries.EXPECT().
				ReservationExistsForVariant(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ReservationExistsForVariantParams) (bool, error) {
					assert.Equal(t, variantID, arg.VariantID)
					return tc.exists, tc.queryErr
				})

			got, err := repo.ExistsForVariant(ctx, mockDB, variantID, date)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.exists, got)
		})
	}
}
