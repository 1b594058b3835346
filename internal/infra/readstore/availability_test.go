//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"fleet-dispatch/internal/domain/availability"
	"fleet-dispatch/internal/domain/reservation"
	"fleet-dispatch/internal/domain/resource"
	"fleet-dispatch/internal/infra"
	"fleet-dispatch/internal/infra/readstore"
	sqlc "fleet-dispatch/internal/infra/sqlc/generated"
	readstoremock "fleet-dispatch/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityReadStore_Snapshot(t *testing.T) {
	ctx := context.Background()
	date, err := reservation.ParseBookingDate("2030-06-01")
	require.NoError(t, err)

	resourceID := uuid.New()
	variantID := uuid.New()
	bookedID := uuid.New()

	t.Run("success", func(t *testing.T) {
		q := readstoremock.NewMockAvailabilityQueries(gomock.NewController(t))
		q.EXPECT().ListCapabilityPairings(ctx, nil).Return([]sqlc.ListCapabilityPairingsRow{
			{OperatorID: "alice", VariantID: variantID, Label: "standard", ResourceID: resourceID, Make: "Toyota", Model: "Prius", Year: 2022},
		}, nil)
		q.EXPECT().ListBookedVariantsByDate(ctx, nil, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, d pgtype.Date) ([]uuid.UUID, error) {
				assert.True(t, d.Valid)
				assert.True(t, date.Time().Equal(d.Time))
				return []uuid.UUID{bookedID}, nil
			})
		q.EXPECT().ListBusyOperatorsByDate(ctx, nil, gomock.Any()).Return([]string{"bob"}, nil)

		got, err := readstore.NewAvailabilityReadStore(q).Snapshot(ctx, nil, date)
		require.NoError(t, err)

		want := availability.Snapshot{
			Pairings: []availability.Pairing{{
				Resource:   resource.Resource{ID: resourceID, Make: "Toyota", Model: "Prius", Year: 2022},
				Variant:    resource.Variant{ID: variantID, ResourceID: resourceID, Label: "standard"},
				OperatorID: "alice",
			}},
			BookedVariants: map[uuid.UUID]struct{}{bookedID: {}},
			BusyOperators:  map[string]struct{}{"bob": {}},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("failure stops the snapshot", func(t *testing.T) {
		q := readstoremock.NewMockAvailabilityQueries(gomock.NewController(t))
		q.EXPECT().ListCapabilityPairings(ctx, nil).Return(nil, nil)
		q.EXPECT().ListBookedVariantsByDate(ctx, nil, gomock.Any()).Return(nil, errors.New("connection reset"))

		_, err := readstore.NewAvailabilityReadStore(q).Snapshot(ctx, nil, date)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
