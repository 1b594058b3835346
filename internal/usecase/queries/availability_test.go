//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"fleet-dispatch/internal/domain/availability"
	"fleet-dispatch/internal/domain/reservation"
	"fleet-dispatch/internal/domain/resource"
	sqlc "fleet-dispatch/internal/infra/sqlc/generated"
	"fleet-dispatch/internal/usecase/queries"
	queriesmock "fleet-dispatch/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type availabilityMocks struct {
	runner *queriesmock.MockReadOnlyRunner
	reader *queriesmock.MockAvailabilitySnapshotReader
	cache  *queriesmock.MockAvailabilityCache
}

func newAvailabilityMocks(t *testing.T) *availabilityMocks {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &availabilityMocks{
		runner: queriesmock.NewMockReadOnlyRunner(ctrl),
		reader: queriesmock.NewMockAvailabilitySnapshotReader(ctrl),
		cache:  queriesmock.NewMockAvailabilityCache(ctrl),
	}
	m.runner.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
			return fn(ctx, nil)
		}).AnyTimes()
	return m
}

func (m *availabilityMocks) queries() queries.AvailabilityQueries {
	return queries.NewAvailabilityQueries(m.runner, m.reader, m.cache)
}

func TestAvailabilityQueries_Available(t *testing.T) {
	ctx := context.Background()
	const rawDate = "2030-06-01"

	prius := resource.Resource{ID: uuid.New(), Make: "Toyota", Model: "Prius", Year: 2022}
	std := resource.Variant{ID: uuid.New(), ResourceID: prius.ID, Label: "standard"}
	snap := availability.Snapshot{
		Pairings: []availability.Pairing{
			{Resource: prius, Variant: std, OperatorID: "bob"},
			{Resource: prius, Variant: std, OperatorID: "alice"},
			{Resource: prius, Variant: std, OperatorID: "carol"},
		},
		BusyOperators: map[string]struct{}{"carol": {}},
	}
	computed := []queries.AvailabilityItem{
		{ResourceID: prius.ID, VariantID: std.ID, VariantLabel: "standard", Make: "Toyota", Model: "Prius", Year: 2022, OperatorID: "alice"},
		{ResourceID: prius.ID, VariantID: std.ID, VariantLabel: "standard", Make: "Toyota", Model: "Prius", Year: 2022, OperatorID: "bob"},
	}
	version := queries.CacheVersion{Global: 3, Date: 7}

	t.Run("cache hit skips the database", func(t *testing.T) {
		m := newAvailabilityMocks(t)
		cached := computed[:1]
		m.cache.EXPECT().Version(gomock.Any(), gomock.Any()).Return(version, true)
		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), version).Return(cached, true)

		got, err := m.queries().Available(ctx, rawDate)
		require.NoError(t, err)
		assert.Equal(t, rawDate, got.Date)
		assert.Equal(t, cached, got.Items)
	})

	t.Run("cache miss computes and stores under the version read first", func(t *testing.T) {
		m := newAvailabilityMocks(t)
		gomock.InOrder(
			m.cache.EXPECT().Version(gomock.Any(), gomock.Any()).Return(version, true),
			m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), version).Return(nil, false),
			m.reader.EXPECT().Snapshot(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ any, d reservation.BookingDate) (availability.Snapshot, error) {
					assert.Equal(t, rawDate, d.String())
					return snap, nil
				}),
			m.cache.EXPECT().Put(gomock.Any(), gomock.Any(), version, computed),
		)

		got, err := m.queries().Available(ctx, rawDate)
		require.NoError(t, err)
		if diff := cmp.Diff(computed, got.Items); diff != "" {
			t.Errorf("items mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unavailable cache still answers and never stores", func(t *testing.T) {
		m := newAvailabilityMocks(t)
		m.cache.EXPECT().Version(gomock.Any(), gomock.Any()).Return(queries.CacheVersion{}, false)
		m.reader.EXPECT().Snapshot(gomock.Any(), gomock.Any(), gomock.Any()).Return(snap, nil)

		got, err := m.queries().Available(ctx, rawDate)
		require.NoError(t, err)
		assert.Equal(t, computed, got.Items)
	})

	t.Run("empty result is an empty list", func(t *testing.T) {
		m := newAvailabilityMocks(t)
		m.cache.EXPECT().Version(gomock.Any(), gomock.Any()).Return(queries.CacheVersion{}, false)
		m.reader.EXPECT().Snapshot(gomock.Any(), gomock.Any(), gomock.Any()).Return(availability.Snapshot{}, nil)

		got, err := m.queries().Available(ctx, rawDate)
		require.NoError(t, err)
		assert.NotNil(t, got.Items)
		assert.Empty(t, got.Items)
	})

	t.Run("snapshot failure is returned", func(t *testing.T) {
		m := newAvailabilityMocks(t)
		boom := errors.New("connection reset")
		m.cache.EXPECT().Version(gomock.Any(), gomock.Any()).Return(version, true)
		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), version).Return(nil, false)
		m.reader.EXPECT().Snapshot(gomock.Any(), gomock.Any(), gomock.Any()).Return(availability.Snapshot{}, boom)

		_, err := m.queries().Available(ctx, rawDate)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("malformed date", func(t *testing.T) {
		m := newAvailabilityMocks(t)
		_, err := m.queries().Available(ctx, "06/01/2030")
		assert.ErrorIs(t, err, reservation.ErrInvalidDate)
	})
}
