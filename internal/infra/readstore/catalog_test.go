//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"fleet-dispatch/internal/domain/resource"
	"fleet-dispatch/internal/infra"
	"fleet-dispatch/internal/infra/readstore"
	sqlc "fleet-dispatch/internal/infra/sqlc/generated"
	readstoremock "fleet-dispatch/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCatalogReadStore_VariantByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		q := readstoremock.NewMockCatalogQueries(gomock.NewController(t))
		resourceID := uuid.New()
		q.EXPECT().GetVariantWithResource(ctx, nil, id).Return(sqlc.GetVariantWithResourceRow{
			VariantID:  id,
			ResourceID: resourceID,
			Label:      "standard",
			Make:       "Toyota",
			Model:      "Prius",
			Year:       2022,
		}, nil)

		got, err := readstore.NewCatalogReadStore(q, nil).VariantByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, resource.Variant{ID: id, ResourceID: resourceID, Label: "standard"}, got.Variant)
		assert.Equal(t, resource.Resource{ID: resourceID, Make: "Toyota", Model: "Prius", Year: 2022}, got.Resource)
	})

	t.Run("not found", func(t *testing.T) {
		q := readstoremock.NewMockCatalogQueries(gomock.NewController(t))
		q.EXPECT().GetVariantWithResource(ctx, nil, id).Return(sqlc.GetVariantWithResourceRow{}, pgx.ErrNoRows)

		_, err := readstore.NewCatalogReadStore(q, nil).VariantByID(ctx, id)
		assert.ErrorIs(t, err, resource.ErrVariantNotFound)
		assert.Equal(t, "variant not found", err.Error())
	})

	t.Run("database failure", func(t *testing.T) {
		q := readstoremock.NewMockCatalogQueries(gomock.NewController(t))
		q.EXPECT().GetVariantWithResource(ctx, nil, id).Return(sqlc.GetVariantWithResourceRow{}, errors.New("connection reset"))

		_, err := readstore.NewCatalogReadStore(q, nil).VariantByID(ctx, id)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestCatalogReadStore_VariantsByResource(t *testing.T) {
	ctx := context.Background()
	resourceID := uuid.New()

	t.Run("success", func(t *testing.T) {
		q := readstoremock.NewMockCatalogQueries(gomock.NewController(t))
		variantID := uuid.New()
		q.EXPECT().ResourceExists(ctx, nil, resourceID).Return(true, nil)
		q.EXPECT().ListVariantsByResource(ctx, nil, resourceID).Return([]sqlc.Variants{
			{ID: variantID, ResourceID: resourceID, Label: "standard"},
		}, nil)

		got, err := readstore.NewCatalogReadStore(q, nil).VariantsByResource(ctx, resourceID)
		require.NoError(t, err)
		assert.Equal(t, []resource.Variant{{ID: variantID, ResourceID: resourceID, Label: "standard"}}, got)
	})

	t.Run("unknown resource", func(t *testing.T) {
		q := readstoremock.NewMockCatalogQueries(gomock.NewController(t))
		q.EXPECT().ResourceExists(ctx, nil, resourceID).Return(false, nil)

		_, err := readstore.NewCatalogReadStore(q, nil).VariantsByResource(ctx, resourceID)
		assert.ErrorIs(t, err, resource.ErrResourceNotFound)
	})
}
