//go:build unit

package resource_test

import (
	"testing"

	"fleet-dispatch/internal/domain/resource"
	"fleet-dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResource(t *testing.T) {
	id := uuid.New()

	actual, err := resource.NewResource(id, "  Toyota ", "Hiace", 2021)
	require.NoError(t, err)
	assert.Equal(t, resource.Resource{ID: id, Make: "Toyota", Model: "Hiace", Year: 2021}, actual)

	_, err = resource.NewResource(id, "", "Hiace", 2021)
	assert.ErrorIs(t, err, resource.ErrInvalidDescriptor)

	_, err = resource.NewResource(id, "Toyota", "Hiace", 1200)
	assert.ErrorIs(t, err, resource.ErrInvalidYear)
}

func TestSoleVariant(t *testing.T) {
	resourceID := uuid.New()
	first := resource.Variant{ID: uuid.New(), ResourceID: resourceID, Label: "standard"}
	second := resource.Variant{ID: uuid.New(), ResourceID: resourceID, Label: "long wheelbase"}

	t.Run("no variants is not found", func(t *testing.T) {
		_, err := resource.SoleVariant(nil)
		assert.ErrorIs(t, err, resource.ErrResourceNoVariants)
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})

	t.Run("single variant resolves", func(t *testing.T) {
		actual, err := resource.SoleVariant([]resource.Variant{first})
		require.NoError(t, err)
		assert.Equal(t, first, actual)
	})

	t.Run("several variants is ambiguous", func(t *testing.T) {
		_, err := resource.SoleVariant([]resource.Variant{first, second})
		assert.ErrorIs(t, err, resource.ErrAmbiguousVariant)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	})
}
