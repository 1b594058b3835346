//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"fleet-dispatch/internal/domain/operator"
	"fleet-dispatch/internal/usecase/queries"
	queriesmock "fleet-dispatch/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCapabilityQueries_ListFor(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		reader := queriesmock.NewMockCapabilityReader(gomock.NewController(t))
		views := []queries.CapabilityView{{
			VariantID:    uuid.New(),
			VariantLabel: "standard",
			ResourceID:   uuid.New(),
			Make:         "Toyota",
			Model:        "Prius",
			Year:         2022,
			DeclaredAt:   time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		}}
		reader.EXPECT().OperatorExists(gomock.Any(), "alice").Return(true, nil)
		reader.EXPECT().ListByOperator(gomock.Any(), "alice").Return(views, nil)

		got, err := queries.NewCapabilityQueries(reader).ListFor(ctx, " alice ")
		require.NoError(t, err)
		assert.Equal(t, "alice", got.OperatorID)
		assert.Equal(t, views, got.Variants)
	})

	t.Run("not found: unknown operator", func(t *testing.T) {
		reader := queriesmock.NewMockCapabilityReader(gomock.NewController(t))
		reader.EXPECT().OperatorExists(gomock.Any(), "ghost").Return(false, nil)

		_, err := queries.NewCapabilityQueries(reader).ListFor(ctx, "ghost")
		assert.ErrorIs(t, err, operator.ErrOperatorNotFound)
	})

	t.Run("validation: blank id", func(t *testing.T) {
		reader := queriesmock.NewMockCapabilityReader(gomock.NewController(t))

		_, err := queries.NewCapabilityQueries(reader).ListFor(ctx, "  ")
		assert.ErrorIs(t, err, operator.ErrInvalidID)
	})
}
