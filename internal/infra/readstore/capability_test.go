//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"fleet-dispatch/internal/domain/assignment"
	"fleet-dispatch/internal/domain/rating"
	"fleet-dispatch/internal/infra/readstore"
	sqlc "fleet-dispatch/internal/infra/sqlc/generated"
	"fleet-dispatch/internal/pkg/pgconv"
	readstoremock "fleet-dispatch/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCapabilityReadStore_CandidateOperators(t *testing.T) {
	ctx := context.Background()
	variantID := uuid.New()

	q := readstoremock.NewMockCapabilityReadQueries(gomock.NewController(t))
	q.EXPECT().ListCandidateOperatorStats(ctx, nil, variantID).Return([]sqlc.ListCandidateOperatorStatsRow{
		{OperatorID: "alice", RatingSum: 12, RatingCount: 3},
		{OperatorID: "carol"},
	}, nil)

	got, err := readstore.NewCapabilityReadStore(q, nil).CandidateOperators(ctx, variantID)
	require.NoError(t, err)
	assert.Equal(t, []assignment.Candidate{
		{OperatorID: "alice", Stats: rating.Stats{OperatorID: "alice", Sum: 12, Count: 3}},
		{OperatorID: "carol", Stats: rating.Stats{OperatorID: "carol"}},
	}, got)
}

func TestCapabilityReadStore_ListByOperator(t *testing.T) {
	ctx := context.Background()
	declared := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	variantID, resourceID := uuid.New(), uuid.New()

	q := readstoremock.NewMockCapabilityReadQueries(gomock.NewController(t))
	q.EXPECT().ListCapabilitiesByOperator(ctx, nil, "alice").Return([]sqlc.ListCapabilitiesByOperatorRow{{
		VariantID:  variantID,
		Label:      "standard",
		ResourceID: resourceID,
		Make:       "Toyota",
		Model:      "Prius",
		Year:       2022,
		CreatedAt:  pgconv.TimeToPgtype(declared),
	}}, nil)

	got, err := readstore.NewCapabilityReadStore(q, nil).ListByOperator(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, variantID, got[0].VariantID)
	assert.Equal(t, "standard", got[0].VariantLabel)
	assert.Equal(t, 2022, got[0].Year)
	assert.True(t, got[0].DeclaredAt.Equal(declared))
}
