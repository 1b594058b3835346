//go:build unit

package infra_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"fleet-dispatch/internal/infra"
	"fleet-dispatch/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name           string
		err            error
		kind           []infra.RepositoryErrorKind
		wantKind       infra.RepositoryErrorKind
		wantConstraint string
		wantTransient  bool
	}{
		{
			name:           "unique violation keeps constraint name",
			err:            &pgconn.PgError{Code: "23505", ConstraintName: "reservations_variant_date_key"},
			wantKind:       infra.KindDuplicateKey,
			wantConstraint: "reservations_variant_date_key",
		},
		{
			name:           "foreign key violation",
			err:            fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503", ConstraintName: "capabilities_operator_id_fkey"}),
			wantKind:       infra.KindForeignKeyViolated,
			wantConstraint: "capabilities_operator_id_fkey",
		},
		{
			name:          "deadline exceeded is a transient timeout",
			err:           context.DeadlineExceeded,
			wantKind:      infra.KindTimeout,
			wantTransient: true,
		},
		{
			name:          "statement timeout is a transient timeout",
			err:           &pgconn.PgError{Code: "57014"},
			wantKind:      infra.KindTimeout,
			wantTransient: true,
		},
		{
			name:     "other errors are db failures",
			err:      errors.New("connection reset"),
			wantKind: infra.KindDBFailure,
		},
		{
			name:     "explicit kind wins",
			err:      errors.New("no rows in result set"),
			kind:     []infra.RepositoryErrorKind{infra.KindNotFound},
			wantKind: infra.KindNotFound,
		},
		{
			name:     "nil cause with explicit kind",
			err:      nil,
			kind:     []infra.RepositoryErrorKind{infra.KindNotFound},
			wantKind: infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := infra.WrapRepoErr("operation failed", tc.err, tc.kind...)

			require.Error(t, actual)
			assert.True(t, infra.IsKind(actual, tc.wantKind), "expected kind [%v] but got (%v)", tc.wantKind, actual)
			assert.Equal(t, tc.wantConstraint, infra.ConstraintOf(actual))
			assert.Equal(t, tc.wantTransient, errs.IsTransient(actual))
			if tc.err != nil {
				assert.ErrorIs(t, actual, tc.err)
			}
		})
	}
}
