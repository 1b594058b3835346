//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateResource inserts a resource with a single variant and returns both ids.
func CreateResource(t *testing.T, db DBLike, vehicleMake, model string, year int) (resourceID, variantID uuid.UUID) {
	t.Helper()

	ctx := context.Background()
	resourceID = uuid.New()
	_, err := db.Exec(ctx, "INSERT INTO resources (id, make, model, year) VALUES ($1, $2, $3, $4)",
		resourceID, vehicleMake, model, year)
	require.NoError(t, err)

	variantID = CreateVariant(t, db, resourceID, "standard")
	return resourceID, variantID
}

func CreateVariant(t *testing.T, db DBLike, resourceID uuid.UUID, label string) uuid.UUID {
	t.Helper()

	variantID := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO variants (id, resource_id, label) VALUES ($1, $2, $3)",
		variantID, resourceID, label)
	require.NoError(t, err)
	return variantID
}

func CreateOperator(t *testing.T, db DBLike, id string) {
	t.Helper()

	_, err := db.Exec(context.Background(), "INSERT INTO operators (id) VALUES ($1) ON CONFLICT (id) DO NOTHING", id)
	require.NoError(t, err)
}

func DeclareCapability(t *testing.T, db DBLike, operatorID string, variantID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO capabilities (operator_id, variant_id, resource_id)
		SELECT $1, v.id, v.resource_id FROM variants v WHERE v.id = $2`,
		operatorID, variantID)
	require.NoError(t, err)
}

// CreateReservation writes a ledger row directly, bypassing assignment.
func CreateReservation(t *testing.T, db DBLike, customerID, operatorID string, variantID uuid.UUID, date string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO reservations (id, customer_id, variant_id, resource_id, operator_id, booking_date)
		SELECT $1, $2, v.id, v.resource_id, $3, $4::date FROM variants v WHERE v.id = $5`,
		id, customerID, operatorID, date, variantID)
	require.NoError(t, err)
	return id
}

// CreateRatings inserts one rating per score for the operator.
func CreateRatings(t *testing.T, db DBLike, operatorID string, scores ...int) {
	t.Helper()

	for _, score := range scores {
		_, err := db.Exec(context.Background(),
			"INSERT INTO ratings (id, operator_id, customer_id, score) VALUES ($1, $2, $3, $4)",
			uuid.New(), operatorID, "seed-customer", score)
		require.NoError(t, err)
	}
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table in the public schema.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
