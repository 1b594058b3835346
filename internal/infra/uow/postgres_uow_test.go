//go:build unit

package uow

import (
	"context"
	"errors"
	"testing"
	"time"

	"fleet-dispatch/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: pgErrCodeSerializationFailure}, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: pgErrCodeDeadlockDetected}, want: true},
		{name: "wrapped serialization failure", err: errs.Wrap(&pgconn.PgError{Code: "40001"}, "commit"), want: true},
		{name: "unique violation is never retried", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestShouldRetry_RespectsMaxRetries(t *testing.T) {
	u := newPostgresUoW(nil, nil, time.Second, 1)
	retryable := &pgconn.PgError{Code: pgErrCodeSerializationFailure}

	assert.True(t, u.shouldRetry(retryable, 0))
	assert.False(t, u.shouldRetry(retryable, 1))
	assert.False(t, u.shouldRetry(errors.New("conflict"), 0))
}

func TestCalculateBackoff(t *testing.T) {
	base := 50 * time.Millisecond

	for attempt := 0; attempt < 4; attempt++ {
		got := calculateBackoff(attempt, base)
		floor := time.Duration(1<<attempt) * base
		assert.GreaterOrEqual(t, got, floor)
		assert.Less(t, got, floor+floor/5+time.Nanosecond)
	}
}

func TestMarkTimeout(t *testing.T) {
	t.Run("deadline exceeded marks transient", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
		defer cancel()
		<-ctx.Done()

		err := markTimeout(ctx, errors.New("query canceled"))

		assert.True(t, errs.IsTransient(err))
		assert.True(t, errs.Is(err, errOperationTimeout))
	})

	t.Run("live context leaves error alone", func(t *testing.T) {
		base := errors.New("boom")

		err := markTimeout(context.Background(), base)

		assert.Same(t, base, err)
		assert.False(t, errs.IsTransient(err))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, markTimeout(context.Background(), nil))
	})
}

func TestWithTimeout_ZeroDisablesDeadline(t *testing.T) {
	u := newPostgresUoW(nil, nil, 0, 1)

	ctx, cancel := u.withTimeout(context.Background())
	defer cancel()

	_, ok := ctx.Deadline()
	assert.False(t, ok)
}
