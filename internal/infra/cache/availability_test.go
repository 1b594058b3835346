//go:build unit

package cache

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"fleet-dispatch/internal/domain/reservation"
	"fleet-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	data map[string]string
	down bool
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}}
}

var errRedisDown = errors.New("connection refused")

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.down {
		return redis.NewStringResult("", errRedisDown)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) MGet(_ context.Context, keys ...string) *redis.SliceCmd {
	if f.down {
		return redis.NewSliceResult(nil, errRedisDown)
	}
	out := make([]interface{}, len(keys))
	for i, k := range keys {
		if v, ok := f.data[k]; ok {
			out[i] = v
		}
	}
	return redis.NewSliceResult(out, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	if f.down {
		return redis.NewStatusResult("", errRedisDown)
	}
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Incr(_ context.Context, key string) *redis.IntCmd {
	if f.down {
		return redis.NewIntResult(0, errRedisDown)
	}
	n, _ := strconv.ParseInt(f.data[key], 10, 64)
	n++
	f.data[key] = strconv.FormatInt(n, 10)
	return redis.NewIntResult(n, nil)
}

func mustDate(t *testing.T, s string) reservation.BookingDate {
	t.Helper()
	d, err := reservation.ParseBookingDate(s)
	require.NoError(t, err)
	return d
}

func sampleItems() []queries.AvailabilityItem {
	return []queries.AvailabilityItem{{
		ResourceID:   uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		VariantID:    uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		VariantLabel: "standard",
		Make:         "Toyota",
		Model:        "Corolla",
		Year:         2020,
		OperatorID:   "alice",
	}}
}

func TestAvailabilityCache_PutThenGet(t *testing.T) {
	ctx := context.Background()
	c := newAvailabilityCache(newFakeRedis(), "test", time.Minute)
	date := mustDate(t, "2030-01-15")

	v, ok := c.Version(ctx, date)
	require.True(t, ok)
	c.Put(ctx, date, v, sampleItems())

	got, hit := c.Get(ctx, date, v)

	require.True(t, hit)
	assert.Equal(t, sampleItems(), got)
}

func TestAvailabilityCache_Invalidation(t *testing.T) {
	tests := []struct {
		name       string
		invalidate func(c *AvailabilityCache, date reservation.BookingDate)
		wantHit    bool
	}{
		{
			name:       "booking on the date hides the entry",
			invalidate: func(c *AvailabilityCache, d reservation.BookingDate) { c.InvalidateDate(context.Background(), d) },
			wantHit:    false,
		},
		{
			name: "booking on another date keeps the entry",
			invalidate: func(c *AvailabilityCache, _ reservation.BookingDate) {
				other, _ := reservation.ParseBookingDate("2030-01-16")
				c.InvalidateDate(context.Background(), other)
			},
			wantHit: true,
		},
		{
			name:       "capability change hides every date",
			invalidate: func(c *AvailabilityCache, _ reservation.BookingDate) { c.InvalidateAll(context.Background()) },
			wantHit:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			c := newAvailabilityCache(newFakeRedis(), "test", time.Minute)
			date := mustDate(t, "2030-01-15")

			v, ok := c.Version(ctx, date)
			require.True(t, ok)
			c.Put(ctx, date, v, sampleItems())

			tt.invalidate(c, date)

			fresh, ok := c.Version(ctx, date)
			require.True(t, ok)
			_, hit := c.Get(ctx, date, fresh)
			assert.Equal(t, tt.wantHit, hit)
		})
	}
}

func TestAvailabilityCache_RedisDown(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()
	rdb.down = true
	c := newAvailabilityCache(rdb, "test", time.Minute)
	date := mustDate(t, "2030-01-15")

	_, ok := c.Version(ctx, date)
	assert.False(t, ok)

	_, hit := c.Get(ctx, date, queries.CacheVersion{})
	assert.False(t, hit)

	assert.NotPanics(t, func() {
		c.Put(ctx, date, queries.CacheVersion{}, sampleItems())
		c.InvalidateDate(ctx, date)
		c.InvalidateAll(ctx)
	})
}

func TestNoop(t *testing.T) {
	ctx := context.Background()
	var n Noop
	date := mustDate(t, "2030-01-15")

	_, ok := n.Version(ctx, date)
	assert.False(t, ok)
	_, hit := n.Get(ctx, date, queries.CacheVersion{})
	assert.False(t, hit)
}
