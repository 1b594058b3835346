package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"fleet-dispatch/internal/domain/reservation"
	"fleet-dispatch/internal/pkg/config"
	"fleet-dispatch/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

// redisClient is the subset of go-redis used here.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	MGet(ctx context.Context, keys ...string) *redis.SliceCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// AvailabilityCache stores availability results under a key built from two
// generation counters: a global one bumped by capability changes and a per-date
// one bumped by bookings. Bumping either makes older entries unreachable; they
// expire on their own TTL.
type AvailabilityCache struct {
	rdb    redisClient
	prefix string
	ttl    time.Duration
}

func NewAvailabilityCache(rdb *redis.Client, cfg config.RedisConfig) *AvailabilityCache {
	return newAvailabilityCache(rdb, cfg.KeyPrefix, cfg.AvailabilityTTL)
}

func newAvailabilityCache(rdb redisClient, prefix string, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (c *AvailabilityCache) globalKey() string {
	return c.prefix + ":gen"
}

func (c *AvailabilityCache) dateKey(date reservation.BookingDate) string {
	return c.prefix + ":gen:" + date.String()
}

func (c *AvailabilityCache) entryKey(date reservation.BookingDate, v queries.CacheVersion) string {
	return c.prefix + ":" + date.String() + ":" + strconv.FormatInt(v.Global, 10) + ":" + strconv.FormatInt(v.Date, 10)
}

// Version reads both generations; ok is false when Redis is unreachable.
func (c *AvailabilityCache) Version(ctx context.Context, date reservation.BookingDate) (queries.CacheVersion, bool) {
	vals, err := c.rdb.MGet(ctx, c.globalKey(), c.dateKey(date)).Result()
	if err != nil {
		slog.Warn("availability cache version read failed", slog.Any("error", err))
		return queries.CacheVersion{}, false
	}

	var v queries.CacheVersion
	for i, raw := range vals {
		if raw == nil {
			continue
		}
		s, ok := raw.(string)
		if !ok {
			return queries.CacheVersion{}, false
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return queries.CacheVersion{}, false
		}
		if i == 0 {
			v.Global = n
		} else {
			v.Date = n
		}
	}
	return v, true
}

func (c *AvailabilityCache) Get(ctx context.Context, date reservation.BookingDate, v queries.CacheVersion) ([]queries.AvailabilityItem, bool) {
	raw, err := c.rdb.Get(ctx, c.entryKey(date, v)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("availability cache read failed", slog.Any("error", err))
		}
		return nil, false
	}

	var items []queries.AvailabilityItem
	if err := json.Unmarshal(raw, &items); err != nil {
		slog.Warn("availability cache entry is corrupt", slog.Any("error", err))
		return nil, false
	}
	return items, true
}

func (c *AvailabilityCache) Put(ctx context.Context, date reservation.BookingDate, v queries.CacheVersion, items []queries.AvailabilityItem) {
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, c.entryKey(date, v), raw, c.ttl).Err(); err != nil {
		slog.Warn("availability cache write failed", slog.Any("error", err))
	}
}

func (c *AvailabilityCache) InvalidateDate(ctx context.Context, date reservation.BookingDate) {
	if err := c.rdb.Incr(ctx, c.dateKey(date)).Err(); err != nil {
		slog.Error("availability cache invalidation failed",
			slog.String("date", date.String()),
			slog.Any("error", err))
	}
}

func (c *AvailabilityCache) InvalidateAll(ctx context.Context) {
	if err := c.rdb.Incr(ctx, c.globalKey()).Err(); err != nil {
		slog.Error("availability cache invalidation failed", slog.Any("error", err))
	}
}

// Noop is used when Redis is not configured.
type Noop struct{}

func (Noop) Version(context.Context, reservation.BookingDate) (queries.CacheVersion, bool) {
	return queries.CacheVersion{}, false
}

func (Noop) Get(context.Context, reservation.BookingDate, queries.CacheVersion) ([]queries.AvailabilityItem, bool) {
	return nil, false
}

func (Noop) Put(context.Context, reservation.BookingDate, queries.CacheVersion, []queries.AvailabilityItem) {
}

func (Noop) InvalidateDate(context.Context, reservation.BookingDate) {}

func (Noop) InvalidateAll(context.Context) {}
