package queries

import (
	"context"

	"fleet-dispatch/internal/domain/availability"
	"fleet-dispatch/internal/domain/reservation"
	sqlc "fleet-dispatch/internal/infra/sqlc/generated"

	"github.com/jinzhu/copier"
)

// CacheVersion identifies the generation an availability result was computed at.
type CacheVersion struct {
	Global int64
	Date   int64
}

// AvailabilityCache must be read for its version before the snapshot is taken.
// Failures degrade to a miss.
type AvailabilityCache interface {
	Version(ctx context.Context, date reservation.BookingDate) (CacheVersion, bool)
	Get(ctx context.Context, date reservation.BookingDate, v CacheVersion) ([]AvailabilityItem, bool)
	Put(ctx context.Context, date reservation.BookingDate, v CacheVersion, items []AvailabilityItem)
}

type AvailabilitySnapshotReader interface {
	Snapshot(ctx context.Context, db sqlc.DBTX, date reservation.BookingDate) (availability.Snapshot, error)
}

type ReadOnlyRunner interface {
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type AvailabilityQueries interface {
	Available(ctx context.Context, rawDate string) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	runner ReadOnlyRunner
	reader AvailabilitySnapshotReader
	cache  AvailabilityCache
}

func NewAvailabilityQueries(runner ReadOnlyRunner, reader AvailabilitySnapshotReader, cache AvailabilityCache) AvailabilityQueries {
	return &availabilityQueriesImpl{
		runner: runner,
		reader: reader,
		cache:  cache,
	}
}

func (q *availabilityQueriesImpl) Available(ctx context.Context, rawDate string) (*AvailabilityView, error) {
	date, err := reservation.ParseBookingDate(rawDate)
	if err != nil {
		return nil, err
	}

	version, cacheable := q.cache.Version(ctx, date)
	if cacheable {
		if items, hit := q.cache.Get(ctx, date, version); hit {
			return &AvailabilityView{Date: date.String(), Items: items}, nil
		}
	}

	var snap availability.Snapshot
	err = q.runner.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var readErr error
		snap, readErr = q.reader.Snapshot(ctx, db, date)
		return readErr
	})
	if err != nil {
		return nil, err
	}

	items := toAvailabilityItems(availability.Calculate(snap))
	if cacheable {
		q.cache.Put(ctx, date, version, items)
	}

	return &AvailabilityView{Date: date.String(), Items: items}, nil
}

func toAvailabilityItems(slots []availability.Slot) []AvailabilityItem {
	items := make([]AvailabilityItem, len(slots))
	for i, s := range slots {
		_ = copier.Copy(&items[i], &s.Resource)
		items[i].ResourceID = s.Resource.ID
		items[i].VariantID = s.Variant.ID
		items[i].VariantLabel = s.Variant.Label
		items[i].OperatorID = s.OperatorID
	}
	return items
}
