//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"fleet-dispatch/internal/domain/resource"
	"fleet-dispatch/internal/pkg/clock"
	"fleet-dispatch/internal/usecase/shared"
	sharedmock "fleet-dispatch/tests/mock/shared"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2030, 5, 20, 9, 0, 0, 0, time.UTC)

// txMocks runs every Within callback inline against one mocked transaction.
type txMocks struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	reservations  *sharedmock.MockReservationRepository
	capabilities  *sharedmock.MockCapabilityRepository
	ratings       *sharedmock.MockRatingRepository
	idempotency   *sharedmock.MockIdempotencyRepository
	notifications *sharedmock.MockNotificationRepository
	invalidator   *sharedmock.MockAvailabilityInvalidator
	clock         *clock.MockClock
}

func newTxMocks(t *testing.T) *txMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &txMocks{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		reservations:  sharedmock.NewMockReservationRepository(ctrl),
		capabilities:  sharedmock.NewMockCapabilityRepository(ctrl),
		ratings:       sharedmock.NewMockRatingRepository(ctrl),
		idempotency:   sharedmock.NewMockIdempotencyRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		invalidator:   sharedmock.NewMockAvailabilityInvalidator(ctrl),
		clock:         clock.NewMockClock(testNow),
	}

	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Reservations().Return(m.reservations).AnyTimes()
	m.tx.EXPECT().Capabilities().Return(m.capabilities).AnyTimes()
	m.tx.EXPECT().Ratings().Return(m.ratings).AnyTimes()
	m.tx.EXPECT().Idempotency().Return(m.idempotency).AnyTimes()
	m.tx.EXPECT().Notifications().Return(m.notifications).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()

	return m
}

func newVariantSnapshot() *shared.VariantSnapshot {
	resourceID := uuid.New()
	return &shared.VariantSnapshot{
		Variant:  resource.Variant{ID: uuid.New(), ResourceID: resourceID, Label: "standard"},
		Resource: resource.Resource{ID: resourceID, Make: "Toyota", Model: "Prius", Year: 2022},
	}
}
