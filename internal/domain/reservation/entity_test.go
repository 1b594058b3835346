//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"fleet-dispatch/internal/domain/reservation"
	"fleet-dispatch/internal/pkg/clock"
	"fleet-dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingDate(t *testing.T) {
	d, err := reservation.ParseBookingDate("2025-04-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-04-01", d.String())
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), d.Time())

	for _, bad := range []string{"", "2025-4-1", "2025-02-30", "01/04/2025", "2025-04-01T00:00:00Z"} {
		_, err := reservation.ParseBookingDate(bad)
		assert.ErrorIs(t, err, reservation.ErrInvalidDate, bad)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err), bad)
	}
}

func TestBookingDateOf(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	d := reservation.BookingDateOf(time.Date(2025, 4, 1, 23, 30, 0, 0, tokyo))

	assert.Equal(t, "2025-04-01", d.String())
	assert.True(t, d.Equal(reservation.BookingDateOf(time.Date(2025, 4, 1, 1, 0, 0, 0, time.UTC))))
}

func TestParseMode(t *testing.T) {
	testCases := []struct {
		in    string
		want  reservation.Mode
		errIs error
	}{
		{in: "", want: reservation.ModeFirstAvailable},
		{in: "first", want: reservation.ModeFirstAvailable},
		{in: "best", want: reservation.ModeBestRated},
		{in: "BEST", errIs: reservation.ErrInvalidMode},
		{in: "cheapest", errIs: reservation.ErrInvalidMode},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			actual, err := reservation.ParseMode(tc.in)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, actual)
		})
	}
}

func TestNewReservation(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	date, err := reservation.ParseBookingDate("2025-04-01")
	require.NoError(t, err)
	variantID, resourceID := uuid.New(), uuid.New()

	actual, err := reservation.NewReservation(clk, "cust-1", variantID, resourceID, "alice", date)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, actual.ID())
	assert.Equal(t, "cust-1", actual.CustomerID())
	assert.Equal(t, variantID, actual.VariantID())
	assert.Equal(t, resourceID, actual.ResourceID())
	assert.Equal(t, "alice", actual.OperatorID())
	assert.True(t, date.Equal(actual.Date()))
	assert.Equal(t, now, actual.CreatedAt())

	assert.True(t, actual.VisibleTo("cust-1"))
	assert.True(t, actual.VisibleTo("alice"))
	assert.False(t, actual.VisibleTo("bob"))

	_, err = reservation.NewReservation(clk, "", variantID, resourceID, "alice", date)
	assert.ErrorIs(t, err, reservation.ErrEmptyCustomer)

	_, err = reservation.NewReservation(clk, "cust-1", variantID, resourceID, "", date)
	assert.ErrorIs(t, err, reservation.ErrEmptyOperator)

	_, err = reservation.NewReservation(clk, "cust-1", variantID, resourceID, "alice", reservation.BookingDate{})
	assert.ErrorIs(t, err, reservation.ErrInvalidDate)
}

func TestConflictForConstraint(t *testing.T) {
	assert.ErrorIs(t, reservation.ConflictForConstraint(reservation.ConstraintVariantDate), reservation.ErrVariantBooked)
	assert.ErrorIs(t, reservation.ConflictForConstraint(reservation.ConstraintOperatorDate), reservation.ErrOperatorBooked)
	assert.Nil(t, reservation.ConflictForConstraint("reservations_pkey"))
}
