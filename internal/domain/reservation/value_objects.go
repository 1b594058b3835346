package reservation

import (
	"time"

	"fleet-dispatch/internal/pkg/errs"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidDate = errs.NewKind(errs.ErrValidation, "date must be YYYY-MM-DD")
	ErrInvalidMode = errs.NewKind(errs.ErrValidation, "mode must be first or best")
)

// BookingDate is a calendar day with no time zone attached.
type BookingDate struct {
	t time.Time
}

func ParseBookingDate(s string) (BookingDate, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return BookingDate{}, ErrInvalidDate
	}
	return BookingDate{t: t}, nil
}

// BookingDateOf takes the calendar day of t as seen in t's location.
func BookingDateOf(t time.Time) BookingDate {
	y, m, d := t.Date()
	return BookingDate{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d BookingDate) String() string { return d.t.Format(DateLayout) }

// Time is midnight UTC of the day.
func (d BookingDate) Time() time.Time { return d.t }

func (d BookingDate) IsZero() bool { return d.t.IsZero() }

func (d BookingDate) Equal(other BookingDate) bool { return d.t.Equal(other.t) }

type Mode string

const (
	ModeFirstAvailable Mode = "first"
	ModeBestRated      Mode = "best"
)

// ParseMode defaults to ModeFirstAvailable when s is empty.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "":
		return ModeFirstAvailable, nil
	case ModeFirstAvailable, ModeBestRated:
		return Mode(s), nil
	default:
		return "", ErrInvalidMode
	}
}

func (m Mode) String() string { return string(m) }
