//go:build unit || e2e

package builder

import (
	"time"

	"fleet-dispatch/internal/domain/reservation"
	reqdto "fleet-dispatch/internal/handler/dto/request"
	"fleet-dispatch/internal/usecase/commands"
	"fleet-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID           uuid.UUID
	CustomerID   string
	VariantID    uuid.UUID
	VariantLabel string
	ResourceID   uuid.UUID
	Make         string
	Model        string
	Year         int
	OperatorID   string
	Date         string
	Mode         string
	CreatedAt    time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:           uuid.New(),
		CustomerID:   "cust-1",
		VariantID:    uuid.New(),
		VariantLabel: "standard",
		ResourceID:   uuid.New(),
		Make:         "Toyota",
		Model:        "Prius",
		Year:         2022,
		OperatorID:   "alice",
		Date:         "2030-06-01",
		Mode:         "first",
		CreatedAt:    time.Date(2030, 5, 20, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithOperator(id string) *ReservationBuilder {
	b.OperatorID = id
	return b
}

func (b *ReservationBuilder) WithCustomer(id string) *ReservationBuilder {
	b.CustomerID = id
	return b
}

func (b *ReservationBuilder) WithDate(date string) *ReservationBuilder {
	b.Date = date
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	date, err := reservation.ParseBookingDate(b.Date)
	if err != nil {
		panic("ReservationBuilder: " + err.Error())
	}
	return reservation.ReconstructReservation(b.ID, b.CustomerID, b.VariantID, b.ResourceID, b.OperatorID, date, b.CreatedAt)
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:           b.ID,
		CustomerID:   b.CustomerID,
		VariantID:    b.VariantID,
		VariantLabel: b.VariantLabel,
		ResourceID:   b.ResourceID,
		Make:         b.Make,
		Model:        b.Model,
		Year:         b.Year,
		OperatorID:   b.OperatorID,
		BookingDate:  b.Date,
		CreatedAt:    b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildResult(replayed bool) *commands.BookingResult {
	return &commands.BookingResult{Reservation: b.BuildDomain(), Replayed: replayed}
}

func (b *ReservationBuilder) BuildBookingInput() commands.BookingInput {
	return commands.BookingInput{VariantID: b.VariantID, Date: b.Date, Mode: b.Mode}
}

func (b *ReservationBuilder) BuildBookingRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{VariantID: b.VariantID, Date: b.Date, Mode: b.Mode}
}
