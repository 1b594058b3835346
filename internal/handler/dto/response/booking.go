package response

import (
	"time"

	"fleet-dispatch/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	OperatorID    string    `json:"operator_id"`
	VariantID     uuid.UUID `json:"variant_id"`
	ResourceID    uuid.UUID `json:"resource_id"`
	Date          string    `json:"date"`
	CreatedAt     time.Time `json:"created_at"`
	Replayed      bool      `json:"replayed"`
}

func FromBookingResult(r *commands.BookingResult) *BookingResponse {
	res := r.Reservation
	return &BookingResponse{
		ReservationID: res.ID(),
		OperatorID:    res.OperatorID(),
		VariantID:     res.VariantID(),
		ResourceID:    res.ResourceID(),
		Date:          res.Date().String(),
		CreatedAt:     res.CreatedAt(),
		Replayed:      r.Replayed,
	}
}
