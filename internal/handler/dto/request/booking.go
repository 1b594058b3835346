package request

import (
	"fleet-dispatch/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	VariantID uuid.UUID `json:"variant_id" binding:"required"`
	Date      string    `json:"date" binding:"required"`
	// Mode is "first" (default) or "best".
	Mode string `json:"mode,omitempty"`
}

func (r CreateBookingRequest) ToInput() commands.BookingInput {
	return commands.BookingInput{
		VariantID: r.VariantID,
		Date:      r.Date,
		Mode:      r.Mode,
	}
}
