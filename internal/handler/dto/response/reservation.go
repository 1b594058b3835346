package response

import (
	"time"

	"fleet-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID           uuid.UUID `json:"id"`
	CustomerID   string    `json:"customer_id"`
	OperatorID   string    `json:"operator_id"`
	VariantID    uuid.UUID `json:"variant_id"`
	VariantLabel string    `json:"variant_label"`
	ResourceID   uuid.UUID `json:"resource_id"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	Date         string    `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReservationListResponse struct {
	Items      []*ReservationResponse `json:"items"`
	NextCursor *string                `json:"next_cursor,omitempty"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:           v.ID,
		CustomerID:   v.CustomerID,
		OperatorID:   v.OperatorID,
		VariantID:    v.VariantID,
		VariantLabel: v.VariantLabel,
		ResourceID:   v.ResourceID,
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		Date:         v.BookingDate,
		CreatedAt:    v.CreatedAt,
	}
}

func FromReservationPage(p *queries.ReservationPage) *ReservationListResponse {
	items := make([]*ReservationResponse, len(p.Items))
	for i := range p.Items {
		items[i] = FromReservationView(&p.Items[i])
	}
	return &ReservationListResponse{Items: items, NextCursor: p.NextCursor}
}
