package response

import (
	"fleet-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AvailabilityItemResponse struct {
	ResourceID   uuid.UUID `json:"resource_id"`
	VariantID    uuid.UUID `json:"variant_id"`
	VariantLabel string    `json:"variant_label"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	OperatorID   string    `json:"operator_id"`
}

type AvailabilityResponse struct {
	Date  string                     `json:"date"`
	Items []AvailabilityItemResponse `json:"items"`
}

func FromAvailabilityView(v *queries.AvailabilityView) (*AvailabilityResponse, error) {
	resp := &AvailabilityResponse{
		Date:  v.Date,
		Items: make([]AvailabilityItemResponse, 0, len(v.Items)),
	}
	if err := copier.Copy(&resp.Items, &v.Items); err != nil {
		return nil, err
	}
	return resp, nil
}
