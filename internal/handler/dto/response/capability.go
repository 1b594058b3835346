package response

import (
	"time"

	"fleet-dispatch/internal/domain/capability"
	"fleet-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CapabilityResponse struct {
	OperatorID string    `json:"operator_id"`
	VariantID  uuid.UUID `json:"variant_id"`
	ResourceID uuid.UUID `json:"resource_id"`
	DeclaredAt time.Time `json:"declared_at"`
}

func FromCapability(c *capability.Capability) *CapabilityResponse {
	return &CapabilityResponse{
		OperatorID: c.OperatorID,
		VariantID:  c.VariantID,
		ResourceID: c.ResourceID,
		DeclaredAt: c.CreatedAt,
	}
}

type CapabilityVariantResponse struct {
	VariantID    uuid.UUID `json:"variant_id"`
	VariantLabel string    `json:"variant_label"`
	ResourceID   uuid.UUID `json:"resource_id"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	DeclaredAt   time.Time `json:"declared_at"`
}

type OperatorCapabilitiesResponse struct {
	OperatorID string                      `json:"operator_id"`
	Variants   []CapabilityVariantResponse `json:"variants"`
}

func FromOperatorCapabilities(v *queries.OperatorCapabilitiesView) (*OperatorCapabilitiesResponse, error) {
	resp := &OperatorCapabilitiesResponse{
		OperatorID: v.OperatorID,
		Variants:   make([]CapabilityVariantResponse, 0, len(v.Variants)),
	}
	if err := copier.Copy(&resp.Variants, &v.Variants); err != nil {
		return nil, err
	}
	return resp, nil
}
