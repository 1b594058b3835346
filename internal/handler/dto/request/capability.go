package request

import (
	"fleet-dispatch/internal/usecase/commands"

	"github.com/google/uuid"
)

// CapabilityRequest names the variant directly or through a single-variant
// resource. Admins must set OperatorID; operators may omit it or name themselves.
type CapabilityRequest struct {
	VariantID  *uuid.UUID `json:"variant_id,omitempty"`
	ResourceID *uuid.UUID `json:"resource_id,omitempty"`
	OperatorID string     `json:"operator_id,omitempty" binding:"omitempty,max=100"`
}

func (r CapabilityRequest) ToTarget() commands.CapabilityTarget {
	return commands.CapabilityTarget{
		OperatorID: r.OperatorID,
		VariantID:  r.VariantID,
		ResourceID: r.ResourceID,
	}
}
