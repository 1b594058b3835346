package resource

import (
	"strings"

	"fleet-dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrVariantNotFound    = errs.NewKind(errs.ErrNotFound, "variant not found")
	ErrResourceNotFound   = errs.NewKind(errs.ErrNotFound, "resource not found")
	ErrResourceNoVariants = errs.NewKind(errs.ErrNotFound, "resource has no variants")
	ErrAmbiguousVariant   = errs.NewKind(errs.ErrValidation, "resource has multiple variants; specify variant_id")
	ErrInvalidDescriptor  = errs.NewKind(errs.ErrValidation, "resource make and model are required")
	ErrInvalidYear        = errs.NewKind(errs.ErrValidation, "resource year is out of range")
)

const (
	MinYear = 1886
	MaxYear = 9999
)

// Resource is a vehicle as listed in the catalog.
type Resource struct {
	ID    uuid.UUID
	Make  string
	Model string
	Year  int
}

// Variant is a bookable configuration of a Resource.
type Variant struct {
	ID         uuid.UUID
	ResourceID uuid.UUID
	Label      string
}

func NewResource(id uuid.UUID, vehicleMake, model string, year int) (Resource, error) {
	vehicleMake, model = strings.TrimSpace(vehicleMake), strings.TrimSpace(model)
	if vehicleMake == "" || model == "" {
		return Resource{}, ErrInvalidDescriptor
	}
	if year < MinYear || year > MaxYear {
		return Resource{}, ErrInvalidYear
	}
	return Resource{ID: id, Make: vehicleMake, Model: model, Year: year}, nil
}

// SoleVariant picks the only variant of a resource.
func SoleVariant(variants []Variant) (Variant, error) {
	switch len(variants) {
	case 0:
		return Variant{}, ErrResourceNoVariants
	case 1:
		return variants[0], nil
	default:
		return Variant{}, ErrAmbiguousVariant
	}
}
