package operator

import (
	"strings"

	"fleet-dispatch/internal/pkg/errs"
)

var (
	ErrOperatorNotFound = errs.NewKind(errs.ErrNotFound, "operator not found")
	ErrInvalidID        = errs.NewKind(errs.ErrValidation, "operator id must be 1-100 characters")
)

const MaxIDLength = 100

// NormalizeID validates an operator id. Operators are identified by their
// globally unique name.
func NormalizeID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" || len(id) > MaxIDLength {
		return "", ErrInvalidID
	}
	return id, nil
}
