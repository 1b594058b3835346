package capability

import (
	"time"

	"fleet-dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAlreadyDeclared = errs.NewKind(errs.ErrConflict, "capability already declared")
	ErrNotDeclared     = errs.NewKind(errs.ErrNotFound, "capability not found")
)

// PrimaryKeyConstraint is violated when a pair is declared twice.
const PrimaryKeyConstraint = "capabilities_pkey"

// Capability certifies an operator to drive one variant.
type Capability struct {
	OperatorID string
	VariantID  uuid.UUID
	ResourceID uuid.UUID
	CreatedAt  time.Time
}
