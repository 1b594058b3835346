package commands

import "fleet-dispatch/internal/pkg/errs"

var (
	ErrIdempotencyKeyReused  = errs.NewKind(errs.ErrConflict, "idempotency key reused with a different request")
	ErrIdempotencyInProgress = errs.NewKind(errs.ErrConflict, "request in progress")
	ErrVariantRequired       = errs.NewKind(errs.ErrValidation, "variant_id is required")
	ErrTargetRequired        = errs.NewKind(errs.ErrValidation, "exactly one of variant_id or resource_id is required")

	errMissingReplayResult = errs.New("completed idempotency key has no reservation")
)
