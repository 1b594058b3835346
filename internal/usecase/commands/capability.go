package commands

import (
	"context"
	"log/slog"

	"fleet-dispatch/internal/domain/auth"
	"fleet-dispatch/internal/domain/capability"
	"fleet-dispatch/internal/domain/operator"
	"fleet-dispatch/internal/domain/resource"
	"fleet-dispatch/internal/pkg/clock"
	"fleet-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

// CapabilityTarget names the variant directly or through its resource.
// Exactly one of VariantID and ResourceID must be set.
type CapabilityTarget struct {
	OperatorID string
	VariantID  *uuid.UUID
	ResourceID *uuid.UUID
}

type CapabilityCommands interface {
	Declare(ctx context.Context, actor auth.Principal, target CapabilityTarget) (*capability.Capability, error)
	Revoke(ctx context.Context, actor auth.Principal, target CapabilityTarget) error
}

type capabilityCommandsImpl struct {
	uow         shared.UnitOfWork
	invalidator shared.AvailabilityInvalidator
	clock       clock.Clock
}

func NewCapabilityCommands(uow shared.UnitOfWork, invalidator shared.AvailabilityInvalidator, clk clock.Clock) CapabilityCommands {
	return &capabilityCommandsImpl{
		uow:         uow,
		invalidator: invalidator,
		clock:       clk,
	}
}

func (c *capabilityCommandsImpl) Declare(ctx context.Context, actor auth.Principal, target CapabilityTarget) (*capability.Capability, error) {
	operatorID, err := resolveOperator(actor, target)
	if err != nil {
		return nil, err
	}

	var declared capability.Capability
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := ensureOperator(ctx, tx, operatorID); err != nil {
			return err
		}
		variant, err := resolveVariant(ctx, tx, target)
		if err != nil {
			return err
		}

		declared = capability.Capability{
			OperatorID: operatorID,
			VariantID:  variant.ID,
			ResourceID: variant.ResourceID,
			CreatedAt:  c.clock.Now(),
		}
		return tx.Capabilities().Create(ctx, tx.DB(), declared)
	})
	if err != nil {
		return nil, err
	}

	c.invalidator.InvalidateAll(ctx)
	slog.Info("capability declared",
		slog.String("operator_id", declared.OperatorID),
		slog.String("variant_id", declared.VariantID.String()))
	return &declared, nil
}

// Revoke leaves existing reservations untouched.
func (c *capabilityCommandsImpl) Revoke(ctx context.Context, actor auth.Principal, target CapabilityTarget) error {
	operatorID, err := resolveOperator(actor, target)
	if err != nil {
		return err
	}

	var variantID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := ensureOperator(ctx, tx, operatorID); err != nil {
			return err
		}
		variant, err := resolveVariant(ctx, tx, target)
		if err != nil {
			return err
		}
		variantID = variant.ID
		return tx.Capabilities().Delete(ctx, tx.DB(), operatorID, variant.ID)
	})
	if err != nil {
		return err
	}

	c.invalidator.InvalidateAll(ctx)
	slog.Info("capability revoked",
		slog.String("operator_id", operatorID),
		slog.String("variant_id", variantID.String()))
	return nil
}

func resolveOperator(actor auth.Principal, target CapabilityTarget) (string, error) {
	if (target.VariantID == nil) == (target.ResourceID == nil) {
		return "", ErrTargetRequired
	}

	requested := target.OperatorID
	if requested != "" {
		normalized, err := operator.NormalizeID(requested)
		if err != nil {
			return "", err
		}
		requested = normalized
	}
	return actor.ActingOperator(requested)
}

func ensureOperator(ctx context.Context, tx shared.Tx, operatorID string) error {
	exists, err := tx.Reads().OperatorExists(ctx, operatorID)
	if err != nil {
		return err
	}
	if !exists {
		return operator.ErrOperatorNotFound
	}
	return nil
}

// resolveVariant maps a resource to its only variant; several variants are ambiguous.
func resolveVariant(ctx context.Context, tx shared.Tx, target CapabilityTarget) (resource.Variant, error) {
	if target.VariantID != nil {
		snap, err := tx.Reads().VariantByID(ctx, *target.VariantID)
		if err != nil {
			return resource.Variant{}, err
		}
		return snap.Variant, nil
	}

	variants, err := tx.Reads().VariantsByResource(ctx, *target.ResourceID)
	if err != nil {
		return resource.Variant{}, err
	}
	return resource.SoleVariant(variants)
}
