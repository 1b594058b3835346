//go:build unit

package commands_test

import (
	"context"
	"testing"

	"fleet-dispatch/internal/domain/auth"
	"fleet-dispatch/internal/domain/capability"
	"fleet-dispatch/internal/domain/operator"
	"fleet-dispatch/internal/domain/resource"
	"fleet-dispatch/internal/usecase/commands"
	"fleet-dispatch/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCapabilities(m *txMocks) commands.CapabilityCommands {
	return commands.NewCapabilityCommands(m.uow, m.invalidator, m.clock)
}

func TestCapabilityCommands_Declare(t *testing.T) {
	ctx := context.Background()

	t.Run("success: operator declares a variant for themselves", func(t *testing.T) {
		m := newTxMocks(t)
		snap := newVariantSnapshot()
		variantID := snap.Variant.ID

		m.reads.EXPECT().OperatorExists(gomock.Any(), "alice").Return(true, nil)
		m.reads.EXPECT().VariantByID(gomock.Any(), variantID).Return(snap, nil)
		m.capabilities.EXPECT().Create(gomock.Any(), gomock.Any(), capability.Capability{
			OperatorID: "alice",
			VariantID:  variantID,
			ResourceID: snap.Resource.ID,
			CreatedAt:  testNow,
		}).Return(nil)
		m.invalidator.EXPECT().InvalidateAll(gomock.Any())

		got, err := newCapabilities(m).Declare(ctx, builder.Operator("alice"), commands.CapabilityTarget{VariantID: &variantID})
		require.NoError(t, err)
		assert.Equal(t, "alice", got.OperatorID)
		assert.Equal(t, snap.Resource.ID, got.ResourceID)
	})

	t.Run("success: admin declares through a single-variant resource", func(t *testing.T) {
		m := newTxMocks(t)
		resourceID := uuid.New()
		variant := resource.Variant{ID: uuid.New(), ResourceID: resourceID, Label: "standard"}

		m.reads.EXPECT().OperatorExists(gomock.Any(), "bob").Return(true, nil)
		m.reads.EXPECT().VariantsByResource(gomock.Any(), resourceID).Return([]resource.Variant{variant}, nil)
		m.capabilities.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.invalidator.EXPECT().InvalidateAll(gomock.Any())

		got, err := newCapabilities(m).Declare(ctx, builder.Admin("root"), commands.CapabilityTarget{
			OperatorID: " bob ",
			ResourceID: &resourceID,
		})
		require.NoError(t, err)
		assert.Equal(t, "bob", got.OperatorID)
		assert.Equal(t, variant.ID, got.VariantID)
	})

	t.Run("validation: resource with several variants is ambiguous", func(t *testing.T) {
		m := newTxMocks(t)
		resourceID := uuid.New()

		m.reads.EXPECT().OperatorExists(gomock.Any(), "alice").Return(true, nil)
		m.reads.EXPECT().VariantsByResource(gomock.Any(), resourceID).Return([]resource.Variant{
			{ID: uuid.New(), ResourceID: resourceID, Label: "standard"},
			{ID: uuid.New(), ResourceID: resourceID, Label: "premium"},
		}, nil)

		_, err := newCapabilities(m).Declare(ctx, builder.Operator("alice"), commands.CapabilityTarget{ResourceID: &resourceID})
		assert.ErrorIs(t, err, resource.ErrAmbiguousVariant)
	})

	t.Run("conflict: pair already declared", func(t *testing.T) {
		m := newTxMocks(t)
		snap := newVariantSnapshot()
		variantID := snap.Variant.ID

		m.reads.EXPECT().OperatorExists(gomock.Any(), "alice").Return(true, nil)
		m.reads.EXPECT().VariantByID(gomock.Any(), variantID).Return(snap, nil)
		m.capabilities.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(capability.ErrAlreadyDeclared)

		_, err := newCapabilities(m).Declare(ctx, builder.Operator("alice"), commands.CapabilityTarget{VariantID: &variantID})
		assert.ErrorIs(t, err, capability.ErrAlreadyDeclared)
	})

	t.Run("not found: unknown operator", func(t *testing.T) {
		m := newTxMocks(t)
		variantID := uuid.New()
		m.reads.EXPECT().OperatorExists(gomock.Any(), "ghost").Return(false, nil)

		_, err := newCapabilities(m).Declare(ctx, builder.Admin("root"), commands.CapabilityTarget{
			OperatorID: "ghost",
			VariantID:  &variantID,
		})
		assert.ErrorIs(t, err, operator.ErrOperatorNotFound)
	})

	t.Run("rejected before the transaction", func(t *testing.T) {
		variantID := uuid.New()
		resourceID := uuid.New()

		testCases := []struct {
			name    string
			actor   auth.Principal
			target  commands.CapabilityTarget
			wantErr error
		}{
			{name: "no target", actor: builder.Operator("alice"), target: commands.CapabilityTarget{}, wantErr: commands.ErrTargetRequired},
			{name: "both targets", actor: builder.Operator("alice"), target: commands.CapabilityTarget{VariantID: &variantID, ResourceID: &resourceID}, wantErr: commands.ErrTargetRequired},
			{name: "operator acting for another", actor: builder.Operator("alice"), target: commands.CapabilityTarget{OperatorID: "bob", VariantID: &variantID}, wantErr: auth.ErrRoleNotAllowed},
			{name: "customer", actor: builder.Customer("cust-1"), target: commands.CapabilityTarget{VariantID: &variantID}, wantErr: auth.ErrRoleNotAllowed},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				m := newTxMocks(t)
				_, err := newCapabilities(m).Declare(ctx, tc.actor, tc.target)
				assert.ErrorIs(t, err, tc.wantErr)
			})
		}
	})
}

func TestCapabilityCommands_Revoke(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		m := newTxMocks(t)
		snap := newVariantSnapshot()
		variantID := snap.Variant.ID

		m.reads.EXPECT().OperatorExists(gomock.Any(), "alice").Return(true, nil)
		m.reads.EXPECT().VariantByID(gomock.Any(), variantID).Return(snap, nil)
		m.capabilities.EXPECT().Delete(gomock.Any(), gomock.Any(), "alice", variantID).Return(nil)
		m.invalidator.EXPECT().InvalidateAll(gomock.Any())

		err := newCapabilities(m).Revoke(ctx, builder.Operator("alice"), commands.CapabilityTarget{VariantID: &variantID})
		assert.NoError(t, err)
	})

	t.Run("not found: nothing declared leaves the cache alone", func(t *testing.T) {
		m := newTxMocks(t)
		snap := newVariantSnapshot()
		variantID := snap.Variant.ID

		m.reads.EXPECT().OperatorExists(gomock.Any(), "alice").Return(true, nil)
		m.reads.EXPECT().VariantByID(gomock.Any(), variantID).Return(snap, nil)
		m.capabilities.EXPECT().Delete(gomock.Any(), gomock.Any(), "alice", variantID).Return(capability.ErrNotDeclared)

		err := newCapabilities(m).Revoke(ctx, builder.Operator("alice"), commands.CapabilityTarget{VariantID: &variantID})
		assert.ErrorIs(t, err, capability.ErrNotDeclared)
		assert.Equal(t, "capability not found", err.Error())
	})
}
