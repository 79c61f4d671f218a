package order_test

import (
	"testing"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/stage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shipDate() time.Time {
	return time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
}

func newActiveOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), shipDate())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("starts_at_design_proposal_and_active", func(t *testing.T) {
		id := kernel.NewUUID()
		orgID := kernel.NewUUID()

		o, err := order.NewOrder(id, orgID, shipDate())

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.OrganizationID().IsEqual(orgID))
		assert.Equal(t, stage.DesignProposal, o.CurrentStage())
		assert.Equal(t, order.Active, o.Status())
		assert.Equal(t, shipDate(), o.OriginalShipDate())
		assert.Equal(t, shipDate(), o.CurrentShipDate())
		assert.Equal(t, int64(1), o.Version())
	})

	t.Run("rejects_invalid_inputs", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(), shipDate())
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.UUID{}, shipDate())
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Time{})
		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("reconstructs_persisted_state", func(t *testing.T) {
		id := kernel.NewUUID()
		orgID := kernel.NewUUID()
		revised := shipDate().AddDate(0, 0, 14)

		o, err := order.RestoreOrder(id, orgID, stage.Cutting, shipDate(), revised, order.Active, 7)

		require.NoError(t, err)
		assert.Equal(t, stage.Cutting, o.CurrentStage())
		assert.Equal(t, shipDate(), o.OriginalShipDate())
		assert.Equal(t, revised, o.CurrentShipDate())
		assert.Equal(t, int64(7), o.Version())
	})

	t.Run("rejects_invalid_stage_status_or_version", func(t *testing.T) {
		id := kernel.NewUUID()
		orgID := kernel.NewUUID()

		_, err := order.RestoreOrder(id, orgID, stage.Unknown, shipDate(), shipDate(), order.Active, 1)
		require.Error(t, err)

		_, err = order.RestoreOrder(id, orgID, stage.Cutting, shipDate(), shipDate(), order.Unknown, 1)
		require.Error(t, err)

		_, err = order.RestoreOrder(id, orgID, stage.Cutting, shipDate(), shipDate(), order.Active, 0)
		require.Error(t, err)
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("forward_transition_is_allowed", func(t *testing.T) {
		o := newActiveOrder(t)

		require.NoError(t, o.TransitionTo(stage.Measurements, false, false))
		assert.Equal(t, stage.Measurements, o.CurrentStage())
	})

	t.Run("forward_jump_is_allowed", func(t *testing.T) {
		o := newActiveOrder(t)

		require.NoError(t, o.TransitionTo(stage.QualityControl, false, false))
		assert.Equal(t, stage.QualityControl, o.CurrentStage())
	})

	t.Run("backward_without_correction_flag_is_rejected", func(t *testing.T) {
		o := newActiveOrder(t)
		require.NoError(t, o.TransitionTo(stage.Assembly, false, false))

		err := o.TransitionTo(stage.Cutting, false, false)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, stage.Assembly, o.CurrentStage())
	})

	t.Run("backward_with_correction_flag_succeeds", func(t *testing.T) {
		o := newActiveOrder(t)
		require.NoError(t, o.TransitionTo(stage.Assembly, false, false))

		require.NoError(t, o.TransitionTo(stage.Cutting, true, false))
		assert.Equal(t, stage.Cutting, o.CurrentStage())
	})

	t.Run("same_stage_without_amendment_is_a_noop", func(t *testing.T) {
		o := newActiveOrder(t)

		err := o.TransitionTo(stage.DesignProposal, false, false)

		require.ErrorIs(t, err, order.ErrNoOpTransition)
	})

	t.Run("same_stage_with_amendment_succeeds", func(t *testing.T) {
		o := newActiveOrder(t)

		require.NoError(t, o.TransitionTo(stage.DesignProposal, false, true))
		assert.Equal(t, stage.DesignProposal, o.CurrentStage())
	})

	t.Run("invalid_target_stage_is_rejected", func(t *testing.T) {
		o := newActiveOrder(t)

		require.Error(t, o.TransitionTo(stage.Unknown, false, false))
	})

	t.Run("closed_order_rejects_transitions", func(t *testing.T) {
		o := newActiveOrder(t)
		require.NoError(t, o.Cancel())

		err := o.TransitionTo(stage.Measurements, false, false)

		require.ErrorIs(t, err, order.ErrOrderClosed)
	})
}

func TestOrder_ReviseShipDate(t *testing.T) {
	t.Run("updates_current_but_not_original", func(t *testing.T) {
		o := newActiveOrder(t)
		revised := shipDate().AddDate(0, 0, 14)

		require.NoError(t, o.ReviseShipDate(revised))

		assert.Equal(t, revised, o.CurrentShipDate())
		assert.Equal(t, shipDate(), o.OriginalShipDate())
	})

	t.Run("rejects_zero_date", func(t *testing.T) {
		o := newActiveOrder(t)

		require.Error(t, o.ReviseShipDate(time.Time{}))
	})

	t.Run("closed_order_rejects_revision", func(t *testing.T) {
		o := newActiveOrder(t)
		require.NoError(t, o.Cancel())

		require.ErrorIs(t, o.ReviseShipDate(shipDate()), order.ErrOrderClosed)
	})
}

func TestOrder_Complete(t *testing.T) {
	t.Run("requires_terminal_stage", func(t *testing.T) {
		o := newActiveOrder(t)

		require.Error(t, o.Complete())

		require.NoError(t, o.TransitionTo(stage.Delivered, false, false))
		require.NoError(t, o.Complete())
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("cancelled_order_cannot_complete", func(t *testing.T) {
		o := newActiveOrder(t)
		require.NoError(t, o.TransitionTo(stage.Delivered, false, false))
		require.NoError(t, o.Cancel())

		require.Error(t, o.Complete())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("active_order_can_cancel_from_any_stage", func(t *testing.T) {
		o := newActiveOrder(t)
		require.NoError(t, o.TransitionTo(stage.Finishing, false, false))

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("cancel_is_not_repeatable", func(t *testing.T) {
		o := newActiveOrder(t)
		require.NoError(t, o.Cancel())

		require.Error(t, o.Cancel())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_order_is_invalid", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil_order_is_invalid", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
