package order_test

import (
	"testing"

	"atelier/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Active.Validate())
	require.NoError(t, order.Completed.Validate())
	require.NoError(t, order.Cancelled.Validate())
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Active", order.Active.String())
	assert.Equal(t, "Completed", order.Completed.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_IsClosed(t *testing.T) {
	assert.False(t, order.Active.IsClosed())
	assert.True(t, order.Completed.IsClosed())
	assert.True(t, order.Cancelled.IsClosed())
}

func TestStatus_Complete(t *testing.T) {
	t.Run("active_completes", func(t *testing.T) {
		newStatus, err := order.Active.Complete()

		require.NoError(t, err)
		assert.Equal(t, order.Completed, newStatus)
	})

	t.Run("closed_statuses_cannot_complete", func(t *testing.T) {
		_, err := order.Completed.Complete()
		require.Error(t, err)

		_, err = order.Cancelled.Complete()
		require.Error(t, err)
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("active_cancels", func(t *testing.T) {
		newStatus, err := order.Active.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, newStatus)
	})

	t.Run("closed_statuses_cannot_cancel", func(t *testing.T) {
		_, err := order.Completed.Cancel()
		require.Error(t, err)

		_, err = order.Cancelled.Cancel()
		require.Error(t, err)
	})
}
