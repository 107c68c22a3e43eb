package order_test

import (
	"testing"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	t.Run("should round-trip all five statuses", func(t *testing.T) {
		for _, name := range []string{"pending", "assigned", "in-progress", "delivered", "cancelled"} {
			status, err := order.StatusFromString(name)

			require.NoError(t, err)
			require.NoError(t, status.Validate())
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("should reject unknown status string", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty string", func(t *testing.T) {
		_, err := order.StatusFromString("")

		require.Error(t, err)
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var status order.Status

		require.Error(t, status.Validate())
		assert.Equal(t, "unknown", status.String())
	})

	t.Run("should fail for out-of-range value", func(t *testing.T) {
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.StatusPending.IsTerminal())
	assert.False(t, order.StatusAssigned.IsTerminal())
	assert.False(t, order.StatusInProgress.IsTerminal())
	assert.True(t, order.StatusDelivered.IsTerminal())
	assert.True(t, order.StatusCancelled.IsTerminal())
}

func TestStatus_RequiresDeliveryPartner(t *testing.T) {
	assert.False(t, order.StatusPending.RequiresDeliveryPartner())
	assert.True(t, order.StatusAssigned.RequiresDeliveryPartner())
	assert.True(t, order.StatusInProgress.RequiresDeliveryPartner())
	assert.True(t, order.StatusDelivered.RequiresDeliveryPartner())
	assert.False(t, order.StatusCancelled.RequiresDeliveryPartner())
}

func TestStatus_ValidateDeliveryPartner(t *testing.T) {
	t.Run("pending order must not have a partner", func(t *testing.T) {
		require.NoError(t, order.StatusPending.ValidateDeliveryPartner(false))
		require.Error(t, order.StatusPending.ValidateDeliveryPartner(true))
	})

	t.Run("assigned order must have a partner", func(t *testing.T) {
		require.NoError(t, order.StatusAssigned.ValidateDeliveryPartner(true))
		require.Error(t, order.StatusAssigned.ValidateDeliveryPartner(false))
	})

	t.Run("delivered order keeps its partner", func(t *testing.T) {
		require.NoError(t, order.StatusDelivered.ValidateDeliveryPartner(true))
		require.Error(t, order.StatusDelivered.ValidateDeliveryPartner(false))
	})

	t.Run("cancelled order must not have a partner", func(t *testing.T) {
		require.NoError(t, order.StatusCancelled.ValidateDeliveryPartner(false))
		require.Error(t, order.StatusCancelled.ValidateDeliveryPartner(true))
	})
}
