package commands_test

import (
	"testing"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	actor := testPrincipal(t, kernel.NewUUID(), kernel.RoleCustomer)

	t.Run("should create valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()
		counterpartID := kernel.NewUUID()

		cmd, err := commands.NewCreateOrderCommand(orderID, actor, counterpartID,
			testItems(t), 19.00, "1 Main Street")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.True(t, cmd.CounterpartID().IsEqual(counterpartID))
		assert.Len(t, cmd.Items(), 1)
		assert.InDelta(t, 19.00, cmd.TotalAmount(), 0)
		assert.Equal(t, "1 Main Street", cmd.DeliveryAddress())
	})

	t.Run("should fail with zero order ID", func(t *testing.T) {
		var orderID kernel.UUID

		_, err := commands.NewCreateOrderCommand(orderID, actor, kernel.NewUUID(),
			testItems(t), 19.00, "1 Main Street")

		require.Error(t, err)
	})

	t.Run("should fail with unconstructed actor", func(t *testing.T) {
		var badActor kernel.Principal

		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), badActor, kernel.NewUUID(),
			testItems(t), 19.00, "1 Main Street")

		require.Error(t, err)
	})

	t.Run("should fail without items", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), actor, kernel.NewUUID(),
			nil, 0, "1 Main Street")

		require.ErrorIs(t, err, commands.ErrItemsAreRequired)
	})

	t.Run("should fail with invalid item", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), actor, kernel.NewUUID(),
			[]order.Item{{}}, 19.00, "1 Main Street")

		require.Error(t, err)
	})

	t.Run("should fail with empty address", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), actor, kernel.NewUUID(),
			testItems(t), 19.00, "")

		require.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		cmd := commands.CreateOrderCommand{}

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
