package order_test

import (
	"testing"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItems(t *testing.T) []order.Item {
	t.Helper()
	burger, err := order.NewItem("burger", 2, 9.50)
	require.NoError(t, err)
	fries, err := order.NewItem("fries", 1, 4.00)
	require.NoError(t, err)
	return []order.Item{burger, fries}
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		validItems(t), 23.00, "1 Main Street", time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewItem(t *testing.T) {
	t.Run("should create valid item", func(t *testing.T) {
		item, err := order.NewItem("burger", 2, 9.50)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "burger", item.Name())
		assert.Equal(t, 2, item.Quantity())
		assert.InDelta(t, 9.50, item.Price(), 0)
		assert.InDelta(t, 19.00, item.Subtotal(), 1e-9)
	})

	t.Run("should accept zero price", func(t *testing.T) {
		item, err := order.NewItem("freebie", 1, 0)

		require.NoError(t, err)
		assert.InDelta(t, 0.0, item.Subtotal(), 0)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := order.NewItem("", 1, 1)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewItem("burger", 0, 1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with negative price", func(t *testing.T) {
		_, err := order.NewItem("burger", 1, -0.01)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value item fails validation", func(t *testing.T) {
		var item order.Item

		require.Error(t, item.Validate())
	})
}

func TestNewOrder(t *testing.T) {
	now := time.Now()

	t.Run("should create pending order with all valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		vendorID := kernel.NewUUID()
		customerID := kernel.NewUUID()

		o, err := order.NewOrder(id, vendorID, customerID, validItems(t), 23.00, "1 Main Street", now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.VendorID().IsEqual(vendorID))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.Nil(t, o.DeliveryPartnerID())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.InDelta(t, 23.00, o.TotalAmount(), 0)
		assert.Equal(t, "1 Main Street", o.DeliveryAddress())
		assert.Equal(t, now, o.CreatedAt())
		assert.Equal(t, now, o.UpdatedAt())
	})

	t.Run("should fail with zero vendor ID", func(t *testing.T) {
		var vendorID kernel.UUID

		_, err := order.NewOrder(kernel.NewUUID(), vendorID, kernel.NewUUID(),
			validItems(t), 23.00, "1 Main Street", now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "vendorId")
	})

	t.Run("should fail with zero customer ID", func(t *testing.T) {
		var customerID kernel.UUID

		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), customerID,
			validItems(t), 23.00, "1 Main Street", now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "customerId")
	})

	t.Run("should fail with no items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, 0, "1 Main Street", now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "items")
	})

	t.Run("should fail when total does not match item sum", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			validItems(t), 24.00, "1 Main Street", now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "totalAmount")
	})

	t.Run("should fail with empty delivery address", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			validItems(t), 23.00, "", now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "deliveryAddress")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var id kernel.UUID

		_, err := order.NewOrder(id, kernel.NewUUID(), kernel.NewUUID(), nil, 0, "", now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "items")
		assert.Contains(t, err.Error(), "deliveryAddress")
	})

	t.Run("Items returns a defensive copy", func(t *testing.T) {
		o := newTestOrder(t)

		items := o.Items()
		items[0] = order.Item{}

		require.NoError(t, o.Items()[0].Validate())
	})
}

func TestRestoreOrder(t *testing.T) {
	now := time.Now()

	t.Run("should restore assigned order with partner", func(t *testing.T) {
		partnerID := kernel.NewUUID()

		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			&partnerID, validItems(t), 23.00, "1 Main Street",
			order.StatusAssigned, now, now)

		require.NoError(t, err)
		require.NotNil(t, o.DeliveryPartnerID())
		assert.True(t, o.DeliveryPartnerID().IsEqual(partnerID))
		assert.Equal(t, order.StatusAssigned, o.Status())
	})

	t.Run("should reject assigned order without partner", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, validItems(t), 23.00, "1 Main Street",
			order.StatusAssigned, now, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject pending order with partner", func(t *testing.T) {
		partnerID := kernel.NewUUID()

		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			&partnerID, validItems(t), 23.00, "1 Main Street",
			order.StatusPending, now, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, validItems(t), 23.00, "1 Main Street",
			order.Status(42), now, now)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		o := &order.Order{}

		require.Error(t, o.Validate())
	})
}

func TestPatch_Validate(t *testing.T) {
	t.Run("empty patch is rejected", func(t *testing.T) {
		err := order.Patch{}.Validate()

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("patch with zero partner ID is rejected", func(t *testing.T) {
		var partnerID kernel.UUID

		err := order.Patch{DeliveryPartnerID: &partnerID}.Validate()

		require.Error(t, err)
	})

	t.Run("patch with invalid status is rejected", func(t *testing.T) {
		bad := order.Status(42)

		err := order.Patch{Status: &bad}.Validate()

		require.Error(t, err)
	})
}
