package commands

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders always start in the pending status with no delivery partner.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// The actor's role decides which side of the order it occupies: a vendor
// supplies the customer ID and vice versa. Delivery partners cannot create
// orders. Uses a transaction to ensure the order is persisted or rolled back.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var vendorID, customerID kernel.UUID
	switch cmd.Actor().Role() {
	case kernel.RoleVendor:
		vendorID = cmd.Actor().UserID()
		customerID = cmd.CounterpartID()
	case kernel.RoleCustomer:
		vendorID = cmd.CounterpartID()
		customerID = cmd.Actor().UserID()
	default:
		return errs.NewAccessForbiddenError(cmd.Actor().UserID().String(), "order creation")
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), vendorID, customerID,
		cmd.Items(), cmd.TotalAmount(), cmd.DeliveryAddress(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
