package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to move an order through its
// lifecycle: assign a delivery partner, change the status, or both atomically.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Principal
	patch   order.Patch

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to apply a patch to an order on
// behalf of the actor. The patch must request at least one change.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	actor kernel.Principal,
	patch order.Patch,
) (UpdateOrderCommand, error) {
	updateCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setOrderID(orderID),
		updateCommand.setActor(actor),
		updateCommand.setPatch(patch),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the target order's unique identifier.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated principal requesting the change.
func (c UpdateOrderCommand) Actor() kernel.Principal {
	return c.actor
}

// Patch returns the requested mutation.
func (c UpdateOrderCommand) Patch() order.Patch {
	return c.patch
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setActor(actor kernel.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateOrderCommand) setPatch(patch order.Patch) error {
	if err := patch.Validate(); err != nil {
		return err
	}

	c.patch = patch
	return nil
}
