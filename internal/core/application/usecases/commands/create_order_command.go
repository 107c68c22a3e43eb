package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one item is required")
)

// CreateOrderCommand represents a request to create a new order. The creator
// is either the vendor or the customer and supplies the counterpart's user ID;
// the handler derives both parties from the actor's role.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	actor           kernel.Principal
	counterpartID   kernel.UUID
	items           []order.Item
	totalAmount     float64
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates the actor, the counterpart reference, the items and the address.
// The total amount is checked against the item sum later, by the aggregate.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	actor kernel.Principal,
	counterpartID kernel.UUID,
	items []order.Item,
	totalAmount float64,
	deliveryAddress string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		totalAmount: totalAmount,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setActor(actor),
		orderCommand.setCounterpartID(counterpartID),
		orderCommand.setItems(items),
		orderCommand.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated principal creating the order.
func (c CreateOrderCommand) Actor() kernel.Principal {
	return c.actor
}

// CounterpartID returns the other party's user ID: the customer when a vendor
// creates the order, the vendor when a customer does.
func (c CreateOrderCommand) CounterpartID() kernel.UUID {
	return c.counterpartID
}

// Items returns the order line items.
func (c CreateOrderCommand) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

// TotalAmount returns the client-declared order total.
func (c CreateOrderCommand) TotalAmount() float64 {
	return c.totalAmount
}

// DeliveryAddress returns the delivery destination address.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setActor(actor kernel.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setCounterpartID(counterpartID kernel.UUID) error {
	if err := counterpartID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("counterpartId", err)
	}

	c.counterpartID = counterpartID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = make([]order.Item, len(items))
	copy(c.items, items)
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}

	c.deliveryAddress = address
	return nil
}
