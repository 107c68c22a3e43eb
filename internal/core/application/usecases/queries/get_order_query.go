package queries

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by ID on behalf of an actor.
// The actor must be the vendor, the customer or the assigned delivery partner.
type GetOrderQuery struct {
	orderID kernel.UUID
	actor   kernel.Principal

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a gated single-order query.
func NewGetOrderQuery(orderID kernel.UUID, actor kernel.Principal) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{orderID: orderID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's unique identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Actor returns the authenticated principal requesting the order.
func (q GetOrderQuery) Actor() kernel.Principal {
	return q.actor
}
