package queries

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves every order visible to the actor: a vendor sees
// the orders it sells, a customer the orders it bought, a delivery partner the
// orders currently assigned to it. There is no cross-role visibility.
type ListOrdersQuery struct {
	actor kernel.Principal

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query scoped to the actor's role.
func NewListOrdersQuery(actor kernel.Principal) (ListOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Actor returns the authenticated principal listing its orders.
func (q ListOrdersQuery) Actor() kernel.Principal {
	return q.actor
}
