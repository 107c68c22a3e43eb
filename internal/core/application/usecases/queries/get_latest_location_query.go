package queries

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrGetLatestLocationQueryIsNotConstructed = errors.New(
	"GetLatestLocationQuery must be created via NewGetLatestLocationQuery constructor",
)

// GetLatestLocationQuery retrieves the most recent location report for an
// order. Access follows the same read gate as the order itself: this is the
// catch-up path for subscribers joining mid-delivery.
type GetLatestLocationQuery struct {
	orderID kernel.UUID
	actor   kernel.Principal

	guard guard.ConstructorGuard
}

// NewGetLatestLocationQuery creates a gated latest-location query.
func NewGetLatestLocationQuery(orderID kernel.UUID, actor kernel.Principal) (GetLatestLocationQuery, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return GetLatestLocationQuery{}, err
	}

	return GetLatestLocationQuery{orderID: orderID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLatestLocationQueryIsNotConstructed if validation fails.
func (q GetLatestLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetLatestLocationQueryIsNotConstructed)
}

// OrderID returns the order whose latest location is requested.
func (q GetLatestLocationQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Actor returns the authenticated principal requesting the location.
func (q GetLatestLocationQuery) Actor() kernel.Principal {
	return q.actor
}
