package realtime

import (
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
)

// Event is a broadcast message scoped to a single order. The concrete types
// are LocationUpdate and StatusChanged; the interface is sealed so the hub's
// fan-out stays exhaustive.
type Event interface {
	// OrderID returns the order whose subscribers receive this event.
	OrderID() kernel.UUID

	isEvent()
}

// LocationUpdate is published whenever a delivery partner's location report is
// accepted for an order.
type LocationUpdate struct {
	orderID     kernel.UUID
	userID      kernel.UUID
	coordinates kernel.Coordinates
	timestamp   time.Time
}

// NewLocationUpdate creates a location update event.
func NewLocationUpdate(
	orderID kernel.UUID,
	userID kernel.UUID,
	coordinates kernel.Coordinates,
	timestamp time.Time,
) LocationUpdate {
	return LocationUpdate{
		orderID:     orderID,
		userID:      userID,
		coordinates: coordinates,
		timestamp:   timestamp,
	}
}

// OrderID returns the order the location belongs to.
func (e LocationUpdate) OrderID() kernel.UUID {
	return e.orderID
}

// UserID returns the reporting delivery partner's user ID.
func (e LocationUpdate) UserID() kernel.UUID {
	return e.userID
}

// Coordinates returns the reported position.
func (e LocationUpdate) Coordinates() kernel.Coordinates {
	return e.coordinates
}

// Timestamp returns the server-assigned time of the report.
func (e LocationUpdate) Timestamp() time.Time {
	return e.timestamp
}

func (e LocationUpdate) isEvent() {}

// StatusChanged is published whenever an order's lifecycle status moves.
type StatusChanged struct {
	orderID           kernel.UUID
	status            order.Status
	deliveryPartnerID *kernel.UUID
	timestamp         time.Time
}

// NewStatusChanged creates a status change event. deliveryPartnerID is nil
// while the order is unassigned.
func NewStatusChanged(
	orderID kernel.UUID,
	status order.Status,
	deliveryPartnerID *kernel.UUID,
	timestamp time.Time,
) StatusChanged {
	return StatusChanged{
		orderID:           orderID,
		status:            status,
		deliveryPartnerID: deliveryPartnerID,
		timestamp:         timestamp,
	}
}

// OrderID returns the order whose status moved.
func (e StatusChanged) OrderID() kernel.UUID {
	return e.orderID
}

// Status returns the new lifecycle status.
func (e StatusChanged) Status() order.Status {
	return e.status
}

// DeliveryPartnerID returns the assigned delivery partner after the
// transition, or nil when the order is unassigned.
func (e StatusChanged) DeliveryPartnerID() *kernel.UUID {
	if e.deliveryPartnerID == nil {
		return nil
	}
	id := *e.deliveryPartnerID
	return &id
}

// Timestamp returns the time of the transition.
func (e StatusChanged) Timestamp() time.Time {
	return e.timestamp
}

func (e StatusChanged) isEvent() {}
