package location

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
)

// ErrReportIsNotConstructed is returned when a Report instance was not created
// through the NewReport or RestoreReport factory methods.
var ErrReportIsNotConstructed = errors.New("Report must be created via NewReport or RestoreReport constructor")

// Report is an immutable location fix reported by a delivery partner for a
// specific order. Reports are append-only: once accepted they are never
// updated or deleted by the write path.
type Report struct {
	id          kernel.UUID
	orderID     kernel.UUID
	userID      kernel.UUID
	coordinates kernel.Coordinates
	timestamp   time.Time

	isConstructed bool
}

// NewReport creates a location report for an order. The userID identifies the
// reporting delivery partner and the timestamp is assigned by the server, not
// taken from the client.
func NewReport(
	id kernel.UUID,
	orderID kernel.UUID,
	userID kernel.UUID,
	coordinates kernel.Coordinates,
	timestamp time.Time,
) (*Report, error) {
	r := &Report{
		timestamp:     timestamp,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setUserID(userID),
		r.setCoordinates(coordinates),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReport reconstructs a report from persistence, revalidating every field.
func RestoreReport(
	id kernel.UUID,
	orderID kernel.UUID,
	userID kernel.UUID,
	coordinates kernel.Coordinates,
	timestamp time.Time,
) (*Report, error) {
	return NewReport(id, orderID, userID, coordinates, timestamp)
}

// Validate ensures the Report instance was properly constructed through a factory.
func (r *Report) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReportIsNotConstructed
	}

	return nil
}

// IsEqual compares two reports by their unique identifiers.
func (r *Report) IsEqual(other *Report) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the report's unique identifier.
func (r *Report) ID() kernel.UUID {
	return r.id
}

// OrderID returns the order this report belongs to.
func (r *Report) OrderID() kernel.UUID {
	return r.orderID
}

// UserID returns the reporting delivery partner's user ID.
func (r *Report) UserID() kernel.UUID {
	return r.userID
}

// Coordinates returns the reported position.
func (r *Report) Coordinates() kernel.Coordinates {
	return r.coordinates
}

// Timestamp returns the server-assigned time of the report.
func (r *Report) Timestamp() time.Time {
	return r.timestamp
}

func (r *Report) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Report) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *Report) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	r.userID = userID
	return nil
}

func (r *Report) setCoordinates(coordinates kernel.Coordinates) error {
	if err := coordinates.Validate(); err != nil {
		return err
	}
	r.coordinates = coordinates
	return nil
}
