package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrReportLocationCommandIsNotConstructed = errors.New(
	"ReportLocationCommand must be created via NewReportLocationCommand constructor",
)

// ReportLocationCommand represents a delivery partner's location fix for an
// order it is actively delivering.
type ReportLocationCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	actor       kernel.Principal
	coordinates kernel.Coordinates

	guard guard.ConstructorGuard
}

// NewReportLocationCommand creates a command to append a location report.
// The timestamp is assigned by the handler, not supplied by the client.
func NewReportLocationCommand(
	orderID kernel.UUID,
	actor kernel.Principal,
	coordinates kernel.Coordinates,
) (ReportLocationCommand, error) {
	reportCommand := ReportLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reportCommand.setOrderID(orderID),
		reportCommand.setActor(actor),
		reportCommand.setCoordinates(coordinates),
	); err != nil {
		return ReportLocationCommand{}, err
	}

	return reportCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReportLocationCommandIsNotConstructed if validation fails.
func (c ReportLocationCommand) Validate() error {
	return c.guard.Validate(ErrReportLocationCommandIsNotConstructed)
}

// OrderID returns the order the location belongs to.
func (c ReportLocationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the reporting principal.
func (c ReportLocationCommand) Actor() kernel.Principal {
	return c.actor
}

// Coordinates returns the reported position.
func (c ReportLocationCommand) Coordinates() kernel.Coordinates {
	return c.coordinates
}

func (c *ReportLocationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReportLocationCommand) setActor(actor kernel.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ReportLocationCommand) setCoordinates(coordinates kernel.Coordinates) error {
	if err := coordinates.Validate(); err != nil {
		return err
	}

	c.coordinates = coordinates
	return nil
}
