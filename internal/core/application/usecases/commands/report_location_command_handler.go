package commands

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/location"
	"tracking/internal/core/domain/services"
	"tracking/internal/pkg/errs"
	"tracking/internal/realtime"
)

// ReportLocationCommandHandler coordinates location ingest: it gates the
// reporter, appends the report to the persistent trail and fans the update out
// to live subscribers.
//
// Live delivery is deliberately decoupled from persistence: the event is
// published even when the append fails, so watchers keep seeing the courier
// move during a storage outage. The caller still gets ErrPersistenceFailed
// and the trail has a gap for that report.
type ReportLocationCommandHandler struct {
	uowFactory UoWFactory
	accessGate services.AccessGate
	publisher  EventPublisher
}

// NewReportLocationCommandHandler creates a handler for location ingest.
func NewReportLocationCommandHandler(
	uowFactory UoWFactory,
	accessGate services.AccessGate,
	publisher EventPublisher,
) ReportLocationCommandHandler {
	return ReportLocationCommandHandler{
		uowFactory: uowFactory,
		accessGate: accessGate,
		publisher:  publisher,
	}
}

// Handle processes the location report.
//
// Failure order: unknown order (not found), then reporter without write access
// (forbidden). Both reject before anything is stored or published. After the
// gate passes, the server assigns the timestamp, the report is appended and
// the update is published regardless of the append outcome.
func (h *ReportLocationCommandHandler) Handle(ctx context.Context, cmd ReportLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	allowed, err := h.accessGate.CanReportLocation(cmd.Actor(), aggregate)
	if err != nil {
		return err
	}
	if !allowed {
		return errs.NewAccessForbiddenError(cmd.Actor().UserID().String(),
			"location reporting for order "+cmd.OrderID().String())
	}

	now := time.Now().UTC()
	report, err := location.NewReport(
		kernel.NewUUID(), cmd.OrderID(), cmd.Actor().UserID(), cmd.Coordinates(), now,
	)
	if err != nil {
		return err
	}

	var persistErr error
	if persistErr = uow.LocationRepository().Add(ctx, report); persistErr == nil {
		persistErr = uow.Commit(ctx)
	}

	if h.publisher != nil {
		h.publisher.Publish(realtime.NewLocationUpdate(
			report.OrderID(), report.UserID(), report.Coordinates(), report.Timestamp(),
		))
	}

	if persistErr != nil {
		return errs.NewPersistenceFailedError("append location report", persistErr)
	}

	return nil
}
