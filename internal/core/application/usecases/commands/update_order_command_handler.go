package commands

import (
	"context"
	"time"

	"tracking/internal/core/domain/services"
	"tracking/internal/pkg/errs"
	"tracking/internal/realtime"
)

// UpdateOrderCommandHandler handles the business logic for order lifecycle
// transitions. It loads the order, gates the actor through the access rules,
// delegates the transition to the aggregate, persists atomically and finally
// publishes a StatusChanged event to live subscribers.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	accessGate services.AccessGate
	publisher  EventPublisher
}

// NewUpdateOrderCommandHandler creates a handler for order transition operations.
func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	accessGate services.AccessGate,
	publisher EventPublisher,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		accessGate: accessGate,
		publisher:  publisher,
	}
}

// Handle processes the order transition command.
//
// Failure order: unknown order (not found), then actor without any relation
// to the order (forbidden), then the transition rules themselves. The event
// is published only after a successful commit; publish failures never fail
// the command.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	relation, err := h.accessGate.RelationOf(cmd.Actor(), aggregate)
	if err != nil {
		return err
	}
	if relation == services.RelationNone {
		// A principal with no stake learns nothing beyond "forbidden",
		// not even whether the transition would have been legal.
		return errs.NewAccessForbiddenError(cmd.Actor().UserID().String(), "order "+cmd.OrderID().String())
	}

	if err = aggregate.Transition(cmd.Actor(), cmd.Patch(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.publisher != nil {
		h.publisher.Publish(realtime.NewStatusChanged(
			aggregate.ID(), aggregate.Status(), aggregate.DeliveryPartnerID(), aggregate.UpdatedAt(),
		))
	}

	return nil
}
