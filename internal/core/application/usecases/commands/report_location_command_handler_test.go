package commands_test

import (
	"errors"
	"testing"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/location"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/services"
	"tracking/internal/pkg/errs"
	"tracking/internal/realtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportLocationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	partnerID := kernel.NewUUID()
	aggregate := restoredOrder(t, kernel.NewUUID(), kernel.NewUUID(), &partnerID, order.StatusInProgress)
	actor := testPrincipal(t, partnerID, kernel.RoleDelivery)
	coords := testCoordinates(t)
	cmd, err := commands.NewReportLocationCommand(aggregate.ID(), actor, coords)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	locationRepo := new(MockLocationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("LocationRepository").Return(locationRepo).Once(),
		locationRepo.On("Add", mock.Anything, mock.MatchedBy(func(r *location.Report) bool {
			coordsEqual, coordsErr := r.Coordinates().IsEqual(coords)
			return r.OrderID().IsEqual(aggregate.ID()) &&
				r.UserID().IsEqual(partnerID) &&
				coordsErr == nil && coordsEqual
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(recordingPublisher)

	h := commands.NewReportLocationCommandHandler(factory, services.NewAccessGate(), publisher)
	require.NoError(t, h.Handle(ctx, cmd))

	events := publisher.Events()
	require.Len(t, events, 1)
	update, ok := events[0].(realtime.LocationUpdate)
	require.True(t, ok)
	assert.True(t, update.OrderID().IsEqual(aggregate.ID()))
	assert.True(t, update.UserID().IsEqual(partnerID))
	coordsEqual, err := update.Coordinates().IsEqual(coords)
	require.NoError(t, err)
	assert.True(t, coordsEqual)
	orderRepo.AssertExpectations(t)
	locationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReportLocationCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	actor := testPrincipal(t, kernel.NewUUID(), kernel.RoleDelivery)
	cmd, err := commands.NewReportLocationCommand(orderID, actor, testCoordinates(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderId", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(recordingPublisher)

	h := commands.NewReportLocationCommandHandler(factory, services.NewAccessGate(), publisher)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Empty(t, publisher.Events())
}

func TestReportLocationCommandHandler_Handle_Forbidden(t *testing.T) {
	ctx := t.Context()
	partnerID := kernel.NewUUID()

	cases := []struct {
		name   string
		status order.Status
		actor  func(t *testing.T, aggregate *order.Order) kernel.Principal
	}{
		{
			name:   "vendor cannot report",
			status: order.StatusAssigned,
			actor: func(t *testing.T, aggregate *order.Order) kernel.Principal {
				return testPrincipal(t, aggregate.VendorID(), kernel.RoleVendor)
			},
		},
		{
			name:   "unassigned partner cannot report",
			status: order.StatusAssigned,
			actor: func(t *testing.T, _ *order.Order) kernel.Principal {
				return testPrincipal(t, kernel.NewUUID(), kernel.RoleDelivery)
			},
		},
		{
			name:   "no reports after delivery",
			status: order.StatusDelivered,
			actor: func(t *testing.T, _ *order.Order) kernel.Principal {
				return testPrincipal(t, partnerID, kernel.RoleDelivery)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			aggregate := restoredOrder(t, kernel.NewUUID(), kernel.NewUUID(), &partnerID, tc.status)
			cmd, err := commands.NewReportLocationCommand(aggregate.ID(), tc.actor(t, aggregate), testCoordinates(t))
			require.NoError(t, err)

			orderRepo := new(MockOrderRepository)
			locationRepo := new(MockLocationRepository)
			uow := new(MockUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(orderRepo).Once(),
				orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			factory := new(MockUoWFactory)
			factory.On("Create").Return(uow).Once()
			publisher := new(recordingPublisher)

			h := commands.NewReportLocationCommandHandler(factory, services.NewAccessGate(), publisher)
			err = h.Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrAccessForbidden)
			assert.Empty(t, publisher.Events())
			locationRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		})
	}
}

func TestReportLocationCommandHandler_Handle_AppendFailureStillPublishes(t *testing.T) {
	ctx := t.Context()
	partnerID := kernel.NewUUID()
	aggregate := restoredOrder(t, kernel.NewUUID(), kernel.NewUUID(), &partnerID, order.StatusInProgress)
	actor := testPrincipal(t, partnerID, kernel.RoleDelivery)
	cmd, err := commands.NewReportLocationCommand(aggregate.ID(), actor, testCoordinates(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	locationRepo := new(MockLocationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("LocationRepository").Return(locationRepo).Once(),
		locationRepo.On("Add", mock.Anything, mock.AnythingOfType("*location.Report")).
			Return(errors.New("disk full")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(recordingPublisher)

	h := commands.NewReportLocationCommandHandler(factory, services.NewAccessGate(), publisher)
	err = h.Handle(ctx, cmd)

	// The caller learns about the storage failure, the watchers got the update.
	require.ErrorIs(t, err, errs.ErrPersistenceFailed)
	assert.Len(t, publisher.Events(), 1)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
