package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewReassignCarrierCommand_RejectsNonAdmin(t *testing.T) {
	_, err := commands.NewReassignCarrierCommand(
		kernel.NewUUID(), kernel.NewUUID(), tracking.RoleCarrier, nil, nil)
	require.ErrorIs(t, err, commands.ErrActorIsNotAdmin)
}

func TestReassignCarrierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ord := testOrder(t, order.Assigned)
	newCarrier, _ := carrier.RestoreCarrier(kernel.NewUUID(), "replacement", testZone(t, "NORTH"), true, true)
	carrierID := newCarrier.ID()

	cmd, err := commands.NewReassignCarrierCommand(
		ord.ID(), kernel.NewUUID(), tracking.RoleAdmin, &carrierID, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	carrierRepo := new(MockCarrierRepository)
	trackingRepo := new(MockTrackingRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil)
	uow.On("CarrierRepository").Return(carrierRepo)
	carrierRepo.On("Get", mock.Anything, carrierID).Return(newCarrier, nil)
	orderRepo.On("Update", mock.Anything, ord).Return(nil)
	uow.On("TrackingRepository").Return(trackingRepo)
	trackingRepo.On("Add", mock.Anything, mock.Anything).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockReassignUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewReassignCarrierCommandHandler(factory, testLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, ord.SourceCarrier())
	require.True(t, ord.SourceCarrier().IsEqual(carrierID))
	require.Nil(t, ord.DestinationCarrier())
}

func TestReassignCarrierCommandHandler_Handle_IneligibleCarrier(t *testing.T) {
	ctx := t.Context()
	ord := testOrder(t, order.Placed)
	unverified, _ := carrier.RestoreCarrier(kernel.NewUUID(), "unvetted", testZone(t, "NORTH"), false, true)
	carrierID := unverified.ID()

	cmd, err := commands.NewReassignCarrierCommand(
		ord.ID(), kernel.NewUUID(), tracking.RoleAdmin, &carrierID, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	carrierRepo := new(MockCarrierRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil)
	uow.On("CarrierRepository").Return(carrierRepo)
	carrierRepo.On("Get", mock.Anything, carrierID).Return(unverified, nil)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockReassignUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewReassignCarrierCommandHandler(factory, testLogger())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCarrierNotEligible)
}

func TestReassignCarrierCommandHandler_Handle_AfterShipment(t *testing.T) {
	ctx := t.Context()
	ord := testOrder(t, order.Shipped)

	cmd, err := commands.NewReassignCarrierCommand(
		ord.ID(), kernel.NewUUID(), tracking.RoleAdmin, nil, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockReassignUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewReassignCarrierCommandHandler(factory, testLogger())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrCarrierChangeAfterShipment)
}
