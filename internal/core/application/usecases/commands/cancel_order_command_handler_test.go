package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func cancelCmd(t *testing.T, orderID kernel.UUID, reason string) commands.CancelOrderCommand {
	t.Helper()
	cmd, err := commands.NewCancelOrderCommand(orderID, kernel.NewUUID(), tracking.RoleBuyer, reason)
	require.NoError(t, err)
	return cmd
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ord := testOrder(t, order.Placed)

	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)
	ledgerRepo := new(MockLedgerRepository)
	prodRepo := new(MockProductRepository)
	uow := new(MockUoW)

	var event *tracking.Event
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil)
	orderRepo.On("Update", mock.Anything, ord).Return(nil)
	uow.On("TrackingRepository").Return(trackingRepo)
	trackingRepo.On("Add", mock.Anything, mock.AnythingOfType("*tracking.Event")).
		Run(func(args mock.Arguments) { event = args.Get(1).(*tracking.Event) }).
		Return(nil)
	uow.On("ProductRepository").Return(prodRepo)
	prodRepo.On("ReleaseStock", mock.Anything, ord.ProductID(), ord.Quantity()).Return(nil)
	uow.On("LedgerRepository").Return(ledgerRepo)
	ledgerRepo.On("HasSettlement", mock.Anything, ord.ID()).Return(false, nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockCancelOrderUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewCancelOrderCommandHandler(factory, nil, testLogger())
	require.NoError(t, h.Handle(ctx, cancelCmd(t, ord.ID(), "changed my mind")))

	require.Equal(t, order.Cancelled, ord.Status())
	require.NotNil(t, event)
	require.Equal(t, order.Cancelled, event.Status())
	require.Equal(t, "changed my mind", event.Note())
	ledgerRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_RefundsWhenSettled(t *testing.T) {
	ctx := t.Context()
	ord := testOrder(t, order.InTransit)

	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)
	ledgerRepo := new(MockLedgerRepository)
	prodRepo := new(MockProductRepository)
	uow := new(MockUoW)

	var refund *ledger.Entry
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil)
	orderRepo.On("Update", mock.Anything, ord).Return(nil)
	uow.On("TrackingRepository").Return(trackingRepo)
	trackingRepo.On("Add", mock.Anything, mock.Anything).Return(nil)
	uow.On("ProductRepository").Return(prodRepo)
	prodRepo.On("ReleaseStock", mock.Anything, ord.ProductID(), ord.Quantity()).Return(nil)
	uow.On("LedgerRepository").Return(ledgerRepo)
	ledgerRepo.On("HasSettlement", mock.Anything, ord.ID()).Return(true, nil)
	ledgerRepo.On("Add", mock.Anything, mock.AnythingOfType("*ledger.Entry")).
		Run(func(args mock.Arguments) { refund = args.Get(1).(*ledger.Entry) }).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockCancelOrderUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewCancelOrderCommandHandler(factory, nil, testLogger())
	require.NoError(t, h.Handle(ctx, cancelCmd(t, ord.ID(), "damaged in transit")))

	require.NotNil(t, refund)
	require.Equal(t, ledger.Refund, refund.MovementType())
	require.Equal(t, ledger.PayeeBuyer, refund.PayeeRole())
	require.True(t, refund.PayeeID().IsEqual(ord.BuyerID()))
	require.True(t, refund.Amount().IsEqual(ord.TotalPrice()))
	ledgerRepo.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_TerminalOrder(t *testing.T) {
	ctx := t.Context()
	ord := testOrder(t, order.Cancelled)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancelOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, nil, testLogger())
	err := h.Handle(ctx, cancelCmd(t, ord.ID(), "again"))
	require.ErrorIs(t, err, order.ErrAlreadyTerminal)
	uow.AssertExpectations(t)
}
