package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSettleOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ord := testOrder(t, order.Completed)
	platformID := kernel.NewUUID()
	cmd, err := commands.NewSettleOrderCommand(ord.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockUoW)

	var entries []*ledger.Entry
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Twice(),
		ledgerRepo.On("Add", mock.Anything, mock.AnythingOfType("*ledger.Entry")).
			Run(func(args mock.Arguments) { entries = append(entries, args.Get(1).(*ledger.Entry)) }).
			Return(nil).Twice(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSettleOrderCommandHandler(factory, platformID, testLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	require.Len(t, entries, 2)

	sale := entries[0]
	require.Equal(t, ledger.SaleCredit, sale.MovementType())
	require.Equal(t, ledger.PayeeSeller, sale.PayeeRole())
	require.True(t, sale.PayeeID().IsEqual(ord.SellerID()))
	require.True(t, sale.Amount().IsEqual(ord.SellerAmount()))

	commission := entries[1]
	require.Equal(t, ledger.CommissionCredit, commission.MovementType())
	require.Equal(t, ledger.PayeePlatform, commission.PayeeRole())
	require.True(t, commission.PayeeID().IsEqual(platformID))
	require.True(t, commission.Amount().IsEqual(ord.CommissionAmount()))

	// The shares sum back to the goods total.
	require.True(t, sale.Amount().Add(commission.Amount()).IsEqual(ord.TotalPrice()))
	uow.AssertExpectations(t)
}

func TestSettleOrderCommandHandler_Handle_Cancelled(t *testing.T) {
	ctx := t.Context()
	ord := testOrder(t, order.Cancelled)
	cmd, err := commands.NewSettleOrderCommand(ord.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSettleOrderCommandHandler(factory, kernel.NewUUID(), testLogger())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrOrderNotSettleable)
	uow.AssertExpectations(t)
}

// A payment confirmation can arrive before the delivery finishes. The handler
// settles any non-cancelled order.
func TestSettleOrderCommandHandler_Handle_BeforeCompletion(t *testing.T) {
	ctx := t.Context()
	ord := testOrder(t, order.InTransit)
	cmd, err := commands.NewSettleOrderCommand(ord.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Twice(),
		ledgerRepo.On("Add", mock.Anything, mock.AnythingOfType("*ledger.Entry")).
			Return(nil).Twice(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSettleOrderCommandHandler(factory, kernel.NewUUID(), testLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}

func TestSettleOrderCommandHandler_Handle_DuplicateAbsorbed(t *testing.T) {
	ctx := t.Context()
	ord := testOrder(t, order.Completed)
	cmd, err := commands.NewSettleOrderCommand(ord.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	ledgerRepo := new(MockLedgerRepository)
	firstUoW := new(MockUoW)
	firstUoW.On("Begin", ctx).Return(nil)
	firstUoW.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil)
	firstUoW.On("LedgerRepository").Return(ledgerRepo)
	ledgerRepo.On("Add", mock.Anything, mock.Anything).
		Return(ledger.ErrDuplicateSettlement).Once()
	firstUoW.On("Rollback", ctx).Return(nil)

	confirmLedger := new(MockLedgerRepository)
	confirmUoW := new(MockUoW)
	confirmUoW.On("Begin", ctx).Return(nil)
	confirmUoW.On("LedgerRepository").Return(confirmLedger)
	confirmLedger.On("HasSettlement", mock.Anything, ord.ID()).Return(true, nil)
	confirmUoW.On("Rollback", ctx).Return(nil)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(firstUoW).Once()
	factory.On("Create").Return(confirmUoW).Once()

	races := testutil.ToFloat64(metrics.SettlementRaces)

	h := commands.NewSettleOrderCommandHandler(factory, kernel.NewUUID(), testLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, races+1, testutil.ToFloat64(metrics.SettlementRaces))
	firstUoW.AssertNotCalled(t, "Commit", mock.Anything)
	confirmLedger.AssertExpectations(t)
}
