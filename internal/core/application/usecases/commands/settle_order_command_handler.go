package commands

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/metrics"
)

// ErrOrderNotSettleable is returned when settling a cancelled order.
var ErrOrderNotSettleable = errors.New("order is not in a settleable status")

// SettleOrderCommandHandler credits the seller and the platform for an
// order. The integration point decides when it runs, at completion or on a
// payment confirmation callback; the only order state it rejects is
// Cancelled, where a credit would contradict the refund path.
//
// Both credits commit in one transaction. A unique constraint on the ledger
// makes the operation idempotent: when a concurrent or repeated settlement
// already wrote the entries, the insert fails with
// ledger.ErrDuplicateSettlement and the handler reports success after
// confirming the entries exist.
type SettleOrderCommandHandler struct {
	uowFactory        SettlementUoWFactory
	platformAccountID kernel.UUID
	logger            *slog.Logger
}

// NewSettleOrderCommandHandler creates a handler for order settlement.
// platformAccountID is the ledger account receiving commission credits.
func NewSettleOrderCommandHandler(
	uowFactory SettlementUoWFactory,
	platformAccountID kernel.UUID,
	logger *slog.Logger,
) SettleOrderCommandHandler {
	return SettleOrderCommandHandler{
		uowFactory:        uowFactory,
		platformAccountID: platformAccountID,
		logger:            logger.With("component", "settle_order"),
	}
}

// Handle processes the settlement command.
func (h *SettleOrderCommandHandler) Handle(ctx context.Context, cmd SettleOrderCommand) error {
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

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if ord.Status() == order.Cancelled {
		return ErrOrderNotSettleable
	}

	if err = h.credit(ctx, uow, ord); err != nil {
		if errors.Is(err, ledger.ErrDuplicateSettlement) {
			metrics.SettlementRaces.Inc()
			return h.confirmSettled(ctx, ord.ID())
		}
		return err
	}

	return uow.Commit(ctx)
}

func (h *SettleOrderCommandHandler) credit(ctx context.Context, uow SettlementUoW, ord *order.Order) error {
	sale, err := ledger.NewEntry(
		kernel.NewUUID(), ord.ID(), ord.SellerID(),
		ledger.PayeeSeller, ledger.SaleCredit, ord.SellerAmount())
	if err != nil {
		return err
	}
	if err = uow.LedgerRepository().Add(ctx, sale); err != nil {
		return err
	}

	// A zero-percent commission produces no platform movement.
	if ord.CommissionAmount().IsZero() {
		return nil
	}

	commission, err := ledger.NewEntry(
		kernel.NewUUID(), ord.ID(), h.platformAccountID,
		ledger.PayeePlatform, ledger.CommissionCredit, ord.CommissionAmount())
	if err != nil {
		return err
	}
	return uow.LedgerRepository().Add(ctx, commission)
}

// confirmSettled verifies in a fresh transaction that the race winner's
// entries are in place before absorbing the duplicate as success.
func (h *SettleOrderCommandHandler) confirmSettled(ctx context.Context, orderID kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	settled, err := uow.LedgerRepository().HasSettlement(ctx, orderID)
	if err != nil {
		return err
	}
	if !settled {
		return ledger.ErrDuplicateSettlement
	}

	h.logger.Info("settlement already recorded", "order_id", orderID.String())
	return nil
}
