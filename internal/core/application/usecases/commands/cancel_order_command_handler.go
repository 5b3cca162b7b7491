package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/tracking"
	"fulfillment/internal/core/ports"
)

// CancelOrderCommandHandler cancels non-terminal orders.
//
// The cancellation and its tracking event commit atomically. Reserved stock
// returns to the catalog, and when the order was already settled a single
// compensating Refund entry for the full goods price is appended in the same
// transaction. Refund of the transport charge is a carrier-side concern and
// stays off this ledger.
type CancelOrderCommandHandler struct {
	uowFactory CancelOrderUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory CancelOrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "cancel_order"),
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = ord.Cancel(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	actor, err := tracking.NewActor(cmd.ActorID(), cmd.ActorRole())
	if err != nil {
		return err
	}
	event, err := tracking.NewEvent(kernel.NewUUID(), ord.ID(), ord.Status(), actor, nil, cmd.Reason())
	if err != nil {
		return err
	}
	if err = uow.TrackingRepository().Add(ctx, event); err != nil {
		return err
	}

	if err = uow.ProductRepository().ReleaseStock(ctx, ord.ProductID(), ord.Quantity()); err != nil {
		return err
	}

	if err = h.refundIfSettled(ctx, uow, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notify(ctx, ord)
	return nil
}

// refundIfSettled appends exactly one Refund entry for the goods total when
// settlement entries already exist for the order.
func (h *CancelOrderCommandHandler) refundIfSettled(
	ctx context.Context, uow CancelOrderUoW, ord *order.Order,
) error {
	settled, err := uow.LedgerRepository().HasSettlement(ctx, ord.ID())
	if err != nil {
		return err
	}
	if !settled {
		return nil
	}

	refund, err := ledger.NewEntry(
		kernel.NewUUID(), ord.ID(), ord.BuyerID(),
		ledger.PayeeBuyer, ledger.Refund, ord.TotalPrice())
	if err != nil {
		return err
	}

	return uow.LedgerRepository().Add(ctx, refund)
}

func (h *CancelOrderCommandHandler) notify(ctx context.Context, ord *order.Order) {
	if h.publisher == nil {
		return
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()

	if err := h.publisher.PublishOrderChanged(publishCtx, ord); err != nil {
		h.logger.Warn("order event publish failed",
			"order_id", ord.ID().String(), "error", err)
	}
}
