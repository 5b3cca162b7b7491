package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/tracking"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/metrics"
)

// ErrConfirmationCodeRequired is returned when completing a delivery without
// presenting the live confirmation code.
var ErrConfirmationCodeRequired = errors.New("delivery confirmation code required")

// SettlementTrigger selects when the engine settles a completed order.
type SettlementTrigger string

const (
	// SettleOnCompletion settles immediately after the completing transition commits.
	SettleOnCompletion SettlementTrigger = "on_completion"

	// SettleOnPayment leaves settlement to the payment collaborator's callback.
	SettleOnPayment SettlementTrigger = "on_payment"
)

// ConfirmationCodes issues and checks short-lived delivery confirmation codes.
type ConfirmationCodes interface {
	// Issue creates a fresh code for the order, replacing any previous one.
	Issue(orderID kernel.UUID) (string, error)

	// Verify checks a presented code and consumes it on success. Returns an
	// error when the code mismatches or has expired.
	Verify(orderID kernel.UUID, code string) error

	// HasLive reports whether an unexpired code exists for the order.
	HasLive(orderID kernel.UUID) bool
}

// AdvanceOrderCommandHandler moves orders through their lifecycle.
//
// The status update and its tracking event commit atomically under an
// optimistic version check, so two concurrent advances of the same order
// cannot both succeed. Entering OutForDelivery issues a delivery confirmation
// code; entering Completed requires it while one is live. When settlement is
// configured on completion, the handler settles the order after the
// transition commits.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	codes      ConfirmationCodes
	publisher  ports.EventPublisher
	settle     *SettleOrderCommandHandler
	trigger    SettlementTrigger
	logger     *slog.Logger
}

// NewAdvanceOrderCommandHandler creates a handler for lifecycle transitions.
// The codes store, publisher, and settle handler may be nil when those
// features are not configured.
func NewAdvanceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	codes ConfirmationCodes,
	publisher ports.EventPublisher,
	settle *SettleOrderCommandHandler,
	trigger SettlementTrigger,
	logger *slog.Logger,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		codes:      codes,
		publisher:  publisher,
		settle:     settle,
		trigger:    trigger,
		logger:     logger.With("component", "advance_order"),
	}
}

// Handle processes the advance command.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
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

	next, err := ord.Status().Next()
	if err != nil {
		return err
	}

	if next == order.Completed {
		if err = h.checkConfirmationCode(ord.ID(), cmd.ConfirmationCode()); err != nil {
			return err
		}
	}

	if _, err = ord.Advance(); err != nil {
		return err
	}

	actor, err := tracking.NewActor(cmd.ActorID(), cmd.ActorRole())
	if err != nil {
		return err
	}

	if err = h.persistTransition(ctx, uow, ord, actor, cmd.Point(), cmd.Note()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.StatusTransitions.WithLabelValues(ord.Status().String()).Inc()
	h.afterCommit(ctx, ord)
	return nil
}

func (h *AdvanceOrderCommandHandler) checkConfirmationCode(orderID kernel.UUID, code string) error {
	if h.codes == nil || !h.codes.HasLive(orderID) {
		return nil
	}
	if code == "" {
		return ErrConfirmationCodeRequired
	}
	return h.codes.Verify(orderID, code)
}

func (h *AdvanceOrderCommandHandler) persistTransition(
	ctx context.Context,
	uow OrderUoW,
	ord *order.Order,
	actor tracking.Actor,
	point *kernel.GeoPoint,
	note string,
) error {
	if err := uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	event, err := tracking.NewEvent(kernel.NewUUID(), ord.ID(), ord.Status(), actor, point, note)
	if err != nil {
		return err
	}

	return uow.TrackingRepository().Add(ctx, event)
}

// afterCommit runs the best-effort follow-ups of a committed transition:
// confirmation code issuance, the change notification, and settlement.
func (h *AdvanceOrderCommandHandler) afterCommit(ctx context.Context, ord *order.Order) {
	if ord.Status() == order.OutForDelivery && h.codes != nil {
		if _, err := h.codes.Issue(ord.ID()); err != nil {
			h.logger.Warn("confirmation code issuance failed",
				"order_id", ord.ID().String(), "error", err)
		}
	}

	if h.publisher != nil {
		publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()

		if err := h.publisher.PublishOrderChanged(publishCtx, ord); err != nil {
			h.logger.Warn("order event publish failed",
				"order_id", ord.ID().String(), "error", err)
		}
	}

	if ord.Status() == order.Completed && h.trigger == SettleOnCompletion && h.settle != nil {
		settleCmd, err := NewSettleOrderCommand(ord.ID())
		if err == nil {
			err = h.settle.Handle(ctx, settleCmd)
		}
		if err != nil {
			// The reconciliation job retries completed-but-unsettled orders.
			h.logger.Error("settlement after completion failed",
				"order_id", ord.ID().String(), "error", err)
		}
	}
}
