package commands

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrUnknownScanToken is returned when a scanned token resolves to no order.
var ErrUnknownScanToken = errors.New("unknown scan token")

// ScanOrderCommandHandler resolves a parcel label to its order and advances
// it. The resolution is a read outside the transition transaction; the
// transition itself goes through AdvanceOrderCommandHandler with its version
// check, so a stale resolution loses the race instead of corrupting state.
type ScanOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	advance    *AdvanceOrderCommandHandler
}

// NewScanOrderCommandHandler creates a handler for label scans.
func NewScanOrderCommandHandler(
	uowFactory OrderUoWFactory,
	advance *AdvanceOrderCommandHandler,
) ScanOrderCommandHandler {
	return ScanOrderCommandHandler{
		uowFactory: uowFactory,
		advance:    advance,
	}
}

// Handle processes the scan command. On success it returns the resolved
// order's identifier.
func (h *ScanOrderCommandHandler) Handle(
	ctx context.Context, cmd ScanOrderCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	orderID, err := h.resolve(ctx, cmd)
	if err != nil {
		return kernel.UUID{}, err
	}

	advanceCmd, err := NewAdvanceOrderCommand(
		orderID, cmd.ActorID(), cmd.ActorRole(),
		cmd.Point(), cmd.Note(), cmd.ConfirmationCode())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = h.advance.Handle(ctx, advanceCmd); err != nil {
		return kernel.UUID{}, err
	}

	return orderID, nil
}

func (h *ScanOrderCommandHandler) resolve(ctx context.Context, cmd ScanOrderCommand) (orderID kernel.UUID, err error) {
	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return orderID, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := uow.OrderRepository().GetByScanToken(ctx, cmd.Token())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return orderID, fmt.Errorf("%w: %s", ErrUnknownScanToken, cmd.Token())
		}
		return orderID, err
	}

	return ord.ID(), nil
}
