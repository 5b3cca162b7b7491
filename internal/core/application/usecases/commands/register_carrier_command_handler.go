package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/carrier"
)

// RegisterCarrierCommandHandler adds carriers to the directory.
type RegisterCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewRegisterCarrierCommandHandler creates a handler for carrier registration.
func NewRegisterCarrierCommandHandler(uowFactory CarrierUoWFactory) RegisterCarrierCommandHandler {
	return RegisterCarrierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h *RegisterCarrierCommandHandler) Handle(ctx context.Context, cmd RegisterCarrierCommand) error {
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

	c, err := carrier.NewCarrier(cmd.CarrierID(), cmd.Name(), cmd.Zone())
	if err != nil {
		return err
	}
	if cmd.Verified() {
		c.Verify()
	}

	if err = uow.CarrierRepository().Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
