package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/product"
)

// RegisterProductCommandHandler adds catalog entries.
type RegisterProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewRegisterProductCommandHandler creates a handler for product registration.
func NewRegisterProductCommandHandler(uowFactory ProductUoWFactory) RegisterProductCommandHandler {
	return RegisterProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h *RegisterProductCommandHandler) Handle(ctx context.Context, cmd RegisterProductCommand) error {
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

	p, err := product.NewProduct(cmd.ProductID(), cmd.SellerID(), cmd.Name(), cmd.UnitPrice(), cmd.Stock())
	if err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
