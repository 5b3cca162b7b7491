package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRegisterProductCommandIsNotConstructed = errors.New(
		"RegisterProductCommand must be created via NewRegisterProductCommand constructor",
	)
	ErrStockIsInvalid = errors.New("stock must not be negative")
)

// RegisterProductCommand represents a request to add a catalog entry with its
// initial stock.
type RegisterProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	sellerID  kernel.UUID
	name      string
	unitPrice kernel.Money
	stock     int

	guard guard.ConstructorGuard
}

// NewRegisterProductCommand creates a command to register a product.
func NewRegisterProductCommand(
	productID, sellerID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	stock int,
) (RegisterProductCommand, error) {
	if err := errors.Join(
		productID.Validate(),
		sellerID.Validate(),
	); err != nil {
		return RegisterProductCommand{}, err
	}

	if name == "" {
		return RegisterProductCommand{}, ErrNameIsRequired
	}
	if stock < 0 {
		return RegisterProductCommand{}, ErrStockIsInvalid
	}

	return RegisterProductCommand{
		productID: productID,
		sellerID:  sellerID,
		name:      name,
		unitPrice: unitPrice,
		stock:     stock,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterProductCommand) Validate() error {
	return c.guard.Validate(ErrRegisterProductCommandIsNotConstructed)
}

// ProductID returns the new product's identifier.
func (c RegisterProductCommand) ProductID() kernel.UUID { return c.productID }

// SellerID returns the owning seller.
func (c RegisterProductCommand) SellerID() kernel.UUID { return c.sellerID }

// Name returns the catalog name.
func (c RegisterProductCommand) Name() string { return c.name }

// UnitPrice returns the price per unit.
func (c RegisterProductCommand) UnitPrice() kernel.Money { return c.unitPrice }

// Stock returns the initial stock.
func (c RegisterProductCommand) Stock() int { return c.stock }
