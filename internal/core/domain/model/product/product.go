package product

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product was not created via
// NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// ErrInsufficientStock signals that the requested quantity exceeds the
// available stock. The repository enforces the same rule with a conditional
// update, so the aggregate check is a fast path, not the source of truth
// under concurrency.
var ErrInsufficientStock = errors.New("insufficient stock for requested quantity")

// Product is the catalog entry orders are placed against. The engine keeps a
// stock counter next to the order store so that the decrement and the order
// insert commit in one transaction.
type Product struct {
	id       kernel.UUID
	sellerID kernel.UUID
	name     string

	unitPrice kernel.Money
	stock     int

	isConstructed bool
}

// NewProduct registers a catalog entry with its initial stock.
func NewProduct(
	id, sellerID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	stock int,
) (*Product, error) {
	if err := errors.Join(
		id.Validate(),
		sellerID.Validate(),
	); err != nil {
		return nil, err
	}

	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if unitPrice.IsZero() || unitPrice.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s must be positive", unitPrice.String()))
	}
	if stock < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is negative", stock))
	}

	return &Product{
		id:            id,
		sellerID:      sellerID,
		name:          strings.TrimSpace(name),
		unitPrice:     unitPrice,
		stock:         stock,
		isConstructed: true,
	}, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(
	id, sellerID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	stock int,
) (*Product, error) {
	return NewProduct(id, sellerID, name, unitPrice, stock)
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID { return p.id }

// SellerID returns the owning seller.
func (p *Product) SellerID() kernel.UUID { return p.sellerID }

// Name returns the catalog name.
func (p *Product) Name() string { return p.name }

// UnitPrice returns the price per unit.
func (p *Product) UnitPrice() kernel.Money { return p.unitPrice }

// Stock returns the available quantity.
func (p *Product) Stock() int { return p.stock }

// Reserve decrements the stock counter by the requested quantity.
func (p *Product) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d must be positive", quantity))
	}
	if quantity > p.stock {
		return ErrInsufficientStock
	}
	p.stock -= quantity
	return nil
}

// Restock increases the stock counter, used when a cancelled order releases
// its reservation.
func (p *Product) Restock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d must be positive", quantity))
	}
	p.stock += quantity
	return nil
}
