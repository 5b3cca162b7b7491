package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog entries and
// their stock counters.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// ReserveStock decrements the stock counter by quantity with a single
	// conditional update (stock >= quantity). Run inside the same transaction
	// as the order insert so oversell cannot commit. Returns
	// product.ErrInsufficientStock when the condition fails.
	ReserveStock(ctx context.Context, id kernel.UUID, quantity int) error

	// ReleaseStock returns a cancelled order's quantity to the counter.
	ReleaseStock(ctx context.Context, id kernel.UUID, quantity int) error
}
