package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate under optimistic
	// concurrency: the write succeeds only when the stored version still
	// matches the version the aggregate was loaded with, and bumps it.
	// A concurrent writer loses with errs.VersionIsInvalidError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByScanToken resolves the order a physical parcel label refers to.
	// Returns errs.ObjectNotFoundError when the token is unknown.
	GetByScanToken(ctx context.Context, token order.ScanToken) (*order.Order, error)

	// GetCompletedUnsettled retrieves completed orders that have no settlement
	// ledger entries yet. Used by the reconciliation job to re-drive
	// settlement after a crash between completion and settling.
	GetCompletedUnsettled(ctx context.Context, limit int) ([]*order.Order, error)
}
