package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"
)

// LedgerRepository defines the persistence contract for the append-only
// financial ledger.
type LedgerRepository interface {
	// Add appends a ledger entry. A unique constraint on (order, movement
	// type) rejects a second settlement attempt with
	// ledger.ErrDuplicateSettlement, which makes settlement idempotent under
	// races.
	Add(ctx context.Context, entry *ledger.Entry) error

	// GetByOrder retrieves every movement recorded for an order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*ledger.Entry, error)

	// GetByPayee retrieves every movement for a payee account, newest first.
	GetByPayee(ctx context.Context, payeeID kernel.UUID) ([]*ledger.Entry, error)

	// HasSettlement reports whether settlement entries already exist for the
	// order.
	HasSettlement(ctx context.Context, orderID kernel.UUID) (bool, error)
}
