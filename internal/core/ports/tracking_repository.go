package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/tracking"
)

// TrackingRepository defines the persistence contract for the append-only
// tracking event trail. Events are never updated or deleted.
type TrackingRepository interface {
	// Add appends a tracking event. Callers record the event in the same
	// transaction as the status change it describes.
	Add(ctx context.Context, event *tracking.Event) error

	// GetByOrder retrieves the full event history of an order, oldest first.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*tracking.Event, error)
}
