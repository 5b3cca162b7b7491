package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// DistanceClient estimates the route between pickup and delivery addresses.
// Implementations call an external routing collaborator; callers bound the
// call with a context deadline and treat failure as a missing enrichment, not
// an order-creation failure.
type DistanceClient interface {
	Estimate(ctx context.Context, from, to kernel.Address) (order.DistanceEstimate, error)
}

// EventPublisher notifies downstream consumers of order status changes.
// Publishing is fire-and-forget: implementations log failures and never block
// or fail the operation that produced the change.
type EventPublisher interface {
	PublishOrderChanged(ctx context.Context, ord *order.Order) error
}
