package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/tracking"
	"fulfillment/internal/pkg/guard"
)

var ErrGetTrackingQueryIsNotConstructed = errors.New(
	"GetTrackingQuery must be created via NewGetTrackingQuery constructor",
)

// GetTrackingQuery retrieves the ordered event history of an order, the data
// behind the buyer-facing tracking page.
type GetTrackingQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTrackingQuery creates a query for an order's tracking history.
func NewGetTrackingQuery(orderID kernel.UUID) (GetTrackingQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetTrackingQuery{}, err
	}
	return GetTrackingQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingQueryIsNotConstructed)
}

// OrderID returns the order whose history to fetch.
func (q GetTrackingQuery) OrderID() kernel.UUID { return q.orderID }

// GetTrackingQueryResponse is one row of the tracking history.
type GetTrackingQueryResponse struct {
	EventID   kernel.UUID
	Status    order.Status
	ActorRole tracking.ActorRole

	Latitude  *float64
	Longitude *float64
	Note      string

	OccurredAt time.Time
}
