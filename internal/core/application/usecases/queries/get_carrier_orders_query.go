package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrGetCarrierOrdersQueryIsNotConstructed = errors.New(
	"GetCarrierOrdersQuery must be created via NewGetCarrierOrdersQuery constructor",
)

// GetCarrierOrdersQuery retrieves the active orders assigned to a carrier on
// either leg, the data behind the carrier work board.
type GetCarrierOrdersQuery struct {
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCarrierOrdersQuery creates a query for a carrier's active orders.
func NewGetCarrierOrdersQuery(carrierID kernel.UUID) (GetCarrierOrdersQuery, error) {
	if err := carrierID.Validate(); err != nil {
		return GetCarrierOrdersQuery{}, err
	}
	return GetCarrierOrdersQuery{
		carrierID: carrierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCarrierOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCarrierOrdersQueryIsNotConstructed)
}

// CarrierID returns the carrier whose board to fetch.
func (q GetCarrierOrdersQuery) CarrierID() kernel.UUID { return q.carrierID }

// GetCarrierOrdersQueryResponse is one row of the carrier work board.
type GetCarrierOrdersQueryResponse struct {
	OrderID      kernel.UUID
	Status       order.Status
	Quantity     int
	PickupZone   string
	DeliveryZone string
}
