// Package queries contains read-side operations of the CQRS architecture.
// Query handlers bypass the aggregates and read projection rows straight from
// the database, so listing and display never pay the rehydration cost.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its full display state.
//
// Example:
//
//	query, _ := NewGetOrderQuery(orderID)
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("order %s is %s\n", resp.ID, resp.Status)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// GetOrderQueryResponse is the read model of one order.
type GetOrderQueryResponse struct {
	ID        kernel.UUID
	BuyerID   kernel.UUID
	SellerID  kernel.UUID
	ProductID kernel.UUID

	Quantity         int
	UnitPrice        kernel.Money
	TotalPrice       kernel.Money
	CommissionAmount kernel.Money
	SellerAmount     kernel.Money
	TransportCharge  kernel.Money

	PickupZone   string
	DeliveryZone string

	Status  order.Status
	Version int

	SourceCarrierID      *kernel.UUID
	DestinationCarrierID *kernel.UUID
	DeliveryAgentID      *kernel.UUID

	DistanceKm      *float64
	DurationMinutes *int
	BillURL         string
}
