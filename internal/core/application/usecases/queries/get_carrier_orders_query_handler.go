package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCarrierOrdersQueryHandler reads the active orders of one carrier.
type GetCarrierOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCarrierOrdersQueryHandler creates a handler for carrier board reads.
func NewGetCarrierOrdersQueryHandler(db *gorm.DB) GetCarrierOrdersQueryHandler {
	return GetCarrierOrdersQueryHandler{db: db}
}

// Handle executes the query. Terminal orders drop off the board; the carrier
// matches on either the pickup or the delivery leg.
func (h GetCarrierOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCarrierOrdersQuery,
) ([]GetCarrierOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, status, quantity, pickup_zone, delivery_zone
		FROM orders
		WHERE (source_carrier_id = ? OR destination_carrier_id = ?)
			AND status NOT IN (?, ?)
		ORDER BY id
	`, query.CarrierID().Bytes(), query.CarrierID().Bytes(),
		order.Completed, order.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	board := make([]GetCarrierOrdersQueryResponse, 0)

	for rows.Next() {
		var (
			id                       uuid.UUID
			status, quantity         int
			pickupZone, deliveryZone string
		)

		if err = rows.Scan(&id, &status, &quantity, &pickupZone, &deliveryZone); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		board = append(board, GetCarrierOrdersQueryResponse{
			OrderID:      orderID,
			Status:       order.Status(status),
			Quantity:     quantity,
			PickupZone:   pickupZone,
			DeliveryZone: deliveryZone,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return board, nil
}
