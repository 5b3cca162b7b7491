package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order projection from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when the order
// does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id, buyer_id, seller_id, product_id,
			quantity, unit_price, total_price, commission_amount, seller_amount, transport_charge,
			pickup_zone, delivery_zone,
			status, version,
			source_carrier_id, destination_carrier_id, delivery_agent_id,
			distance_km, duration_minutes, bill_url
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		id, buyerID, sellerID, productID                   uuid.UUID
		quantity, status, version                          int
		unitPrice, totalPrice, commission, seller, charge  string
		pickupZone, deliveryZone, billURL                  string
		sourceCarrierID, destinationCarrierID, agentID     uuid.NullUUID
		distanceKm                                         sql.NullFloat64
		durationMinutes                                    sql.NullInt64
	)

	err := row.Scan(
		&id, &buyerID, &sellerID, &productID,
		&quantity, &unitPrice, &totalPrice, &commission, &seller, &charge,
		&pickupZone, &deliveryZone,
		&status, &version,
		&sourceCarrierID, &destinationCarrierID, &agentID,
		&distanceKm, &durationMinutes, &billURL,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	resp := GetOrderQueryResponse{
		Quantity:     quantity,
		PickupZone:   pickupZone,
		DeliveryZone: deliveryZone,
		Status:       order.Status(status),
		Version:      version,
		BillURL:      billURL,
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.SellerID, err = kernel.UUIDFromBytes(sellerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.UnitPrice, err = kernel.NewMoneyFromString(unitPrice); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.TotalPrice, err = kernel.NewMoneyFromString(totalPrice); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.CommissionAmount, err = kernel.NewMoneyFromString(commission); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.SellerAmount, err = kernel.NewMoneyFromString(seller); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.TransportCharge, err = kernel.NewMoneyFromString(charge); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.SourceCarrierID, err = optionalUUID(sourceCarrierID); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.DestinationCarrierID, err = optionalUUID(destinationCarrierID); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.DeliveryAgentID, err = optionalUUID(agentID); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if distanceKm.Valid {
		resp.DistanceKm = &distanceKm.Float64
	}
	if durationMinutes.Valid {
		minutes := int(durationMinutes.Int64)
		resp.DurationMinutes = &minutes
	}

	return resp, nil
}

func optionalUUID(v uuid.NullUUID) (*kernel.UUID, error) {
	if !v.Valid {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(v.UUID[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
