// Package orderrepo persists order aggregates with GORM. The package maps
// between the order domain aggregate and its relational representation and
// implements optimistic concurrency through the version column.
package orderrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the database row for an order aggregate. Money amounts are
// stored as numeric columns so ledger reconciliation can sum them in SQL, and
// the scan token carries a unique index because it resolves physical labels
// back to orders.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BuyerID   uuid.UUID `gorm:"type:uuid;index"`
	SellerID  uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid"`

	Quantity         int
	UnitPrice        decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalPrice       decimal.Decimal `gorm:"type:numeric(12,2)"`
	CommissionAmount decimal.Decimal `gorm:"type:numeric(12,2)"`
	SellerAmount     decimal.Decimal `gorm:"type:numeric(12,2)"`
	TransportCharge  decimal.Decimal `gorm:"type:numeric(12,2)"`

	Pickup   AddressDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Delivery AddressDTO `gorm:"embedded;embeddedPrefix:delivery_"`

	ScanToken string `gorm:"size:36;uniqueIndex"`
	Status    int    `gorm:"index"`

	SourceCarrierID      *uuid.UUID `gorm:"type:uuid;index"`
	DestinationCarrierID *uuid.UUID `gorm:"type:uuid;index"`
	DeliveryAgentID      *uuid.UUID `gorm:"type:uuid"`

	DistanceKm      *float64
	DurationMinutes *int
	BillURL         string

	Version int
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO is the embedded address shape shared by the pickup and delivery
// columns of the order row.
type AddressDTO struct {
	Street string
	City   string
	Zone   string `gorm:"size:64"`
}

func addressFromDomain(addr kernel.Address) AddressDTO {
	return AddressDTO{
		Street: addr.Street(),
		City:   addr.City(),
		Zone:   addr.Zone().Code(),
	}
}

func addressToDomain(dto AddressDTO) (kernel.Address, error) {
	zone, err := kernel.NewZone(dto.Zone)
	if err != nil {
		return kernel.Address{}, err
	}
	return kernel.NewAddress(dto.Street, dto.City, zone)
}

func optionalIDFromDomain(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalIDToDomain(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:        aggregate.ID().Bytes(),
		BuyerID:   aggregate.BuyerID().Bytes(),
		SellerID:  aggregate.SellerID().Bytes(),
		ProductID: aggregate.ProductID().Bytes(),

		Quantity:         aggregate.Quantity(),
		UnitPrice:        aggregate.UnitPrice().Decimal(),
		TotalPrice:       aggregate.TotalPrice().Decimal(),
		CommissionAmount: aggregate.CommissionAmount().Decimal(),
		SellerAmount:     aggregate.SellerAmount().Decimal(),
		TransportCharge:  aggregate.TransportCharge().Decimal(),

		Pickup:   addressFromDomain(aggregate.PickupAddress()),
		Delivery: addressFromDomain(aggregate.DeliveryAddress()),

		ScanToken: aggregate.ScanToken().String(),
		Status:    int(aggregate.Status()),

		SourceCarrierID:      optionalIDFromDomain(aggregate.SourceCarrier()),
		DestinationCarrierID: optionalIDFromDomain(aggregate.DestinationCarrier()),
		DeliveryAgentID:      optionalIDFromDomain(aggregate.DeliveryAgent()),

		BillURL: aggregate.BillURL(),
		Version: aggregate.Version(),
	}

	if estimate := aggregate.Distance(); estimate != nil {
		km := estimate.DistanceKm
		minutes := estimate.DurationMinutes
		dto.DistanceKm = &km
		dto.DurationMinutes = &minutes
	}

	return dto
}

// toDomain reconstructs an order aggregate from a database row via
// RestoreOrder, so corrupt rows fail here instead of propagating.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}
	totalPrice, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}
	commission, err := kernel.NewMoney(dto.CommissionAmount)
	if err != nil {
		return nil, err
	}
	sellerAmount, err := kernel.NewMoney(dto.SellerAmount)
	if err != nil {
		return nil, err
	}
	transportCharge, err := kernel.NewMoney(dto.TransportCharge)
	if err != nil {
		return nil, err
	}

	breakdown, err := order.NewPriceBreakdown(totalPrice, commission, sellerAmount)
	if err != nil {
		return nil, err
	}

	pickup, err := addressToDomain(dto.Pickup)
	if err != nil {
		return nil, err
	}
	delivery, err := addressToDomain(dto.Delivery)
	if err != nil {
		return nil, err
	}

	token, err := order.ScanTokenFromString(dto.ScanToken)
	if err != nil {
		return nil, err
	}

	sourceCarrierID, err := optionalIDToDomain(dto.SourceCarrierID)
	if err != nil {
		return nil, err
	}
	destinationCarrierID, err := optionalIDToDomain(dto.DestinationCarrierID)
	if err != nil {
		return nil, err
	}
	agentID, err := optionalIDToDomain(dto.DeliveryAgentID)
	if err != nil {
		return nil, err
	}

	var estimate *order.DistanceEstimate
	if dto.DistanceKm != nil && dto.DurationMinutes != nil {
		estimate = &order.DistanceEstimate{
			DistanceKm:      *dto.DistanceKm,
			DurationMinutes: *dto.DurationMinutes,
		}
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                   id,
		BuyerID:              buyerID,
		SellerID:             sellerID,
		ProductID:            productID,
		Quantity:             dto.Quantity,
		UnitPrice:            unitPrice,
		Breakdown:            breakdown,
		TransportCharge:      transportCharge,
		PickupAddress:        pickup,
		DeliveryAddress:      delivery,
		ScanToken:            token,
		Status:               order.Status(dto.Status),
		SourceCarrierID:      sourceCarrierID,
		DestinationCarrierID: destinationCarrierID,
		DeliveryAgentID:      agentID,
		Distance:             estimate,
		BillURL:              dto.BillURL,
		Version:              dto.Version,
	})
}
