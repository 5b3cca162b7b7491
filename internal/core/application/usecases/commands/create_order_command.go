package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrQuantityIsInvalid        = errors.New("quantity must be greater than 0")
	ErrTransportChargeIsInvalid = errors.New("transport charge must not be negative")
)

// CreateOrderCommand represents a request to place a new fulfillment order.
// The seller and unit price are not part of the command: both are snapshotted
// from the catalog entry inside the handler's transaction.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, buyerID, productID, 3, pickup, delivery, charge)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	buyerID   kernel.UUID
	productID kernel.UUID
	quantity  int

	pickupAddress   kernel.Address
	deliveryAddress kernel.Address
	transportCharge kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, quantity, and both addresses.
func NewCreateOrderCommand(
	orderID, buyerID, productID kernel.UUID,
	quantity int,
	pickupAddress, deliveryAddress kernel.Address,
	transportCharge kernel.Money,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBuyerID(buyerID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
		cmd.setPickupAddress(pickupAddress),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setTransportCharge(transportCharge),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// BuyerID returns the purchasing customer's identifier.
func (c CreateOrderCommand) BuyerID() kernel.UUID { return c.buyerID }

// ProductID returns the catalog entry being ordered.
func (c CreateOrderCommand) ProductID() kernel.UUID { return c.productID }

// Quantity returns the number of units ordered.
func (c CreateOrderCommand) Quantity() int { return c.quantity }

// PickupAddress returns the seller-side address.
func (c CreateOrderCommand) PickupAddress() kernel.Address { return c.pickupAddress }

// DeliveryAddress returns the buyer-side address.
func (c CreateOrderCommand) DeliveryAddress() kernel.Address { return c.deliveryAddress }

// TransportCharge returns the delivery charge quoted to the buyer.
func (c CreateOrderCommand) TransportCharge() kernel.Money { return c.transportCharge }

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setBuyerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.buyerID = id
	return nil
}

func (c *CreateOrderCommand) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.productID = id
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setPickupAddress(addr kernel.Address) error {
	if err := addr.Validate(); err != nil {
		return err
	}
	c.pickupAddress = addr
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(addr kernel.Address) error {
	if err := addr.Validate(); err != nil {
		return err
	}
	c.deliveryAddress = addr
	return nil
}

func (c *CreateOrderCommand) setTransportCharge(charge kernel.Money) error {
	if charge.IsNegative() {
		return ErrTransportChargeIsInvalid
	}
	c.transportCharge = charge
	return nil
}
