package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrSettleOrderCommandIsNotConstructed = errors.New(
	"SettleOrderCommand must be created via NewSettleOrderCommand constructor",
)

// SettleOrderCommand represents a request to settle a completed order's
// money: credit the seller with their share and the platform with the
// commission. Settlement is idempotent; repeating the command is harmless.
type SettleOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSettleOrderCommand creates a command to settle an order.
func NewSettleOrderCommand(orderID kernel.UUID) (SettleOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SettleOrderCommand{}, err
	}

	return SettleOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SettleOrderCommand) Validate() error {
	return c.guard.Validate(ErrSettleOrderCommandIsNotConstructed)
}

// OrderID returns the order to settle.
func (c SettleOrderCommand) OrderID() kernel.UUID { return c.orderID }
