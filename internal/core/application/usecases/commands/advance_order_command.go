package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/tracking"
	"fulfillment/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand represents a request to move an order to its next
// lifecycle status. The target status is never part of the command: the
// engine owns the transition table and callers only say "advance".
//
// Example:
//
//	cmd, err := NewAdvanceOrderCommand(orderID, agentID, tracking.RoleDeliveryAgent, nil, "", code)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // terminal order, concurrent update, or missing confirmation code
//	    return err
//	}
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   kernel.UUID
	actorRole tracking.ActorRole

	point            *kernel.GeoPoint
	note             string
	confirmationCode string

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance an order. The point,
// note, and confirmation code are optional; the code is only consulted on the
// transition into Completed.
func NewAdvanceOrderCommand(
	orderID, actorID kernel.UUID,
	actorRole tracking.ActorRole,
	point *kernel.GeoPoint,
	note string,
	confirmationCode string,
) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		point:            point,
		note:             note,
		confirmationCode: confirmationCode,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actorID, actorRole),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the order to advance.
func (c AdvanceOrderCommand) OrderID() kernel.UUID { return c.orderID }

// ActorID returns who requested the transition.
func (c AdvanceOrderCommand) ActorID() kernel.UUID { return c.actorID }

// ActorRole returns the requesting actor's role.
func (c AdvanceOrderCommand) ActorRole() tracking.ActorRole { return c.actorRole }

// Point returns the optional scan location.
func (c AdvanceOrderCommand) Point() *kernel.GeoPoint { return c.point }

// Note returns the optional free-text note.
func (c AdvanceOrderCommand) Note() string { return c.note }

// ConfirmationCode returns the delivery confirmation code, when presented.
func (c AdvanceOrderCommand) ConfirmationCode() string { return c.confirmationCode }

func (c *AdvanceOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *AdvanceOrderCommand) setActor(id kernel.UUID, role tracking.ActorRole) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := role.Validate(); err != nil {
		return err
	}
	c.actorID = id
	c.actorRole = role
	return nil
}
