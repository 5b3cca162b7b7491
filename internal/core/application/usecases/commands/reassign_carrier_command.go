package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/tracking"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrReassignCarrierCommandIsNotConstructed = errors.New(
		"ReassignCarrierCommand must be created via NewReassignCarrierCommand constructor",
	)

	// ErrActorIsNotAdmin is returned when a non-admin actor attempts a manual
	// carrier re-assignment.
	ErrActorIsNotAdmin = errors.New("carrier re-assignment requires an admin actor")
)

// ReassignCarrierCommand represents a manual override of an order's carrier
// assignment by a platform operator, used when automatic assignment found no
// carrier or picked one that later became unavailable. Either leg may be nil
// to clear it.
type ReassignCarrierCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	sourceCarrierID      *kernel.UUID
	destinationCarrierID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewReassignCarrierCommand creates a command to re-assign carriers. Only
// admins may issue it, so the role is fixed rather than carried.
func NewReassignCarrierCommand(
	orderID, actorID kernel.UUID,
	actorRole tracking.ActorRole,
	sourceCarrierID, destinationCarrierID *kernel.UUID,
) (ReassignCarrierCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		actorID.Validate(),
		actorRole.Validate(),
	); err != nil {
		return ReassignCarrierCommand{}, err
	}

	if actorRole != tracking.RoleAdmin {
		return ReassignCarrierCommand{}, ErrActorIsNotAdmin
	}

	if sourceCarrierID != nil {
		if err := sourceCarrierID.Validate(); err != nil {
			return ReassignCarrierCommand{}, err
		}
	}
	if destinationCarrierID != nil {
		if err := destinationCarrierID.Validate(); err != nil {
			return ReassignCarrierCommand{}, err
		}
	}

	return ReassignCarrierCommand{
		orderID:              orderID,
		actorID:              actorID,
		sourceCarrierID:      sourceCarrierID,
		destinationCarrierID: destinationCarrierID,
		guard:                guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReassignCarrierCommand) Validate() error {
	return c.guard.Validate(ErrReassignCarrierCommandIsNotConstructed)
}

// OrderID returns the order to re-assign.
func (c ReassignCarrierCommand) OrderID() kernel.UUID { return c.orderID }

// ActorID returns the admin performing the override.
func (c ReassignCarrierCommand) ActorID() kernel.UUID { return c.actorID }

// SourceCarrierID returns the new pickup-side carrier, or nil to clear.
func (c ReassignCarrierCommand) SourceCarrierID() *kernel.UUID { return c.sourceCarrierID }

// DestinationCarrierID returns the new delivery-side carrier, or nil to clear.
func (c ReassignCarrierCommand) DestinationCarrierID() *kernel.UUID { return c.destinationCarrierID }
