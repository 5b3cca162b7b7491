package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/tracking"
	"fulfillment/internal/pkg/guard"
)

var ErrScanOrderCommandIsNotConstructed = errors.New(
	"ScanOrderCommand must be created via NewScanOrderCommand constructor",
)

// ScanOrderCommand represents a physical label scan at a hub or doorstep. The
// scan token printed on the parcel stands in for the order id; everything
// else matches AdvanceOrderCommand.
type ScanOrderCommand struct { //nolint:recvcheck //using for validation
	token     order.ScanToken
	actorID   kernel.UUID
	actorRole tracking.ActorRole

	point            *kernel.GeoPoint
	note             string
	confirmationCode string

	guard guard.ConstructorGuard
}

// NewScanOrderCommand creates a command from a scanned label token.
func NewScanOrderCommand(
	token order.ScanToken,
	actorID kernel.UUID,
	actorRole tracking.ActorRole,
	point *kernel.GeoPoint,
	note string,
	confirmationCode string,
) (ScanOrderCommand, error) {
	cmd := ScanOrderCommand{
		point:            point,
		note:             note,
		confirmationCode: confirmationCode,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		token.Validate(),
		actorID.Validate(),
		actorRole.Validate(),
	); err != nil {
		return ScanOrderCommand{}, err
	}

	cmd.token = token
	cmd.actorID = actorID
	cmd.actorRole = actorRole
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ScanOrderCommand) Validate() error {
	return c.guard.Validate(ErrScanOrderCommandIsNotConstructed)
}

// Token returns the scanned label token.
func (c ScanOrderCommand) Token() order.ScanToken { return c.token }

// ActorID returns who performed the scan.
func (c ScanOrderCommand) ActorID() kernel.UUID { return c.actorID }

// ActorRole returns the scanning actor's role.
func (c ScanOrderCommand) ActorRole() tracking.ActorRole { return c.actorRole }

// Point returns the optional scan location.
func (c ScanOrderCommand) Point() *kernel.GeoPoint { return c.point }

// Note returns the optional free-text note.
func (c ScanOrderCommand) Note() string { return c.note }

// ConfirmationCode returns the delivery confirmation code, when presented.
func (c ScanOrderCommand) ConfirmationCode() string { return c.confirmationCode }
