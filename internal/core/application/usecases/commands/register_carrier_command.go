package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRegisterCarrierCommandIsNotConstructed = errors.New(
		"RegisterCarrierCommand must be created via NewRegisterCarrierCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// RegisterCarrierCommand represents a request to add a transport carrier to
// the directory. New carriers start unverified; setting verified immediately
// is an operator shortcut for pre-vetted partners.
type RegisterCarrierCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID
	name      string
	zone      kernel.Zone
	verified  bool

	guard guard.ConstructorGuard
}

// NewRegisterCarrierCommand creates a command to register a carrier.
func NewRegisterCarrierCommand(
	carrierID kernel.UUID,
	name string,
	zone kernel.Zone,
	verified bool,
) (RegisterCarrierCommand, error) {
	if err := errors.Join(
		carrierID.Validate(),
		zone.Validate(),
	); err != nil {
		return RegisterCarrierCommand{}, err
	}

	if name == "" {
		return RegisterCarrierCommand{}, ErrNameIsRequired
	}

	return RegisterCarrierCommand{
		carrierID: carrierID,
		name:      name,
		zone:      zone,
		verified:  verified,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCarrierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCarrierCommandIsNotConstructed)
}

// CarrierID returns the new carrier's identifier.
func (c RegisterCarrierCommand) CarrierID() kernel.UUID { return c.carrierID }

// Name returns the carrier's display name.
func (c RegisterCarrierCommand) Name() string { return c.name }

// Zone returns the zone the carrier serves.
func (c RegisterCarrierCommand) Zone() kernel.Zone { return c.zone }

// Verified reports whether the carrier is pre-vetted.
func (c RegisterCarrierCommand) Verified() bool { return c.verified }
