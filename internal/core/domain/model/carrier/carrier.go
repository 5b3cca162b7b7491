package carrier

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrCarrierIsNotConstructed is returned when a Carrier instance was not
// created through NewCarrier or RestoreCarrier.
var ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier constructor")

// Carrier represents a transport company serving a single geographic zone.
// Newly registered carriers start unverified and inactive for assignment
// purposes; an administrator verifies them before they can receive orders.
type Carrier struct {
	id       kernel.UUID
	name     string
	zone     kernel.Zone
	verified bool
	active   bool

	isConstructed bool
}

// NewCarrier registers a carrier for a zone. The carrier starts active but
// unverified, so it is not yet eligible for assignment.
func NewCarrier(id kernel.UUID, name string, zone kernel.Zone) (*Carrier, error) {
	c := &Carrier{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setZone(zone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCarrier reconstructs a carrier from persistence.
func RestoreCarrier(id kernel.UUID, name string, zone kernel.Zone, verified, active bool) (*Carrier, error) {
	c, err := NewCarrier(id, name, zone)
	if err != nil {
		return nil, err
	}

	c.verified = verified
	c.active = active
	return c, nil
}

// Validate ensures the Carrier was created through a constructor.
func (c *Carrier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCarrierIsNotConstructed
	}
	return nil
}

// IsEqual compares two carriers by identity.
func (c *Carrier) IsEqual(other *Carrier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the carrier's unique identifier.
func (c *Carrier) ID() kernel.UUID { return c.id }

// Name returns the carrier's display name.
func (c *Carrier) Name() string { return c.name }

// Zone returns the single zone the carrier serves.
func (c *Carrier) Zone() kernel.Zone { return c.zone }

// IsVerified reports whether an administrator has verified the carrier.
func (c *Carrier) IsVerified() bool { return c.verified }

// IsActive reports whether the carrier is currently operating.
func (c *Carrier) IsActive() bool { return c.active }

// IsEligible reports whether the carrier may be assigned orders.
// Only verified, active carriers are eligible.
func (c *Carrier) IsEligible() bool { return c.verified && c.active }

// Verify marks the carrier as verified by an administrator.
func (c *Carrier) Verify() {
	c.verified = true
}

// Deactivate takes the carrier out of service. Existing assignments are
// unaffected; the carrier simply receives no new orders.
func (c *Carrier) Deactivate() {
	c.active = false
}

// Activate returns the carrier to service.
func (c *Carrier) Activate() {
	c.active = true
}

func (c *Carrier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Carrier) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("carrier name")
	}
	c.name = name
	return nil
}

func (c *Carrier) setZone(zone kernel.Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}
	c.zone = zone
	return nil
}
