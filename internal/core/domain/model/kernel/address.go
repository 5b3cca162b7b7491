package kernel

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("Address must be created via NewAddress")

// Address is a value object for pickup and delivery locations. The zone part
// drives carrier assignment; street and city are free text passed through to
// the distance collaborator and to carriers.
type Address struct {
	street string
	city   string
	zone   Zone

	isConstructed bool
}

// NewAddress creates an Address from its parts. Street and city must be
// non-empty, and the zone must be a constructed Zone.
func NewAddress(street, city string, zone Zone) (Address, error) {
	addr := Address{isConstructed: true}

	if err := errors.Join(
		addr.setStreet(street),
		addr.setCity(city),
		addr.setZone(zone),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// Zone returns the carrier service zone of the address.
func (a Address) Zone() Zone {
	return a.zone
}

// String formats the address as a single line for logs and the distance
// collaborator request.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s (%s)", a.street, a.city, a.zone)
}

// IsEqual reports whether two addresses are identical part for part.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street && a.city == other.city && a.zone.IsEqual(other.zone)
}

// Validate returns ErrAddressIsNotConstructed for the zero value.
func (a Address) Validate() error {
	if !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setZone(zone Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}
	a.zone = zone
	return nil
}
