package tracking

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrActorIsNotConstructed is returned when an Actor was not created via NewActor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// ActorRole identifies who performed a fulfillment action. The identity
// service authenticates the actor upstream; the engine trusts the role it is
// handed and records it on every tracking event.
type ActorRole int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown ActorRole = iota

	// RoleBuyer is the purchasing customer.
	RoleBuyer

	// RoleSeller is the merchant fulfilling the product.
	RoleSeller

	// RoleCarrier is a transport carrier employee scanning at a hub.
	RoleCarrier

	// RoleDeliveryAgent is the last-mile agent.
	RoleDeliveryAgent

	// RoleAdmin is a platform operator.
	RoleAdmin

	// RoleSystem marks events recorded by the engine itself, such as
	// automatic settlement.
	RoleSystem
)

func getRoleStrings() map[ActorRole]string {
	return map[ActorRole]string{
		RoleUnknown:       "Unknown",
		RoleBuyer:         "Buyer",
		RoleSeller:        "Seller",
		RoleCarrier:       "Carrier",
		RoleDeliveryAgent: "DeliveryAgent",
		RoleAdmin:         "Admin",
		RoleSystem:        "System",
	}
}

// Validate checks that the role is one of the defined values.
func (r ActorRole) Validate() error {
	if r == RoleUnknown {
		return errs.NewValueIsInvalidErrorWithCause("actor role",
			fmt.Errorf("%d is not a valid role", r))
	}
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("actor role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable role name.
func (r ActorRole) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// ActorRoleFromString maps a role name back to its ActorRole. Returns an
// error for "Unknown" and for names that match no defined role.
func ActorRoleFromString(s string) (ActorRole, error) {
	for role, name := range getRoleStrings() {
		if role != RoleUnknown && name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("actor role",
		fmt.Errorf("%q is not a valid role", s))
}

// Actor is the authenticated identity performing an engine operation.
type Actor struct {
	id   kernel.UUID
	role ActorRole

	isConstructed bool
}

// NewActor creates an actor from an authenticated identity and role.
func NewActor(id kernel.UUID, role ActorRole) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role, isConstructed: true}, nil
}

// ID returns the actor's identity reference.
func (a Actor) ID() kernel.UUID { return a.id }

// Role returns the actor's role.
func (a Actor) Role() ActorRole { return a.role }

// Validate ensures the actor was created via NewActor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}
