package services

import (
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// CarrierAssigner is a domain service that selects transport carriers for an
// order based on the pickup and delivery zones.
//
// Business rules:
//   - Only eligible carriers (verified and active) are considered
//   - A carrier serves a zone only when its zone matches exactly
//   - When pickup and delivery share a zone, one carrier handles both legs
//   - Ties are broken by the lexically smallest carrier id, so repeated runs
//     over the same directory state pick the same carrier
//   - A zone without an eligible carrier is tolerated: the leg stays
//     unassigned and can be filled later via re-assignment
//
// Example usage:
//
//	assigner := services.NewCarrierAssigner()
//	err := assigner.Assign(ord, pickupCandidates, deliveryCandidates)
//	if err != nil {
//	    // order was not in an assignable state
//	    return
//	}
//	// ord now carries source/destination carriers where available
type CarrierAssigner struct{}

// NewCarrierAssigner creates a new CarrierAssigner instance.
func NewCarrierAssigner() CarrierAssigner {
	return CarrierAssigner{}
}

// Assign selects carriers for the order's pickup and delivery zones from the
// given candidate sets and records them on the order.
//
// The pickup candidates are matched against the pickup address zone and the
// delivery candidates against the delivery address zone. Either selection may
// come up empty; the order keeps the corresponding leg unassigned.
func (a CarrierAssigner) Assign(
	ord *order.Order,
	pickupCandidates, deliveryCandidates []*carrier.Carrier,
) error {
	if err := ord.Validate(); err != nil {
		return err
	}

	source := a.SelectForZone(ord.PickupAddress().Zone(), pickupCandidates)

	var destination *carrier.Carrier
	if ord.PickupAddress().Zone().IsEqual(ord.DeliveryAddress().Zone()) {
		destination = source
	} else {
		destination = a.SelectForZone(ord.DeliveryAddress().Zone(), deliveryCandidates)
	}

	return ord.AssignCarriers(carrierID(source), carrierID(destination))
}

// SelectForZone returns the eligible carrier serving the zone with the
// lexically smallest id, or nil when none qualifies.
func (a CarrierAssigner) SelectForZone(zone kernel.Zone, candidates []*carrier.Carrier) *carrier.Carrier {
	var best *carrier.Carrier

	for _, c := range candidates {
		if c == nil || c.Validate() != nil {
			continue
		}
		if !c.IsEligible() || !c.Zone().IsEqual(zone) {
			continue
		}
		if best == nil || c.ID().String() < best.ID().String() {
			best = c
		}
	}

	return best
}

func carrierID(c *carrier.Carrier) *kernel.UUID {
	if c == nil {
		return nil
	}
	id := c.ID()
	return &id
}
