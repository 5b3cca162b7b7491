// Package order provides domain entities and business logic for purchase-order
// fulfillment. It implements the Order aggregate root with lifecycle
// management, carrier assignment, and the price breakdown invariant.
//
// The package includes:
//   - Order: The aggregate root holding pricing, addresses, carriers, and lifecycle
//   - Status: A table-driven state machine enforcing the linear delivery lifecycle
//   - ScanToken: The opaque bearer token that maps a physical scan to an order
//
// Key business rules:
//   - total price always equals commission amount plus seller amount
//   - the price breakdown is snapshotted at creation and never recomputed
//   - Advance moves through Placed -> Assigned -> Shipped -> InTransit ->
//     Received -> OutForDelivery -> Completed with no skipping
//   - Cancelled is reachable from any non-terminal status, only via Cancel
//   - carrier re-assignment is allowed only before shipment
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
