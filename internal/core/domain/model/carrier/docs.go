// Package carrier provides the Carrier aggregate for the transport carrier
// directory. Carriers are zone-local transport companies that move parcels
// between the seller's zone and the buyer's zone.
//
// Key business rules:
//   - only verified, active carriers are eligible for order assignment
//   - a carrier serves exactly one zone
//   - verification is an explicit administrative action, never implicit
package carrier
