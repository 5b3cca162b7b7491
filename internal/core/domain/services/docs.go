// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the fulfillment engine. It
// implements workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - CarrierAssigner: selects transport carriers for an order by zone
//   - PriceCalculator: splits an order total into commission and seller shares
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
