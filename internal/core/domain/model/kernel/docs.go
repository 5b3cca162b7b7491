// Package kernel provides core domain primitives for the fulfillment system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison
//   - Money: An exact decimal-backed value object for all monetary amounts
//   - Zone: A normalized carrier service-area code
//   - Address: A pickup or delivery location bound to a zone
//   - GeoPoint: An optional geographic coordinate for tracking events
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
