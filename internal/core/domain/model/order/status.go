package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. The delivery lifecycle is
// strictly linear with no skipping; Cancelled is an alternate terminal state
// reachable from any non-terminal status through an explicit cancel, never
// through Advance.
//
// State transitions:
//
//	Placed ──> Assigned ──> Shipped ──> InTransit ──> Received ──> OutForDelivery ──> Completed
//	   │           │            │            │             │               │
//	   └───────────┴────────────┴────────────┴─────────────┴───────────────┴──> Cancelled
//
// Transitions are driven by the table below rather than conditional branches,
// so adding a state is a data change.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status when an order is created and stock reserved.
	Placed

	// Assigned indicates carriers have acknowledged the order for pickup.
	Assigned

	// Shipped indicates the source carrier has collected the parcel.
	Shipped

	// InTransit indicates the parcel is moving between zones.
	InTransit

	// Received indicates the destination carrier has the parcel in its hub.
	Received

	// OutForDelivery indicates a delivery agent is carrying the parcel
	// to the buyer.
	OutForDelivery

	// Completed indicates the buyer has the parcel. Terminal.
	Completed

	// Cancelled is the alternate terminal state, reachable from any
	// non-terminal status via an explicit cancel operation.
	Cancelled
)

// advanceTable maps each status to its single allowed successor under Advance.
// Terminal statuses have no entry.
var advanceTable = map[Status]Status{
	Placed:         Assigned,
	Assigned:       Shipped,
	Shipped:        InTransit,
	InTransit:      Received,
	Received:       OutForDelivery,
	OutForDelivery: Completed,
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Placed:         "Placed",
		Assigned:       "Assigned",
		Shipped:        "Shipped",
		InTransit:      "InTransit",
		Received:       "Received",
		OutForDelivery: "OutForDelivery",
		Completed:      "Completed",
		Cancelled:      "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:         "Placed",
		Assigned:       "Assigned",
		Shipped:        "Shipped",
		InTransit:      "InTransit",
		Received:       "Received",
		OutForDelivery: "OutForDelivery",
		Completed:      "Completed",
		Cancelled:      "Cancelled",
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Next returns the single allowed successor status for an Advance.
//
// Returns:
//   - (successor, nil) for the six linear transitions
//   - (0, ErrAlreadyTerminal) for Completed and Cancelled
//   - (0, ErrInvalidTransition) for any status without a successor
//
// Cancellation is not reachable through Next; use CanCancel plus the explicit
// cancel operation on the aggregate.
func (s Status) Next() (Status, error) {
	if s.IsTerminal() {
		return 0, ErrAlreadyTerminal
	}

	next, ok := advanceTable[s]
	if !ok {
		return 0, ErrInvalidTransition
	}
	return next, nil
}

// CanCancel reports whether an explicit cancel is permitted from this status.
// Any defined non-terminal status may be cancelled.
func (s Status) CanCancel() bool {
	if s.Validate() != nil {
		return false
	}
	return !s.IsTerminal()
}
