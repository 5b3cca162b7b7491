package ledger

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created via
// NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// ErrDuplicateSettlement signals that a settlement entry for the same order
// and movement type already exists. Writers treat it as proof that another
// settlement attempt won the race.
var ErrDuplicateSettlement = errors.New("settlement entries already exist for order")

// MovementType classifies a ledger movement. At most one entry per order and
// movement type may exist, which is what makes settlement idempotent.
type MovementType int

const (
	// MovementUnknown represents an invalid movement type.
	MovementUnknown MovementType = iota

	// SaleCredit credits the seller with their share of the order total.
	SaleCredit

	// CommissionCredit credits the platform account with the commission share.
	CommissionCredit

	// Refund credits the buyer with the full order total after a
	// post-settlement cancellation.
	Refund

	// WithdrawalDebit records a payout from a payee's balance.
	WithdrawalDebit
)

func getMovementStrings() map[MovementType]string {
	return map[MovementType]string{
		MovementUnknown:  "Unknown",
		SaleCredit:       "SaleCredit",
		CommissionCredit: "CommissionCredit",
		Refund:           "Refund",
		WithdrawalDebit:  "WithdrawalDebit",
	}
}

// Validate checks that the movement type is one of the defined values.
func (m MovementType) Validate() error {
	if m == MovementUnknown {
		return errs.NewValueIsInvalidErrorWithCause("movement type",
			fmt.Errorf("%d is not a valid movement type", m))
	}
	if _, ok := getMovementStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("movement type",
			fmt.Errorf("%d is not a valid movement type", m))
	}
	return nil
}

// String returns the movement type name.
func (m MovementType) String() string {
	if s, ok := getMovementStrings()[m]; ok {
		return s
	}
	return "Unknown"
}

// SettlementStatus reports whether the funds behind a movement have been
// disbursed. Entries written by the settlement transaction are Settled from
// the start; Pending exists for movements recorded ahead of their payout.
type SettlementStatus int

const (
	// StatusUnknown represents an invalid settlement status.
	StatusUnknown SettlementStatus = iota

	// StatusPending marks a movement recorded before its funds moved.
	StatusPending

	// StatusSettled marks a movement whose funds have been disbursed.
	StatusSettled
)

func getStatusStrings() map[SettlementStatus]string {
	return map[SettlementStatus]string{
		StatusUnknown: "Unknown",
		StatusPending: "Pending",
		StatusSettled: "Settled",
	}
}

// Validate checks that the settlement status is one of the defined values.
func (s SettlementStatus) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("settlement status",
			fmt.Errorf("%d is not a valid settlement status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("settlement status",
			fmt.Errorf("%d is not a valid settlement status", s))
	}
	return nil
}

// String returns the settlement status name.
func (s SettlementStatus) String() string {
	if v, ok := getStatusStrings()[s]; ok {
		return v
	}
	return "Unknown"
}

// PayeeRole identifies the kind of account an entry credits or debits.
type PayeeRole int

const (
	// PayeeUnknown represents an invalid payee role.
	PayeeUnknown PayeeRole = iota

	// PayeeSeller is the merchant account.
	PayeeSeller

	// PayeePlatform is the platform commission account.
	PayeePlatform

	// PayeeBuyer is the customer account, used for refunds.
	PayeeBuyer
)

func getPayeeStrings() map[PayeeRole]string {
	return map[PayeeRole]string{
		PayeeUnknown:  "Unknown",
		PayeeSeller:   "Seller",
		PayeePlatform: "Platform",
		PayeeBuyer:    "Buyer",
	}
}

// Validate checks that the payee role is one of the defined values.
func (p PayeeRole) Validate() error {
	if p == PayeeUnknown {
		return errs.NewValueIsInvalidErrorWithCause("payee role",
			fmt.Errorf("%d is not a valid payee role", p))
	}
	if _, ok := getPayeeStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payee role",
			fmt.Errorf("%d is not a valid payee role", p))
	}
	return nil
}

// String returns the payee role name.
func (p PayeeRole) String() string {
	if s, ok := getPayeeStrings()[p]; ok {
		return s
	}
	return "Unknown"
}

// Entry is one immutable movement of money on the fulfillment ledger. Entries
// are append-only; the balance of a payee is the sum of its credit amounts
// minus its debits, never a mutated column.
type Entry struct {
	id      kernel.UUID
	orderID kernel.UUID

	payeeID   kernel.UUID
	payeeRole PayeeRole

	movementType     MovementType
	amount           kernel.Money
	settlementStatus SettlementStatus

	createdAt time.Time

	isConstructed bool
}

// NewEntry creates a ledger movement. The amount must be positive; the
// movement type determines whether it reads as a credit or a debit. The
// movement commits inside the transaction that creates it, so it starts out
// Settled.
func NewEntry(
	id, orderID, payeeID kernel.UUID,
	payeeRole PayeeRole,
	movementType MovementType,
	amount kernel.Money,
) (*Entry, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		payeeID.Validate(),
		payeeRole.Validate(),
		movementType.Validate(),
	); err != nil {
		return nil, err
	}

	if amount.IsZero() || amount.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s must be positive", amount.String()))
	}

	return &Entry{
		id:               id,
		orderID:          orderID,
		payeeID:          payeeID,
		payeeRole:        payeeRole,
		movementType:     movementType,
		amount:           amount,
		settlementStatus: StatusSettled,
		createdAt:        time.Now().UTC(),
		isConstructed:    true,
	}, nil
}

// RestoreEntry reconstructs an entry from persistence.
func RestoreEntry(
	id, orderID, payeeID kernel.UUID,
	payeeRole PayeeRole,
	movementType MovementType,
	amount kernel.Money,
	settlementStatus SettlementStatus,
	createdAt time.Time,
) (*Entry, error) {
	entry, err := NewEntry(id, orderID, payeeID, payeeRole, movementType, amount)
	if err != nil {
		return nil, err
	}
	if err = settlementStatus.Validate(); err != nil {
		return nil, err
	}
	entry.settlementStatus = settlementStatus
	entry.createdAt = createdAt
	return entry, nil
}

// Validate ensures the Entry was created through a constructor.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID { return e.id }

// OrderID returns the order this movement belongs to.
func (e *Entry) OrderID() kernel.UUID { return e.orderID }

// PayeeID returns the account the movement applies to.
func (e *Entry) PayeeID() kernel.UUID { return e.payeeID }

// PayeeRole returns the kind of account.
func (e *Entry) PayeeRole() PayeeRole { return e.payeeRole }

// MovementType returns the movement classification.
func (e *Entry) MovementType() MovementType { return e.movementType }

// Amount returns the positive movement amount.
func (e *Entry) Amount() kernel.Money { return e.amount }

// SettlementStatus reports whether the movement's funds have been disbursed.
func (e *Entry) SettlementStatus() SettlementStatus { return e.settlementStatus }

// CreatedAt returns when the movement was recorded.
func (e *Entry) CreatedAt() time.Time { return e.createdAt }

// IsCredit reports whether the movement increases the payee's balance.
func (e *Entry) IsCredit() bool { return e.movementType != WithdrawalDebit }
