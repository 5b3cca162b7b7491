package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object for monetary amounts. It wraps shopspring/decimal so
// that price breakdowns and ledger sums are exact; float arithmetic is never
// used for money.
//
// Money may carry a negative amount (ledger debits and compensating entries),
// but the constructors for prices reject negatives. The zero value is a valid
// zero amount, which keeps Money usable as an embedded field in DTOs.
//
// Example:
//
//	unit, _ := kernel.NewMoneyFromString("100.00")
//	total := unit.MulInt(3)                 // 300.00
//	commission := total.Fraction(tenPct)    // 30.00
//	seller := total.Sub(commission)         // 270.00
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a non-negative Money from a decimal amount.
// Amounts are normalized to two decimal places.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount.Round(2)}, nil
}

// NewMoneyFromString parses a decimal string such as "100.00" into Money.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// ZeroMoney returns a zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts. The result may be negative.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// MulInt returns the amount multiplied by a whole quantity.
func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// Fraction returns the given fraction of the amount, rounded to two decimal
// places. Used for commission splits.
func (m Money) Fraction(f decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(f).Round(2)}
}

// Negate returns the amount with its sign flipped.
// Ledger debits and refund offsets are produced this way.
func (m Money) Negate() Money {
	return Money{amount: m.amount.Neg()}
}

// IsEqual reports whether two amounts are numerically equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Decimal returns the underlying decimal value for persistence mapping.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
