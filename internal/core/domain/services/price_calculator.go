package services

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PriceCalculator is a domain service that splits an order total between the
// platform and the seller at a fixed commission fraction.
//
// The split is exact by construction: the commission is the rounded fraction
// of the total, and the seller amount is the remainder, so the two always sum
// back to the total regardless of rounding.
//
// Example usage:
//
//	calc, _ := services.NewPriceCalculator(decimal.NewFromFloat(0.10))
//	breakdown, _ := calc.Split(total) // commission 10%, seller the rest
type PriceCalculator struct {
	commissionFraction decimal.Decimal
}

// NewPriceCalculator creates a calculator with the given commission fraction.
// The fraction must be in the half-open interval [0, 1).
func NewPriceCalculator(commissionFraction decimal.Decimal) (PriceCalculator, error) {
	if commissionFraction.IsNegative() || commissionFraction.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return PriceCalculator{}, errs.NewValueIsOutOfRangeError(
			"commissionFraction", commissionFraction.String(), "0", "1")
	}
	return PriceCalculator{commissionFraction: commissionFraction}, nil
}

// NewPriceCalculatorFromPercent creates a calculator from a whole percentage,
// such as 10 for a ten percent commission.
func NewPriceCalculatorFromPercent(percent int) (PriceCalculator, error) {
	if percent < 0 || percent >= 100 {
		return PriceCalculator{}, errs.NewValueIsOutOfRangeError("percent", percent, 0, 99)
	}
	return NewPriceCalculator(decimal.NewFromInt(int64(percent)).Div(decimal.NewFromInt(100)))
}

// Split computes the commission/seller breakdown of a total price.
func (c PriceCalculator) Split(total kernel.Money) (order.PriceBreakdown, error) {
	if total.IsNegative() {
		return order.PriceBreakdown{}, errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%s is negative", total.String()))
	}

	commission := total.Fraction(c.commissionFraction)
	seller := total.Sub(commission)

	return order.NewPriceBreakdown(total, commission, seller)
}
