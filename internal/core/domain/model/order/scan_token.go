package order

import (
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrScanTokenIsNotConstructed is returned when validating a zero-value ScanToken.
var ErrScanTokenIsNotConstructed = errs.NewValueIsRequiredError("ScanToken must be created via NewScanToken or ScanTokenFromString")

// ScanToken is the opaque identifier printed as the order's QR code. Scanning
// it in the physical world advances the order, so the token acts as a bearer
// credential: it is random (UUID v4), unique per order, and immutable once
// generated.
type ScanToken struct {
	value string
}

// NewScanToken generates a fresh unguessable token.
func NewScanToken() ScanToken {
	return ScanToken{value: uuid.NewString()}
}

// ScanTokenFromString reconstructs a token from its stored representation.
// Returns an error for anything that is not a well-formed token.
func ScanTokenFromString(s string) (ScanToken, error) {
	if _, err := uuid.Parse(s); err != nil {
		return ScanToken{}, errs.NewValueIsInvalidErrorWithCause("scan token", err)
	}
	return ScanToken{value: s}, nil
}

// String returns the token's textual form, as encoded into the QR code.
func (t ScanToken) String() string {
	return t.value
}

// IsEqual reports whether two tokens are identical.
func (t ScanToken) IsEqual(other ScanToken) bool {
	return t.value == other.value
}

// Validate returns ErrScanTokenIsNotConstructed for the zero value.
func (t ScanToken) Validate() error {
	if t.value == "" {
		return ErrScanTokenIsNotConstructed
	}
	return nil
}
