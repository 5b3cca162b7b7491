package kernel

import (
	"strings"

	"fulfillment/internal/pkg/errs"
)

// ErrZoneIsNotConstructed is returned when validating a zero-value Zone.
var ErrZoneIsNotConstructed = errs.NewValueIsRequiredError("Zone must be created via NewZone")

// Zone is a value object identifying a carrier service area. Zone codes are
// matched exactly when looking up carriers, so the constructor normalizes case
// and surrounding whitespace to keep "dhaka", " Dhaka " and "DHAKA" equal.
type Zone struct {
	code string
}

// NewZone creates a Zone from a raw zone code.
// The code is trimmed and upper-cased; empty codes are rejected.
func NewZone(code string) (Zone, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return Zone{}, errs.NewValueIsRequiredError("zone code")
	}
	return Zone{code: normalized}, nil
}

// Code returns the normalized zone code.
func (z Zone) Code() string {
	return z.code
}

// IsEqual reports whether two zones identify the same service area.
func (z Zone) IsEqual(other Zone) bool {
	return z.code == other.code
}

// String returns the normalized zone code.
func (z Zone) String() string {
	return z.code
}

// Validate returns ErrZoneIsNotConstructed for the zero value.
func (z Zone) Validate() error {
	if z.code == "" {
		return ErrZoneIsNotConstructed
	}
	return nil
}
