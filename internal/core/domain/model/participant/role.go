package participant

import (
	"fmt"

	"freighthub/internal/pkg/errs"
)

// Role distinguishes the two sides of an order: the customer who posted it
// and the carriers who bid on it.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Customer posts orders, selects winners, confirms completion,
	// and may cancel while the order is open or in progress.
	Customer

	// Carrier bids on orders, confirms completion, and may cancel
	// an assignment it has won.
	Carrier
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Customer:    "customer",
		Carrier:     "carrier",
	}
}

// Validate checks that the role is Customer or Carrier.
func (r Role) Validate() error {
	if r != Customer && r != Carrier {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the lowercase role name, or "unknown" for invalid values.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// RoleFromString parses a role name as it appears in requests and storage.
func RoleFromString(s string) (Role, error) {
	switch s {
	case "customer":
		return Customer, nil
	case "carrier":
		return Carrier, nil
	default:
		return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%q is not a valid role", s),
		)
	}
}
