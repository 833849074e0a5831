package kernel

import (
	"errors"
	"fmt"

	"freighthub/internal/pkg/errs"
)

// ErrPriceIsNotConstructed indicates that a Price was not created through NewPrice.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("Price must be created via NewPrice")

// ErrInvalidPrice indicates a zero or negative price amount.
var ErrInvalidPrice = errors.New("price must be greater than zero")

// Price is a value object representing a carrier's price offer in whole
// currency units. A valid Price is always strictly positive; the zero value
// is invalid and only obtainable by bypassing the constructor.
//
// Price is immutable. Comparison helpers are provided so selection logic
// never inspects the raw amount directly.
//
// Example:
//
//	price, err := kernel.NewPrice(15000)
//	if err != nil {
//	    // amount was not positive
//	}
type Price struct {
	amount        int64
	isConstructed bool
}

// NewPrice creates a Price from a positive amount in whole currency units.
// Returns an error if amount is zero or negative.
func NewPrice(amount int64) (Price, error) {
	if amount <= 0 {
		return Price{}, fmt.Errorf("%w: %w: %d is not greater than 0",
			errs.ErrValueIsInvalid, ErrInvalidPrice, amount)
	}
	return Price{amount: amount, isConstructed: true}, nil
}

// Amount returns the price amount in whole currency units.
func (p Price) Amount() int64 {
	return p.amount
}

// IsLess reports whether p is strictly lower than other.
func (p Price) IsLess(other Price) bool {
	return p.amount < other.amount
}

// IsEqual reports whether two prices carry the same amount.
func (p Price) IsEqual(other Price) bool {
	return p.amount == other.amount
}

// String returns the amount in decimal form, for logging and payloads.
func (p Price) String() string {
	return fmt.Sprintf("%d", p.amount)
}

// Validate returns ErrPriceIsNotConstructed for a zero-value Price.
func (p Price) Validate() error {
	if !p.isConstructed {
		return ErrPriceIsNotConstructed
	}
	return nil
}
