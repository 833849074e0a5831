// Package bid contains the Bid entity: one carrier's price offer for one
// order. At most one live bid exists per (order, carrier) pair; resubmission
// updates the price in place. The bid ledger around this entity freezes once
// the order's window closes, but bids stay visible for audit and
// re-selection after a carrier cancellation.
package bid

import (
	"errors"
	"time"

	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/pkg/errs"
)

var (
	// ErrBidIsNotConstructed is returned when a Bid instance was not created
	// through NewBid or RestoreBid.
	ErrBidIsNotConstructed = errors.New("Bid must be created via NewBid constructor")
)

// Bid is a carrier's current price offer for an order.
// Identity is the bid ID; uniqueness per (order, carrier) is enforced by the
// ledger. Price updates keep the original submission time, which serves as
// the first-come tie-breaker during automatic selection.
type Bid struct {
	id          kernel.UUID
	orderID     kernel.UUID
	carrierID   kernel.UUID
	price       kernel.Price
	submittedAt time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewBid creates a validated Bid submitted at the given instant.
func NewBid(
	id kernel.UUID,
	orderID kernel.UUID,
	carrierID kernel.UUID,
	price kernel.Price,
	submittedAt time.Time,
) (*Bid, error) {
	b := &Bid{isConstructed: true}

	if err := errors.Join(
		b.setID(id),
		b.setOrderID(orderID),
		b.setCarrierID(carrierID),
		b.setPrice(price),
		b.setSubmittedAt(submittedAt),
	); err != nil {
		return nil, err
	}

	b.updatedAt = submittedAt
	return b, nil
}

// RestoreBid reconstructs a Bid from persisted state.
func RestoreBid(
	id kernel.UUID,
	orderID kernel.UUID,
	carrierID kernel.UUID,
	price kernel.Price,
	submittedAt time.Time,
	updatedAt time.Time,
) (*Bid, error) {
	b, err := NewBid(id, orderID, carrierID, price, submittedAt)
	if err != nil {
		return nil, err
	}
	if updatedAt.Before(submittedAt) {
		return nil, errs.NewValueIsInvalidError("bid updated before submission")
	}
	b.updatedAt = updatedAt
	return b, nil
}

// Validate ensures the Bid instance was properly constructed.
func (b *Bid) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBidIsNotConstructed
	}
	return nil
}

// IsEqual compares two bids by their unique identifiers.
func (b *Bid) IsEqual(other *Bid) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the bid's unique identifier.
func (b *Bid) ID() kernel.UUID {
	return b.id
}

// OrderID returns the order this bid targets.
func (b *Bid) OrderID() kernel.UUID {
	return b.orderID
}

// CarrierID returns the bidding carrier's identity.
func (b *Bid) CarrierID() kernel.UUID {
	return b.carrierID
}

// Price returns the current offered price.
func (b *Bid) Price() kernel.Price {
	return b.price
}

// SubmittedAt returns when the carrier first bid on this order.
// Price updates do not move it.
func (b *Bid) SubmittedAt() time.Time {
	return b.submittedAt
}

// UpdatedAt returns when the price was last changed.
func (b *Bid) UpdatedAt() time.Time {
	return b.updatedAt
}

// UpdatePrice replaces the offered price in place, keeping the original
// submission time. The ledger only calls this while the order is open.
func (b *Bid) UpdatePrice(price kernel.Price, at time.Time) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if at.Before(b.submittedAt) {
		return errs.NewValueIsInvalidError("bid update time precedes submission")
	}

	b.price = price
	b.updatedAt = at
	return nil
}

func (b *Bid) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Bid) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.orderID = id
	return nil
}

func (b *Bid) setCarrierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.carrierID = id
	return nil
}

func (b *Bid) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	b.price = price
	return nil
}

func (b *Bid) setSubmittedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("submission time")
	}
	b.submittedAt = at
	return nil
}
