package order

import (
	"errors"
	"fmt"
	"time"

	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/core/domain/model/participant"
	"freighthub/internal/core/domain/model/vehicle"
	"freighthub/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Cancellation records who terminated or reopened an order, when, and why.
// It is retained for audit even when a carrier cancellation reopens selection.
type Cancellation struct {
	By     kernel.UUID
	Role   participant.Role
	Reason string
	At     time.Time
}

// Order represents a shipment request subject to competitive bidding.
// It is the aggregate root owning the canonical status, winner assignment,
// and confirmation flags; every other component mutates it only through the
// transition methods defined here.
//
// Order maintains these invariants:
//   - winner and winning price are set together or not at all
//   - a winner exists exactly while status is in_progress or closed
//   - confirmation flags are true only while status is in_progress or closed,
//     and are never reset once closed
//   - the bidding window closes strictly after it opens
//   - status transitions follow the state machine in Status
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID

	truckType       vehicle.TruckType
	cargo           string
	pickupAddress   string
	deliveryAddress string
	deliveryDate    string

	status        Status
	windowOpenAt  time.Time
	windowCloseAt time.Time

	winnerID     *kernel.UUID
	winningPrice *kernel.Price

	customerConfirmed bool
	carrierConfirmed  bool

	cancellation *Cancellation

	isConstructed bool
}

// NewOrder creates a new Order in the open status with a running bidding window.
//
// Validation rules:
//   - id and customerID must be valid UUIDs
//   - truckType must belong to the vehicle taxonomy
//   - cargo and deliveryAddress must be non-empty
//   - windowCloseAt must be after windowOpenAt
//
// pickupAddress and deliveryDate are opaque optional text.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	truckType vehicle.TruckType,
	cargo string,
	pickupAddress string,
	deliveryAddress string,
	deliveryDate string,
	windowOpenAt time.Time,
	windowCloseAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Open,
		pickupAddress: pickupAddress,
		deliveryDate:  deliveryDate,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setTruckType(truckType),
		o.setCargo(cargo),
		o.setDeliveryAddress(deliveryAddress),
		o.setWindow(windowOpenAt, windowCloseAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state, re-validating the
// aggregate invariants. Used by repositories; never by application code.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	truckType vehicle.TruckType,
	cargo string,
	pickupAddress string,
	deliveryAddress string,
	deliveryDate string,
	status Status,
	windowOpenAt time.Time,
	windowCloseAt time.Time,
	winnerID *kernel.UUID,
	winningPrice *kernel.Price,
	customerConfirmed bool,
	carrierConfirmed bool,
	cancellation *Cancellation,
) (*Order, error) {
	o, err := NewOrder(
		id, customerID, truckType, cargo,
		pickupAddress, deliveryAddress, deliveryDate,
		windowOpenAt, windowCloseAt,
	)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status
	o.winnerID = winnerID
	o.winningPrice = winningPrice
	o.customerConfirmed = customerConfirmed
	o.carrierConfirmed = carrierConfirmed
	o.cancellation = cancellation

	if err = o.validateWinnerInvariants(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identity of the customer who posted the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// TruckType returns the vehicle category tag required for this shipment.
func (o *Order) TruckType() vehicle.TruckType {
	return o.truckType
}

// Cargo returns the cargo description.
func (o *Order) Cargo() string {
	return o.cargo
}

// PickupAddress returns the opaque pickup address text, possibly empty.
func (o *Order) PickupAddress() string {
	return o.pickupAddress
}

// DeliveryAddress returns the opaque delivery address text.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// DeliveryDate returns the opaque requested delivery date text, possibly empty.
func (o *Order) DeliveryDate() string {
	return o.deliveryDate
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// WindowOpenAt returns the instant bidding opened.
func (o *Order) WindowOpenAt() time.Time {
	return o.windowOpenAt
}

// WindowCloseAt returns the bidding deadline.
func (o *Order) WindowCloseAt() time.Time {
	return o.windowCloseAt
}

// IsWindowExpired reports whether the bidding deadline has passed at the
// given instant. It says nothing about status; an expired order may already
// have left the open state.
func (o *Order) IsWindowExpired(now time.Time) bool {
	return !now.Before(o.windowCloseAt)
}

// Winner returns the assigned carrier's ID, or nil when no winner is set.
func (o *Order) Winner() *kernel.UUID {
	return o.winnerID
}

// WinningPrice returns the selected bid's price, or nil when no winner is set.
func (o *Order) WinningPrice() *kernel.Price {
	return o.winningPrice
}

// CustomerConfirmed reports whether the customer confirmed completion.
func (o *Order) CustomerConfirmed() bool {
	return o.customerConfirmed
}

// CarrierConfirmed reports whether the assigned carrier confirmed completion.
func (o *Order) CarrierConfirmed() bool {
	return o.carrierConfirmed
}

// Cancellation returns the most recent cancellation record, or nil.
// A record may exist on a non-cancelled order: carrier cancellation reopens
// selection but is still recorded for audit.
func (o *Order) Cancellation() *Cancellation {
	return o.cancellation
}

// CloseWindow ends the bidding window. With at least one bid the order moves
// to awaiting_selection; without bids it terminates in no_offers.
//
// Fails with ErrInvalidTransition unless the order is open. Callers that
// need idempotent timer semantics (a fire racing another close) check the
// status first and absorb the duplicate.
func (o *Order) CloseWindow(hasBids bool) error {
	newStatus, err := o.status.CloseWindow(hasBids)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignWinner records the selected carrier and price and moves the order to
// in_progress. Fails with ErrInvalidTransition unless the order is
// awaiting_selection. Status, winner, and price change together or not at all.
func (o *Order) AssignWinner(carrierID kernel.UUID, price kernel.Price) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}
	if err := price.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.AssignWinner()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.winnerID = &carrierID
	o.winningPrice = &price
	return nil
}

// Confirm raises the confirmation flag for the given role.
//
// Returns changed=false when the flag was already true (an absorbed no-op,
// including any confirmation attempt on an already closed order). When the
// second flag is raised the order closes in the same call: there is no state
// where both flags are true and the status is still in_progress.
//
// Fails with ErrInvalidTransition when the order is neither in_progress nor
// closed, or when role is not a party role.
func (o *Order) Confirm(role participant.Role) (changed bool, closed bool, err error) {
	if err = role.Validate(); err != nil {
		return false, false, err
	}

	// A closed order has both flags raised; repeating a confirmation is a no-op.
	if o.status == Closed {
		return false, false, nil
	}

	if o.status != InProgress {
		return false, false, fmt.Errorf("%w: cannot confirm from %s", ErrInvalidTransition, o.status)
	}

	switch role {
	case participant.Customer:
		if o.customerConfirmed {
			return false, false, nil
		}
		o.customerConfirmed = true
	case participant.Carrier:
		if o.carrierConfirmed {
			return false, false, nil
		}
		o.carrierConfirmed = true
	default:
		return false, false, fmt.Errorf("%w: role %s cannot confirm", ErrInvalidTransition, role)
	}

	if o.customerConfirmed && o.carrierConfirmed {
		newStatus, closeErr := o.status.Close()
		if closeErr != nil {
			return false, false, closeErr
		}
		o.status = newStatus
		return true, true, nil
	}

	return true, false, nil
}

// CancelByCustomer terminates the order. Allowed from open and in_progress;
// the winner assignment and all bids stay untouched for audit.
// reason must be non-empty and is validated before any state change.
func (o *Order) CancelByCustomer(reason string, at time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancellation reason")
	}

	newStatus, err := o.status.CancelByCustomer()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancellation = &Cancellation{
		By:     o.customerID,
		Role:   participant.Customer,
		Reason: reason,
		At:     at,
	}
	return nil
}

// CancelByCarrier reverts an in_progress order to awaiting_selection:
// winner and winning price are cleared and both confirmation flags reset, so
// the customer can select again from the retained bids. The cancellation is
// recorded for audit. reason must be non-empty.
//
// The caller is responsible for verifying the actor is the assigned carrier.
func (o *Order) CancelByCarrier(reason string, at time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancellation reason")
	}

	newStatus, err := o.status.Reopen()
	if err != nil {
		return err
	}

	formerWinner := *o.winnerID

	o.status = newStatus
	o.winnerID = nil
	o.winningPrice = nil
	o.customerConfirmed = false
	o.carrierConfirmed = false
	o.cancellation = &Cancellation{
		By:     formerWinner,
		Role:   participant.Carrier,
		Reason: reason,
		At:     at,
	}
	return nil
}

func (o *Order) validateWinnerInvariants() error {
	hasWinner := o.winnerID != nil
	hasPrice := o.winningPrice != nil

	if hasWinner != hasPrice {
		return errs.NewValueIsInvalidError("winner and winning price must be set together")
	}
	if hasWinner {
		if err := o.winnerID.Validate(); err != nil {
			return err
		}
		if err := o.winningPrice.Validate(); err != nil {
			return err
		}
	}

	needsWinner := o.status == InProgress || o.status == Closed
	if needsWinner && !hasWinner {
		return errs.NewValueIsInvalidErrorWithCause(
			"winner",
			fmt.Errorf("status %s requires an assigned winner", o.status),
		)
	}
	if !needsWinner && hasWinner {
		return errs.NewValueIsInvalidErrorWithCause(
			"winner",
			fmt.Errorf("status %s cannot have an assigned winner", o.status),
		)
	}

	if (o.customerConfirmed || o.carrierConfirmed) && !needsWinner {
		return errs.NewValueIsInvalidErrorWithCause(
			"confirmations",
			fmt.Errorf("status %s cannot carry confirmation flags", o.status),
		)
	}
	if o.status == Closed && (!o.customerConfirmed || !o.carrierConfirmed) {
		return errs.NewValueIsInvalidError("closed order requires both confirmations")
	}

	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setTruckType(t vehicle.TruckType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	o.truckType = t
	return nil
}

func (o *Order) setCargo(cargo string) error {
	if cargo == "" {
		return errs.NewValueIsRequiredError("cargo description")
	}
	o.cargo = cargo
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setWindow(openAt, closeAt time.Time) error {
	if openAt.IsZero() || closeAt.IsZero() {
		return errs.NewValueIsRequiredError("bidding window")
	}
	if !closeAt.After(openAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"bidding window",
			fmt.Errorf("close %s is not after open %s", closeAt, openAt),
		)
	}
	o.windowOpenAt = openAt
	o.windowCloseAt = closeAt
	return nil
}
