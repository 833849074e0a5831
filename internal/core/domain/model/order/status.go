package order

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned for any lifecycle transition not allowed
// from the order's current status. The wrapped message names the attempted
// transition and the current status.
var ErrInvalidTransition = errors.New("invalid order transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow
// the bidding workflow described in the package documentation.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status: the bidding window is running and
	// carriers may submit or update bids.
	Open

	// AwaitingSelection means the window has closed with at least one bid
	// and the customer (or the automatic policy) has yet to pick a winner.
	// Orders also return here when an assigned carrier cancels.
	AwaitingSelection

	// NoOffers is a terminal status: the window closed without a single bid.
	NoOffers

	// InProgress means a winner has been assigned and the shipment is
	// being executed.
	InProgress

	// Closed is a terminal status: both parties confirmed completion.
	Closed

	// Cancelled is a terminal status: the customer cancelled the order.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "unknown",
		Open:              "open",
		AwaitingSelection: "awaiting_selection",
		NoOffers:          "no_offers",
		InProgress:        "in_progress",
		Closed:            "closed",
		Cancelled:         "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:              "open",
		AwaitingSelection: "awaiting_selection",
		NoOffers:          "no_offers",
		InProgress:        "in_progress",
		Closed:            "closed",
		Cancelled:         "cancelled",
	}
}

// Validate checks if the Status value belongs to the closed set.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid status", ErrInvalidTransition, s)
	}
	return nil
}

// String returns the snake_case status name.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a persisted or displayed status name.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q is not a valid status", ErrInvalidTransition, s)
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == NoOffers || s == Closed || s == Cancelled
}

// CloseWindow transitions an open order out of bidding:
// to AwaitingSelection when at least one bid exists, NoOffers otherwise.
//
// Only Open orders can close their window; everything else fails with
// ErrInvalidTransition. Idempotent absorption of duplicate timer fires is
// the caller's concern: the state machine reports every invalid attempt.
func (s Status) CloseWindow(hasBids bool) (Status, error) {
	if s != Open {
		return 0, fmt.Errorf("%w: cannot close window from %s", ErrInvalidTransition, s)
	}
	if hasBids {
		return AwaitingSelection, nil
	}
	return NoOffers, nil
}

// AssignWinner transitions AwaitingSelection to InProgress.
func (s Status) AssignWinner() (Status, error) {
	if s != AwaitingSelection {
		return 0, fmt.Errorf("%w: cannot assign winner from %s", ErrInvalidTransition, s)
	}
	return InProgress, nil
}

// Close transitions InProgress to Closed. Reached only when both
// confirmation flags are raised.
func (s Status) Close() (Status, error) {
	if s != InProgress {
		return 0, fmt.Errorf("%w: cannot close from %s", ErrInvalidTransition, s)
	}
	return Closed, nil
}

// CancelByCustomer transitions Open or InProgress to the terminal Cancelled.
func (s Status) CancelByCustomer() (Status, error) {
	if s != Open && s != InProgress {
		return 0, fmt.Errorf("%w: cannot cancel from %s", ErrInvalidTransition, s)
	}
	return Cancelled, nil
}

// Reopen transitions InProgress back to AwaitingSelection.
// Used when the assigned carrier cancels: the winner is cleared and the
// customer may select again from the retained bids.
func (s Status) Reopen() (Status, error) {
	if s != InProgress {
		return 0, fmt.Errorf("%w: cannot reopen from %s", ErrInvalidTransition, s)
	}
	return AwaitingSelection, nil
}
