package commands

import "errors"

// Application-level errors shared by command handlers.
// Handlers return these directly so the transport layer can map them to
// response codes without inspecting domain internals.
var (
	// ErrInvalidState is returned when the order's current status does not
	// permit the requested operation.
	ErrInvalidState = errors.New("order is not in a valid state for this operation")

	// ErrWindowClosed is returned when a bid arrives after the bidding
	// window has closed.
	ErrWindowClosed = errors.New("bidding window is closed")

	// ErrNotEligible is returned when a carrier bids on an order whose
	// truck type it does not operate.
	ErrNotEligible = errors.New("carrier is not eligible for this order's truck type")

	// ErrBidNotFound is returned when a selected bid does not exist or
	// belongs to another order.
	ErrBidNotFound = errors.New("bid not found for this order")

	// ErrUnauthorized is returned when the acting participant has no right
	// to perform the operation on this order.
	ErrUnauthorized = errors.New("participant is not authorized for this operation")
)
