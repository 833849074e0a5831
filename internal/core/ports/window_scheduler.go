package ports

import (
	"time"

	"freighthub/internal/core/domain/model/kernel"
)

// WindowScheduler manages the deferred closing of bidding windows.
// One timer exists per open order; the periodic sweep acts as a
// backstop for timers lost across process restarts.
type WindowScheduler interface {
	// Schedule arms a close timer for the order's bidding window.
	// Scheduling the same order again replaces the previous timer.
	Schedule(orderID kernel.UUID, closeAt time.Time)

	// Cancel disarms the order's close timer if one is pending.
	// Cancelling an unknown order is a no-op.
	Cancel(orderID kernel.UUID)
}
