package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"freighthub/internal/core/domain/model/kernel"
)

// WindowTimer arms one in-process timer per open bidding window and fires the
// close operation when the deadline passes. Timer state is process-local and
// rebuilt from persisted deadlines at startup; the sweep job backstops any
// timer lost in between.
//
// The close function is bound after construction because the close handler
// itself depends on this scheduler for cancellation.
type WindowTimer struct {
	timers  sync.Map // kernel.UUID -> *time.Timer
	closeFn func(ctx context.Context, orderID kernel.UUID) error
	logger  *slog.Logger
}

// NewWindowTimer creates an unbound window timer.
// BindCloser must be called before any timer fires.
func NewWindowTimer(logger *slog.Logger) *WindowTimer {
	return &WindowTimer{
		logger: logger.With("component", "window_timer"),
	}
}

// BindCloser attaches the close operation invoked when a window expires.
func (t *WindowTimer) BindCloser(closeFn func(ctx context.Context, orderID kernel.UUID) error) {
	t.closeFn = closeFn
}

// Schedule arms a close timer for the order's bidding window.
// Scheduling the same order again replaces the previous timer. Deadlines
// already in the past fire immediately.
func (t *WindowTimer) Schedule(orderID kernel.UUID, closeAt time.Time) {
	delay := time.Until(closeAt)
	if delay < 0 {
		delay = 0
	}

	timer := time.AfterFunc(delay, func() {
		t.fire(orderID)
	})

	if previous, loaded := t.timers.Swap(orderID, timer); loaded {
		previous.(*time.Timer).Stop()
	}
}

// Cancel disarms the order's close timer, if one is pending.
func (t *WindowTimer) Cancel(orderID kernel.UUID) {
	if timer, loaded := t.timers.LoadAndDelete(orderID); loaded {
		timer.(*time.Timer).Stop()
	}
}

// Stop disarms every pending timer. Used on shutdown.
func (t *WindowTimer) Stop() {
	t.timers.Range(func(key, value any) bool {
		value.(*time.Timer).Stop()
		t.timers.Delete(key)
		return true
	})
}

func (t *WindowTimer) fire(orderID kernel.UUID) {
	t.timers.Delete(orderID)

	if t.closeFn == nil {
		t.logger.Error("window timer fired without a bound close operation",
			"order_id", orderID.String())
		return
	}

	ctx := context.Background()
	if err := t.closeFn(ctx, orderID); err != nil {
		// The sweep retries on its next pass; the deadline is persisted.
		t.logger.ErrorContext(ctx, "Window close failed", "order_id", orderID.String(), "error", err)
	}
}
