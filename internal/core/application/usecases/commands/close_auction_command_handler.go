package commands

import (
	"context"
	"log/slog"

	"freighthub/internal/core/domain/events"
	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/core/domain/model/order"
	"freighthub/internal/core/domain/services"
	"freighthub/internal/core/ports"
	"freighthub/internal/pkg/orderlock"
)

// CloseAuctionCommandHandler closes an order's bidding window when it expires.
// With no bids the order terminates in no_offers. With bids the order either
// moves to awaiting_selection for a manual choice, or, when automatic
// selection is enabled, the winner is assigned in the same operation.
type CloseAuctionCommandHandler struct {
	uowFactory UoWFactory
	locks      *orderlock.Registry
	scheduler  ports.WindowScheduler
	publisher  ports.EventPublisher
	logger     *slog.Logger
	selector   services.WinnerSelector
	autoSelect bool
}

// NewCloseAuctionCommandHandler creates a handler for window expiry.
// autoSelect enables automatic lowest-price selection at close.
func NewCloseAuctionCommandHandler(
	uowFactory UoWFactory,
	locks *orderlock.Registry,
	scheduler ports.WindowScheduler,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	autoSelect bool,
) CloseAuctionCommandHandler {
	return CloseAuctionCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		scheduler:  scheduler,
		publisher:  publisher,
		logger:     logger,
		selector:   services.NewWinnerSelector(),
		autoSelect: autoSelect,
	}
}

// Handle processes the window close command.
// System-issued closes are a no-op when the order is no longer open: the
// timer may fire after a manual selection or a cancellation already closed
// the window. Customer-initiated closes instead report ErrInvalidState, and
// always apply the automatic selection policy regardless of configuration.
func (h *CloseAuctionCommandHandler) Handle(ctx context.Context, cmd CloseAuctionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	evts, err := h.close(ctx, cmd)
	if err != nil {
		return err
	}

	publishAll(ctx, h.publisher, h.logger, evts)
	return nil
}

// close applies the window close under the order lock and returns the
// events to publish. The lock must be released before any notification I/O.
func (h *CloseAuctionCommandHandler) close(
	ctx context.Context,
	cmd CloseAuctionCommand,
) ([]events.NotificationEvent, error) {
	unlock := h.locks.Lock(cmd.OrderID())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	expiredOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if cmd.ByCustomer() && !expiredOrder.CustomerID().IsEqual(cmd.CustomerID()) {
		return nil, ErrUnauthorized
	}
	if expiredOrder.Status() != order.Open {
		if cmd.ByCustomer() {
			return nil, ErrInvalidState
		}
		return nil, nil
	}

	allBids, err := uow.BidRepository().GetAllByOrder(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = expiredOrder.CloseWindow(len(allBids) > 0); err != nil {
		return nil, err
	}

	var evts []events.NotificationEvent
	switch {
	case len(allBids) == 0:
		evts = append(evts, events.NewNotificationEvent(events.NoBids, expiredOrder.ID(),
			[]kernel.UUID{expiredOrder.CustomerID()},
			map[string]string{
				events.PayloadCargo: expiredOrder.Cargo(),
			}))

	case h.autoSelect || cmd.ByCustomer():
		winningBid, selectErr := h.selector.Select(allBids)
		if selectErr != nil {
			return nil, selectErr
		}
		if err = expiredOrder.AssignWinner(winningBid.CarrierID(), winningBid.Price()); err != nil {
			return nil, err
		}

		customer, pErr := uow.ParticipantRepository().Get(ctx, expiredOrder.CustomerID())
		if pErr != nil {
			return nil, pErr
		}
		winner, pErr := uow.ParticipantRepository().Get(ctx, winningBid.CarrierID())
		if pErr != nil {
			return nil, pErr
		}
		evts = append(evts, selectionEvents(expiredOrder, allBids, customer, winner)...)

	default:
		evts = append(evts, events.NewNotificationEvent(events.SelectionRequired, expiredOrder.ID(),
			[]kernel.UUID{expiredOrder.CustomerID()},
			map[string]string{
				events.PayloadCargo: expiredOrder.Cargo(),
			}))
	}

	if err = uow.OrderRepository().Update(ctx, expiredOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.scheduler.Cancel(expiredOrder.ID())

	return evts, nil
}
