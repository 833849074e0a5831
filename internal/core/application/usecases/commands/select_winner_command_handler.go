package commands

import (
	"context"
	"errors"
	"log/slog"

	"freighthub/internal/core/domain/events"
	"freighthub/internal/core/domain/model/order"
	"freighthub/internal/core/ports"
	"freighthub/internal/pkg/errs"
	"freighthub/internal/pkg/orderlock"
)

// SelectWinnerCommandHandler handles manual winner selection by the customer.
// Selecting while the window is still open closes it early in the same
// serialized operation, so a concurrently firing timer observes the order
// already out of the open status and backs off.
type SelectWinnerCommandHandler struct {
	uowFactory UoWFactory
	locks      *orderlock.Registry
	scheduler  ports.WindowScheduler
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewSelectWinnerCommandHandler creates a handler for manual winner selection.
func NewSelectWinnerCommandHandler(
	uowFactory UoWFactory,
	locks *orderlock.Registry,
	scheduler ports.WindowScheduler,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) SelectWinnerCommandHandler {
	return SelectWinnerCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		scheduler:  scheduler,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the manual selection command.
// Returns ErrUnauthorized when the actor is not the order's customer,
// ErrInvalidState when the order is past selection, and ErrBidNotFound when
// the chosen bid does not belong to the order.
func (h *SelectWinnerCommandHandler) Handle(ctx context.Context, cmd SelectWinnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	evts, err := h.assign(ctx, cmd)
	if err != nil {
		return err
	}

	publishAll(ctx, h.publisher, h.logger, evts)
	return nil
}

// assign applies the manual selection under the order lock and returns the
// events to publish. The lock must be released before any notification I/O.
func (h *SelectWinnerCommandHandler) assign(
	ctx context.Context,
	cmd SelectWinnerCommand,
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

	selectedOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !selectedOrder.CustomerID().IsEqual(cmd.CustomerID()) {
		return nil, ErrUnauthorized
	}
	if selectedOrder.Status() != order.Open && selectedOrder.Status() != order.AwaitingSelection {
		return nil, ErrInvalidState
	}

	chosenBid, err := uow.BidRepository().Get(ctx, cmd.BidID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrBidNotFound
		}
		return nil, err
	}
	if !chosenBid.OrderID().IsEqual(cmd.OrderID()) {
		return nil, ErrBidNotFound
	}

	if selectedOrder.Status() == order.Open {
		if err = selectedOrder.CloseWindow(true); err != nil {
			return nil, err
		}
	}
	if err = selectedOrder.AssignWinner(chosenBid.CarrierID(), chosenBid.Price()); err != nil {
		return nil, err
	}

	allBids, err := uow.BidRepository().GetAllByOrder(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	customer, err := uow.ParticipantRepository().Get(ctx, selectedOrder.CustomerID())
	if err != nil {
		return nil, err
	}
	winner, err := uow.ParticipantRepository().Get(ctx, chosenBid.CarrierID())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, selectedOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.scheduler.Cancel(selectedOrder.ID())

	return selectionEvents(selectedOrder, allBids, customer, winner), nil
}
