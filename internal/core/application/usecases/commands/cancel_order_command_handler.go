package commands

import (
	"context"
	"log/slog"
	"time"

	"freighthub/internal/core/domain/events"
	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/core/domain/model/order"
	"freighthub/internal/core/ports"
	"freighthub/internal/pkg/orderlock"
)

// CancelOrderCommandHandler handles role-aware order cancellation.
// Customers terminate the order from any non-terminal status. A winning
// carrier cancels only its own assignment, which clears the winner and
// returns the order to awaiting_selection so the customer can pick again
// from the remaining bids.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	locks      *orderlock.Registry
	scheduler  ports.WindowScheduler
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for cancellation operations.
func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	locks *orderlock.Registry,
	scheduler ports.WindowScheduler,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		scheduler:  scheduler,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the cancellation command.
// Returns ErrUnauthorized when the actor is neither the order's customer nor
// its winning carrier; status restrictions surface as domain transition errors.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	evts, err := h.cancel(ctx, cmd)
	if err != nil {
		return err
	}

	publishAll(ctx, h.publisher, h.logger, evts)
	return nil
}

// cancel applies the cancellation under the order lock and returns the
// events to publish. The lock must be released before any notification I/O.
func (h *CancelOrderCommandHandler) cancel(
	ctx context.Context,
	cmd CancelOrderCommand,
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

	cancelledOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	wasOpen := cancelledOrder.Status() == order.Open
	formerWinner := cancelledOrder.Winner()

	var evts []events.NotificationEvent
	switch {
	case cancelledOrder.CustomerID().IsEqual(cmd.ParticipantID()):
		if err = cancelledOrder.CancelByCustomer(cmd.Reason(), now); err != nil {
			return nil, err
		}

		recipients, rErr := h.counterparties(ctx, uow, cancelledOrder, formerWinner)
		if rErr != nil {
			return nil, rErr
		}
		if len(recipients) > 0 {
			evts = append(evts, events.NewNotificationEvent(events.OrderCancelled, cancelledOrder.ID(),
				recipients,
				map[string]string{
					events.PayloadCargo:        cancelledOrder.Cargo(),
					events.PayloadCancelledBy:  "customer",
					events.PayloadCancelReason: cmd.Reason(),
				}))
		}

	case formerWinner != nil && formerWinner.IsEqual(cmd.ParticipantID()):
		if err = cancelledOrder.CancelByCarrier(cmd.Reason(), now); err != nil {
			return nil, err
		}

		evts = append(evts,
			events.NewNotificationEvent(events.OrderReopened, cancelledOrder.ID(),
				[]kernel.UUID{cancelledOrder.CustomerID()},
				map[string]string{
					events.PayloadCargo:        cancelledOrder.Cargo(),
					events.PayloadCancelledBy:  "carrier",
					events.PayloadCancelReason: cmd.Reason(),
				}),
			events.NewNotificationEvent(events.OrderCancelled, cancelledOrder.ID(),
				[]kernel.UUID{*formerWinner},
				map[string]string{
					events.PayloadCargo:        cancelledOrder.Cargo(),
					events.PayloadCancelledBy:  "carrier",
					events.PayloadCancelReason: cmd.Reason(),
				}))

	default:
		return nil, ErrUnauthorized
	}

	if err = uow.OrderRepository().Update(ctx, cancelledOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if wasOpen {
		h.scheduler.Cancel(cancelledOrder.ID())
	}

	return evts, nil
}

// counterparties resolves who to notify about a customer cancellation: the
// winning carrier when one is assigned, otherwise every live bidder.
func (h *CancelOrderCommandHandler) counterparties(
	ctx context.Context,
	uow UoW,
	cancelledOrder *order.Order,
	formerWinner *kernel.UUID,
) ([]kernel.UUID, error) {
	if formerWinner != nil {
		return []kernel.UUID{*formerWinner}, nil
	}

	allBids, err := uow.BidRepository().GetAllByOrder(ctx, cancelledOrder.ID())
	if err != nil {
		return nil, err
	}

	recipients := make([]kernel.UUID, 0, len(allBids))
	for _, b := range allBids {
		recipients = append(recipients, b.CarrierID())
	}
	return recipients, nil
}
