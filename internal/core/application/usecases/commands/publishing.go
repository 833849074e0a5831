package commands

import (
	"context"
	"log/slog"

	"freighthub/internal/core/domain/events"
	"freighthub/internal/core/domain/model/bid"
	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/core/domain/model/order"
	"freighthub/internal/core/domain/model/participant"
	"freighthub/internal/core/ports"
)

// publishAll delivers events after the owning transaction has committed and
// the order lock has been released; no handler blocks on notification I/O
// while holding an order's lock. One attempt per event; failures are logged
// and never surfaced to the caller, since domain state is already durable.
func publishAll(
	ctx context.Context,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	evts []events.NotificationEvent,
) {
	for _, evt := range evts {
		if err := publisher.Publish(ctx, evt); err != nil {
			logger.Error("failed to publish notification event",
				"kind", string(evt.Kind),
				"order_id", evt.OrderID.String(),
				"error", err)
		}
	}
}

// selectionEvents builds the notifications produced by winner assignment:
// WinnerSelected to the winning carrier and the customer with counterparty
// contacts, and NotSelected to every losing bidder.
func selectionEvents(
	ord *order.Order,
	allBids []*bid.Bid,
	customer *participant.Participant,
	winner *participant.Participant,
) []events.NotificationEvent {
	evts := []events.NotificationEvent{
		events.NewNotificationEvent(events.WinnerSelected, ord.ID(),
			[]kernel.UUID{winner.ID(), customer.ID()},
			map[string]string{
				events.PayloadCargo:         ord.Cargo(),
				events.PayloadAddress:       ord.DeliveryAddress(),
				events.PayloadPrice:         ord.WinningPrice().String(),
				events.PayloadCustomerPhone: customer.Phone(),
				events.PayloadCarrierPhone:  winner.Phone(),
			}),
	}

	losers := make([]kernel.UUID, 0, len(allBids))
	for _, b := range allBids {
		if !b.CarrierID().IsEqual(winner.ID()) {
			losers = append(losers, b.CarrierID())
		}
	}
	if len(losers) > 0 {
		evts = append(evts, events.NewNotificationEvent(events.NotSelected, ord.ID(), losers,
			map[string]string{
				events.PayloadCargo: ord.Cargo(),
			}))
	}

	return evts
}
