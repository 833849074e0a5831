package commands

import (
	"context"
	"log/slog"

	"freighthub/internal/core/domain/events"
	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/core/domain/model/participant"
	"freighthub/internal/core/ports"
	"freighthub/internal/pkg/orderlock"
)

// ConfirmCompletionCommandHandler records completion confirmations.
// Each confirmation notifies the other party; the second one also closes
// the order and announces the closure to both. Confirming twice, or after
// the order has closed, is a no-op.
type ConfirmCompletionCommandHandler struct {
	uowFactory OrderUoWFactory
	locks      *orderlock.Registry
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewConfirmCompletionCommandHandler creates a handler for completion
// confirmations.
func NewConfirmCompletionCommandHandler(
	uowFactory OrderUoWFactory,
	locks *orderlock.Registry,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) ConfirmCompletionCommandHandler {
	return ConfirmCompletionCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the confirmation command.
// Returns ErrUnauthorized when the actor is neither the order's customer nor
// its winning carrier.
func (h *ConfirmCompletionCommandHandler) Handle(ctx context.Context, cmd ConfirmCompletionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	evts, err := h.confirm(ctx, cmd)
	if err != nil {
		return err
	}

	publishAll(ctx, h.publisher, h.logger, evts)
	return nil
}

// confirm applies the confirmation under the order lock and returns the
// events to publish. The lock must be released before any notification I/O.
func (h *ConfirmCompletionCommandHandler) confirm(
	ctx context.Context,
	cmd ConfirmCompletionCommand,
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

	confirmedOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	var role participant.Role
	switch {
	case confirmedOrder.CustomerID().IsEqual(cmd.ParticipantID()):
		role = participant.Customer
	case confirmedOrder.Winner() != nil && confirmedOrder.Winner().IsEqual(cmd.ParticipantID()):
		role = participant.Carrier
	default:
		return nil, ErrUnauthorized
	}

	changed, closed, err := confirmedOrder.Confirm(role)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, nil
	}

	if err = uow.OrderRepository().Update(ctx, confirmedOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	customerID := confirmedOrder.CustomerID()
	carrierID := *confirmedOrder.Winner()

	other := carrierID
	if role == participant.Carrier {
		other = customerID
	}

	// Every confirmation tells the other party; the closing one additionally
	// announces the joint closure to both.
	evts := []events.NotificationEvent{
		events.NewNotificationEvent(events.PartyConfirmed, confirmedOrder.ID(),
			[]kernel.UUID{other},
			map[string]string{
				events.PayloadCargo:       confirmedOrder.Cargo(),
				events.PayloadConfirmedBy: role.String(),
			}),
	}
	if closed {
		evts = append(evts, events.NewNotificationEvent(events.OrderClosed, confirmedOrder.ID(),
			[]kernel.UUID{customerID, carrierID},
			map[string]string{
				events.PayloadCargo: confirmedOrder.Cargo(),
			}))
	}

	return evts, nil
}
