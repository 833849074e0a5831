package commands

import (
	"context"
	"log/slog"
	"time"

	"freighthub/internal/core/domain/events"
	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/core/domain/model/order"
	"freighthub/internal/core/domain/model/participant"
	"freighthub/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for publishing orders.
// Opens the bidding window, arms its close timer, and notifies every carrier
// eligible for the order's truck type.
type CreateOrderCommandHandler struct {
	uowFactory     UoWFactory
	scheduler      ports.WindowScheduler
	publisher      ports.EventPublisher
	logger         *slog.Logger
	windowDuration time.Duration
}

// NewCreateOrderCommandHandler creates a handler for order publication.
// windowDuration is the configured bidding window length.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	scheduler ports.WindowScheduler,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	windowDuration time.Duration,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:     uowFactory,
		scheduler:      scheduler,
		publisher:      publisher,
		logger:         logger,
		windowDuration: windowDuration,
	}
}

// Handle processes the order publication command.
// Verifies the actor is a registered customer, persists the order in the open
// status, and after commit arms the window timer and fans out the
// new-order notification to eligible carriers.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customer, err := uow.ParticipantRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if customer.Role() != participant.Customer {
		return ErrUnauthorized
	}

	now := time.Now().UTC()
	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.TruckType(),
		cmd.Cargo(),
		cmd.PickupAddress(),
		cmd.DeliveryAddress(),
		cmd.DeliveryDate(),
		now,
		now.Add(h.windowDuration),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	carriers, err := uow.ParticipantRepository().GetCarriersByTruckType(ctx, cmd.TruckType())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.scheduler.Schedule(newOrder.ID(), newOrder.WindowCloseAt())

	recipients := make([]kernel.UUID, 0, len(carriers))
	for _, carrier := range carriers {
		recipients = append(recipients, carrier.ID())
	}
	if len(recipients) > 0 {
		publishAll(ctx, h.publisher, h.logger, []events.NotificationEvent{
			events.NewNotificationEvent(events.NewOrderOpened, newOrder.ID(), recipients,
				map[string]string{
					events.PayloadCargo:     newOrder.Cargo(),
					events.PayloadTruckType: newOrder.TruckType().String(),
					events.PayloadAddress:   newOrder.DeliveryAddress(),
				}),
		})
	}

	return nil
}
