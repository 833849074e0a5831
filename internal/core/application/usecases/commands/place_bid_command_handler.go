package commands

import (
	"context"
	"errors"
	"time"

	"freighthub/internal/core/domain/model/bid"
	"freighthub/internal/core/domain/model/order"
	"freighthub/internal/core/domain/model/participant"
	"freighthub/internal/pkg/errs"
	"freighthub/internal/pkg/orderlock"
)

// PlaceBidCommandHandler handles bid placement on open orders.
// Verifies the bidding window is still running and the carrier operates the
// required truck type. One bid per carrier per order: a repeat submission
// updates the price in place.
type PlaceBidCommandHandler struct {
	uowFactory UoWFactory
	locks      *orderlock.Registry
}

// NewPlaceBidCommandHandler creates a handler for bid placement operations.
func NewPlaceBidCommandHandler(uowFactory UoWFactory, locks *orderlock.Registry) PlaceBidCommandHandler {
	return PlaceBidCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle processes the bid placement command.
// Returns ErrWindowClosed when the order is no longer accepting bids,
// ErrUnauthorized when the actor is not a carrier, and ErrNotEligible when
// the carrier does not operate the order's truck type.
func (h *PlaceBidCommandHandler) Handle(ctx context.Context, cmd PlaceBidCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.locks.Lock(cmd.OrderID())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	biddenOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if biddenOrder.Status() != order.Open || biddenOrder.IsWindowExpired(now) {
		return ErrWindowClosed
	}

	carrier, err := uow.ParticipantRepository().Get(ctx, cmd.CarrierID())
	if err != nil {
		return err
	}
	if carrier.Role() != participant.Carrier {
		return ErrUnauthorized
	}
	if !carrier.CanHaul(biddenOrder.TruckType()) {
		return ErrNotEligible
	}

	bidRepo := uow.BidRepository()
	existing, err := bidRepo.GetByOrderAndCarrier(ctx, cmd.OrderID(), cmd.CarrierID())
	switch {
	case err == nil:
		if err = existing.UpdatePrice(cmd.Price(), now); err != nil {
			return err
		}
		if err = bidRepo.Update(ctx, existing); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		newBid, bidErr := bid.NewBid(cmd.BidID(), cmd.OrderID(), cmd.CarrierID(), cmd.Price(), now)
		if bidErr != nil {
			return bidErr
		}
		if err = bidRepo.Add(ctx, newBid); err != nil {
			return err
		}
	default:
		return err
	}

	return uow.Commit(ctx)
}
