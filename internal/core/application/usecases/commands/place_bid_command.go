package commands

import (
	"errors"

	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/pkg/guard"
)

var ErrPlaceBidCommandIsNotConstructed = errors.New(
	"PlaceBidCommand must be created via NewPlaceBidCommand constructor",
)

// PlaceBidCommand represents a carrier's price offer on an open order.
// Submitting a second offer on the same order replaces the carrier's price
// while keeping its original submission time.
type PlaceBidCommand struct { //nolint:recvcheck //using for validation
	bidID     kernel.UUID
	orderID   kernel.UUID
	carrierID kernel.UUID
	price     kernel.Price

	guard guard.ConstructorGuard
}

// NewPlaceBidCommand creates a command to place or update a bid.
// bidID is used only when the carrier has no existing bid on the order.
func NewPlaceBidCommand(
	bidID kernel.UUID,
	orderID kernel.UUID,
	carrierID kernel.UUID,
	price kernel.Price,
) (PlaceBidCommand, error) {
	bidCommand := PlaceBidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bidCommand.setBidID(bidID),
		bidCommand.setOrderID(orderID),
		bidCommand.setCarrierID(carrierID),
		bidCommand.setPrice(price),
	); err != nil {
		return PlaceBidCommand{}, err
	}

	return bidCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceBidCommandIsNotConstructed if validation fails.
func (c PlaceBidCommand) Validate() error {
	return c.guard.Validate(ErrPlaceBidCommandIsNotConstructed)
}

// BidID returns the identifier for a newly created bid.
func (c PlaceBidCommand) BidID() kernel.UUID {
	return c.bidID
}

// OrderID returns the order being bid on.
func (c PlaceBidCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CarrierID returns the bidding carrier.
func (c PlaceBidCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// Price returns the offered price.
func (c PlaceBidCommand) Price() kernel.Price {
	return c.price
}

func (c *PlaceBidCommand) setBidID(bidID kernel.UUID) error {
	if err := bidID.Validate(); err != nil {
		return err
	}

	c.bidID = bidID
	return nil
}

func (c *PlaceBidCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceBidCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}

func (c *PlaceBidCommand) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}
