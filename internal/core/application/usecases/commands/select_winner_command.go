package commands

import (
	"errors"

	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/pkg/guard"
)

var ErrSelectWinnerCommandIsNotConstructed = errors.New(
	"SelectWinnerCommand must be created via NewSelectWinnerCommand constructor",
)

// SelectWinnerCommand represents the customer's manual choice of a winning
// bid. Issued while the window is still open (closing it early) or while the
// order awaits selection.
type SelectWinnerCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	bidID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewSelectWinnerCommand creates a command to assign the chosen bid's carrier
// as the order's winner.
func NewSelectWinnerCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	bidID kernel.UUID,
) (SelectWinnerCommand, error) {
	selectCommand := SelectWinnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		selectCommand.setOrderID(orderID),
		selectCommand.setCustomerID(customerID),
		selectCommand.setBidID(bidID),
	); err != nil {
		return SelectWinnerCommand{}, err
	}

	return selectCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSelectWinnerCommandIsNotConstructed if validation fails.
func (c SelectWinnerCommand) Validate() error {
	return c.guard.Validate(ErrSelectWinnerCommandIsNotConstructed)
}

// OrderID returns the order a winner is selected for.
func (c SelectWinnerCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the acting customer.
func (c SelectWinnerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// BidID returns the chosen bid.
func (c SelectWinnerCommand) BidID() kernel.UUID {
	return c.bidID
}

func (c *SelectWinnerCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SelectWinnerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *SelectWinnerCommand) setBidID(bidID kernel.UUID) error {
	if err := bidID.Validate(); err != nil {
		return err
	}

	c.bidID = bidID
	return nil
}
