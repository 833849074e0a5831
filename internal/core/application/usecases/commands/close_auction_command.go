package commands

import (
	"errors"

	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/pkg/guard"
)

var ErrCloseAuctionCommandIsNotConstructed = errors.New(
	"CloseAuctionCommand must be created via NewCloseAuctionCommand constructor",
)

// CloseAuctionCommand represents the closing of an order's bidding window.
// Issued by the window timer and the periodic sweep, or by the customer to
// end bidding early and let the automatic policy pick the winner.
type CloseAuctionCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	byCustomer bool

	guard guard.ConstructorGuard
}

// NewCloseAuctionCommand creates a system command to close the order's
// bidding window on expiry.
func NewCloseAuctionCommand(orderID kernel.UUID) (CloseAuctionCommand, error) {
	closeCommand := CloseAuctionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := closeCommand.setOrderID(orderID); err != nil {
		return CloseAuctionCommand{}, err
	}

	return closeCommand, nil
}

// NewCloseAuctionByCustomerCommand creates a command for the customer to end
// bidding ahead of the window deadline. The winner, if any bids exist, is
// assigned by the automatic selection policy.
func NewCloseAuctionByCustomerCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
) (CloseAuctionCommand, error) {
	closeCommand := CloseAuctionCommand{
		byCustomer: true,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		closeCommand.setOrderID(orderID),
		closeCommand.setCustomerID(customerID),
	); err != nil {
		return CloseAuctionCommand{}, err
	}

	return closeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCloseAuctionCommandIsNotConstructed if validation fails.
func (c CloseAuctionCommand) Validate() error {
	return c.guard.Validate(ErrCloseAuctionCommandIsNotConstructed)
}

// OrderID returns the order whose window is closing.
func (c CloseAuctionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the acting customer for a customer-initiated close.
// Only meaningful when ByCustomer reports true.
func (c CloseAuctionCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ByCustomer reports whether the close was requested by the customer rather
// than by window expiry.
func (c CloseAuctionCommand) ByCustomer() bool {
	return c.byCustomer
}

func (c *CloseAuctionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CloseAuctionCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
