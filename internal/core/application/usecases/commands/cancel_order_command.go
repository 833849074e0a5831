package commands

import (
	"errors"

	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/pkg/errs"
	"freighthub/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a participant backing out of an order.
// A customer cancellation terminates the order; a winning carrier
// cancellation returns it to selection. A reason is always required.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	participantID kernel.UUID
	reason        string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel the order on behalf of
// the given participant. The reason must be non-empty.
func NewCancelOrderCommand(
	orderID kernel.UUID,
	participantID kernel.UUID,
	reason string,
) (CancelOrderCommand, error) {
	cancelCommand := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cancelCommand.setOrderID(orderID),
		cancelCommand.setParticipantID(participantID),
		cancelCommand.setReason(reason),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelOrderCommandIsNotConstructed if validation fails.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order being cancelled.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ParticipantID returns the cancelling participant.
func (c CancelOrderCommand) ParticipantID() kernel.UUID {
	return c.participantID
}

// Reason returns the stated cancellation reason.
func (c CancelOrderCommand) Reason() string {
	return c.reason
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setParticipantID(participantID kernel.UUID) error {
	if err := participantID.Validate(); err != nil {
		return err
	}

	c.participantID = participantID
	return nil
}

func (c *CancelOrderCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
