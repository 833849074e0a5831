package commands

import (
	"errors"

	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/pkg/guard"
)

var ErrConfirmCompletionCommandIsNotConstructed = errors.New(
	"ConfirmCompletionCommand must be created via NewConfirmCompletionCommand constructor",
)

// ConfirmCompletionCommand represents one party's statement that the shipment
// was carried out. The order closes once both parties have confirmed.
type ConfirmCompletionCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	participantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmCompletionCommand creates a command to record a completion
// confirmation from the given participant.
func NewConfirmCompletionCommand(
	orderID kernel.UUID,
	participantID kernel.UUID,
) (ConfirmCompletionCommand, error) {
	confirmCommand := ConfirmCompletionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		confirmCommand.setOrderID(orderID),
		confirmCommand.setParticipantID(participantID),
	); err != nil {
		return ConfirmCompletionCommand{}, err
	}

	return confirmCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmCompletionCommandIsNotConstructed if validation fails.
func (c ConfirmCompletionCommand) Validate() error {
	return c.guard.Validate(ErrConfirmCompletionCommandIsNotConstructed)
}

// OrderID returns the order being confirmed.
func (c ConfirmCompletionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ParticipantID returns the confirming participant.
func (c ConfirmCompletionCommand) ParticipantID() kernel.UUID {
	return c.participantID
}

func (c *ConfirmCompletionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmCompletionCommand) setParticipantID(participantID kernel.UUID) error {
	if err := participantID.Validate(); err != nil {
		return err
	}

	c.participantID = participantID
	return nil
}
