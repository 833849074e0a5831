package commands_test

import (
	"testing"

	"freighthub/internal/core/application/usecases/commands"
	"freighthub/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCloseAuctionCommand_Valid(t *testing.T) {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewCloseAuctionCommand(orderID)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.False(t, cmd.ByCustomer())
}

func TestNewCloseAuctionCommand_EmptyOrderID(t *testing.T) {
	_, err := commands.NewCloseAuctionCommand(kernel.UUID{})
	require.Error(t, err)
}

func TestNewCloseAuctionByCustomerCommand_Valid(t *testing.T) {
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()

	cmd, err := commands.NewCloseAuctionByCustomerCommand(orderID, customerID)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.True(t, cmd.ByCustomer())
	assert.True(t, cmd.CustomerID().IsEqual(customerID))
}

func TestNewCloseAuctionByCustomerCommand_EmptyCustomerID(t *testing.T) {
	_, err := commands.NewCloseAuctionByCustomerCommand(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
}

func TestCloseAuctionCommand_ValidateZeroValue(t *testing.T) {
	var cmd commands.CloseAuctionCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCloseAuctionCommandIsNotConstructed)
}
