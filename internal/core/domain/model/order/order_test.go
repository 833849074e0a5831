package order_test

import (
	"testing"
	"time"

	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/core/domain/model/order"
	"freighthub/internal/core/domain/model/participant"
	"freighthub/internal/core/domain/model/vehicle"
	"freighthub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	now := time.Now().UTC()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		vehicle.LongbedTarpaulin,
		"20 pallets of tile",
		"Warehouse 4",
		"Lenina 10",
		"2026-09-14",
		now,
		now.Add(time.Hour),
	)
	require.NoError(t, err)
	return o
}

func mustPrice(t *testing.T, amount int64) kernel.Price {
	t.Helper()

	price, err := kernel.NewPrice(amount)
	require.NoError(t, err)
	return price
}

func TestNewOrder_ValidInput(t *testing.T) {
	o := newTestOrder(t)

	assert.Equal(t, order.Open, o.Status())
	assert.Nil(t, o.Winner())
	assert.Nil(t, o.WinningPrice())
	assert.False(t, o.CustomerConfirmed())
	assert.False(t, o.CarrierConfirmed())
	assert.Nil(t, o.Cancellation())
	assert.Equal(t, "20 pallets of tile", o.Cargo())
}

func TestNewOrder_RequiredFields(t *testing.T) {
	now := time.Now().UTC()

	_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), vehicle.LongbedTarpaulin,
		"", "", "Lenina 10", "", now, now.Add(time.Hour))
	require.Error(t, err)

	_, err = order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), vehicle.LongbedTarpaulin,
		"cargo", "", "", "", now, now.Add(time.Hour))
	require.Error(t, err)

	_, err = order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), vehicle.TruckType("hovercraft"),
		"cargo", "", "Lenina 10", "", now, now.Add(time.Hour))
	require.Error(t, err)
}

func TestNewOrder_WindowMustBePositive(t *testing.T) {
	now := time.Now().UTC()

	_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), vehicle.LongbedTarpaulin,
		"cargo", "", "Lenina 10", "", now, now)
	require.Error(t, err)

	_, err = order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), vehicle.LongbedTarpaulin,
		"cargo", "", "Lenina 10", "", now, now.Add(-time.Minute))
	require.Error(t, err)
}

func TestOrder_Validate_NotConstructed(t *testing.T) {
	var o order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_IsWindowExpired(t *testing.T) {
	o := newTestOrder(t)

	assert.False(t, o.IsWindowExpired(o.WindowOpenAt()))
	assert.True(t, o.IsWindowExpired(o.WindowCloseAt().Add(time.Second)))
}

func TestOrder_CloseWindow_WithBids(t *testing.T) {
	o := newTestOrder(t)

	require.NoError(t, o.CloseWindow(true))
	assert.Equal(t, order.AwaitingSelection, o.Status())
}

func TestOrder_CloseWindow_NoBids(t *testing.T) {
	o := newTestOrder(t)

	require.NoError(t, o.CloseWindow(false))
	assert.Equal(t, order.NoOffers, o.Status())
	assert.True(t, o.Status().IsTerminal())
}

func TestOrder_CloseWindow_Twice(t *testing.T) {
	o := newTestOrder(t)

	require.NoError(t, o.CloseWindow(true))
	require.ErrorIs(t, o.CloseWindow(true), order.ErrInvalidTransition)
}

func TestOrder_AssignWinner(t *testing.T) {
	o := newTestOrder(t)
	carrierID := kernel.NewUUID()

	require.NoError(t, o.CloseWindow(true))
	require.NoError(t, o.AssignWinner(carrierID, mustPrice(t, 15000)))

	assert.Equal(t, order.InProgress, o.Status())
	require.NotNil(t, o.Winner())
	assert.True(t, o.Winner().IsEqual(carrierID))
	require.NotNil(t, o.WinningPrice())
	assert.Equal(t, int64(15000), o.WinningPrice().Amount())
}

func TestOrder_AssignWinner_WhileOpen(t *testing.T) {
	o := newTestOrder(t)

	err := o.AssignWinner(kernel.NewUUID(), mustPrice(t, 15000))
	require.ErrorIs(t, err, order.ErrInvalidTransition)
	assert.Nil(t, o.Winner())
}

func TestOrder_Confirm_OnePartyThenBoth(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.CloseWindow(true))
	require.NoError(t, o.AssignWinner(kernel.NewUUID(), mustPrice(t, 15000)))

	changed, closed, err := o.Confirm(participant.Customer)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.False(t, closed)
	assert.Equal(t, order.InProgress, o.Status())

	changed, closed, err = o.Confirm(participant.Carrier)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, closed)
	assert.Equal(t, order.Closed, o.Status())
}

func TestOrder_Confirm_DuplicateIsNoOp(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.CloseWindow(true))
	require.NoError(t, o.AssignWinner(kernel.NewUUID(), mustPrice(t, 15000)))

	_, _, err := o.Confirm(participant.Customer)
	require.NoError(t, err)

	changed, closed, err := o.Confirm(participant.Customer)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.False(t, closed)
	assert.Equal(t, order.InProgress, o.Status())
}

func TestOrder_Confirm_AfterClosedIsNoOp(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.CloseWindow(true))
	require.NoError(t, o.AssignWinner(kernel.NewUUID(), mustPrice(t, 15000)))

	_, _, err := o.Confirm(participant.Customer)
	require.NoError(t, err)
	_, _, err = o.Confirm(participant.Carrier)
	require.NoError(t, err)

	changed, closed, err := o.Confirm(participant.Carrier)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.False(t, closed)
	assert.Equal(t, order.Closed, o.Status())
}

func TestOrder_Confirm_BeforeSelection(t *testing.T) {
	o := newTestOrder(t)

	_, _, err := o.Confirm(participant.Customer)
	require.ErrorIs(t, err, order.ErrInvalidTransition)
}

func TestOrder_CancelByCustomer_WhileOpen(t *testing.T) {
	o := newTestOrder(t)
	at := time.Now().UTC()

	require.NoError(t, o.CancelByCustomer("plans changed", at))

	assert.Equal(t, order.Cancelled, o.Status())
	require.NotNil(t, o.Cancellation())
	assert.Equal(t, participant.Customer, o.Cancellation().Role)
	assert.Equal(t, "plans changed", o.Cancellation().Reason)
	assert.True(t, o.Cancellation().By.IsEqual(o.CustomerID()))
}

func TestOrder_CancelByCustomer_InProgressKeepsWinner(t *testing.T) {
	o := newTestOrder(t)
	carrierID := kernel.NewUUID()
	require.NoError(t, o.CloseWindow(true))
	require.NoError(t, o.AssignWinner(carrierID, mustPrice(t, 15000)))

	require.NoError(t, o.CancelByCustomer("found another option", time.Now().UTC()))

	assert.Equal(t, order.Cancelled, o.Status())
	require.NotNil(t, o.Winner())
	assert.True(t, o.Winner().IsEqual(carrierID))
}

func TestOrder_CancelByCustomer_RequiresReason(t *testing.T) {
	o := newTestOrder(t)

	err := o.CancelByCustomer("", time.Now().UTC())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, order.Open, o.Status())
}

func TestOrder_CancelByCarrier_ReopensSelection(t *testing.T) {
	o := newTestOrder(t)
	carrierID := kernel.NewUUID()
	require.NoError(t, o.CloseWindow(true))
	require.NoError(t, o.AssignWinner(carrierID, mustPrice(t, 15000)))
	_, _, err := o.Confirm(participant.Customer)
	require.NoError(t, err)

	require.NoError(t, o.CancelByCarrier("truck broke down", time.Now().UTC()))

	assert.Equal(t, order.AwaitingSelection, o.Status())
	assert.Nil(t, o.Winner())
	assert.Nil(t, o.WinningPrice())
	assert.False(t, o.CustomerConfirmed())
	assert.False(t, o.CarrierConfirmed())

	require.NotNil(t, o.Cancellation())
	assert.Equal(t, participant.Carrier, o.Cancellation().Role)
	assert.True(t, o.Cancellation().By.IsEqual(carrierID))
}

func TestOrder_CancelByCarrier_OnlyInProgress(t *testing.T) {
	o := newTestOrder(t)

	err := o.CancelByCarrier("no capacity", time.Now().UTC())
	require.ErrorIs(t, err, order.ErrInvalidTransition)
}

func TestRestoreOrder_RoundTrip(t *testing.T) {
	o := newTestOrder(t)
	carrierID := kernel.NewUUID()
	price := mustPrice(t, 15000)
	require.NoError(t, o.CloseWindow(true))
	require.NoError(t, o.AssignWinner(carrierID, price))

	restored, err := order.RestoreOrder(
		o.ID(), o.CustomerID(), o.TruckType(), o.Cargo(),
		o.PickupAddress(), o.DeliveryAddress(), o.DeliveryDate(),
		o.Status(), o.WindowOpenAt(), o.WindowCloseAt(),
		o.Winner(), o.WinningPrice(),
		o.CustomerConfirmed(), o.CarrierConfirmed(), o.Cancellation(),
	)
	require.NoError(t, err)
	assert.True(t, restored.IsEqual(o))
	assert.Equal(t, order.InProgress, restored.Status())
	assert.True(t, restored.Winner().IsEqual(carrierID))
}

func TestRestoreOrder_WinnerInvariants(t *testing.T) {
	o := newTestOrder(t)
	carrierID := kernel.NewUUID()
	price := mustPrice(t, 15000)

	// winner without matching status
	_, err := order.RestoreOrder(
		o.ID(), o.CustomerID(), o.TruckType(), o.Cargo(),
		o.PickupAddress(), o.DeliveryAddress(), o.DeliveryDate(),
		order.Open, o.WindowOpenAt(), o.WindowCloseAt(),
		&carrierID, &price, false, false, nil,
	)
	require.Error(t, err)

	// status requiring a winner without one
	_, err = order.RestoreOrder(
		o.ID(), o.CustomerID(), o.TruckType(), o.Cargo(),
		o.PickupAddress(), o.DeliveryAddress(), o.DeliveryDate(),
		order.InProgress, o.WindowOpenAt(), o.WindowCloseAt(),
		nil, nil, false, false, nil,
	)
	require.Error(t, err)

	// winner without price
	_, err = order.RestoreOrder(
		o.ID(), o.CustomerID(), o.TruckType(), o.Cargo(),
		o.PickupAddress(), o.DeliveryAddress(), o.DeliveryDate(),
		order.InProgress, o.WindowOpenAt(), o.WindowCloseAt(),
		&carrierID, nil, false, false, nil,
	)
	require.Error(t, err)

	// closed without both confirmations
	_, err = order.RestoreOrder(
		o.ID(), o.CustomerID(), o.TruckType(), o.Cargo(),
		o.PickupAddress(), o.DeliveryAddress(), o.DeliveryDate(),
		order.Closed, o.WindowOpenAt(), o.WindowCloseAt(),
		&carrierID, &price, true, false, nil,
	)
	require.Error(t, err)
}
