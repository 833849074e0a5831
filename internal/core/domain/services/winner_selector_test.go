package services_test

import (
	"testing"
	"time"

	"freighthub/internal/core/domain/model/bid"
	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeBid(t *testing.T, orderID kernel.UUID, amount int64, submittedAt time.Time) *bid.Bid {
	t.Helper()

	price, err := kernel.NewPrice(amount)
	require.NoError(t, err)

	b, err := bid.NewBid(kernel.NewUUID(), orderID, kernel.NewUUID(), price, submittedAt)
	require.NoError(t, err)
	return b
}

func TestWinnerSelector_LowestPriceWins(t *testing.T) {
	orderID := kernel.NewUUID()
	base := time.Now().UTC()

	expensive := makeBid(t, orderID, 30000, base)
	cheap := makeBid(t, orderID, 15000, base.Add(time.Minute))
	middle := makeBid(t, orderID, 20000, base.Add(2*time.Minute))

	winner, err := services.NewWinnerSelector().Select([]*bid.Bid{expensive, cheap, middle})
	require.NoError(t, err)
	assert.True(t, winner.IsEqual(cheap))
}

func TestWinnerSelector_TieBrokenByEarliestSubmission(t *testing.T) {
	orderID := kernel.NewUUID()
	base := time.Now().UTC()

	first := makeBid(t, orderID, 200, base)
	earlierAtSamePrice := makeBid(t, orderID, 150, base.Add(time.Minute))
	laterAtSamePrice := makeBid(t, orderID, 150, base.Add(2*time.Minute))

	winner, err := services.NewWinnerSelector().Select(
		[]*bid.Bid{first, earlierAtSamePrice, laterAtSamePrice})
	require.NoError(t, err)
	assert.True(t, winner.IsEqual(earlierAtSamePrice))
}

func TestWinnerSelector_TieBreakSurvivesPriceUpdate(t *testing.T) {
	orderID := kernel.NewUUID()
	base := time.Now().UTC()

	early := makeBid(t, orderID, 200, base)
	late := makeBid(t, orderID, 150, base.Add(time.Minute))

	// Lowering the early bid later keeps its original submission time,
	// so it still wins the tie at 150.
	price, err := kernel.NewPrice(150)
	require.NoError(t, err)
	require.NoError(t, early.UpdatePrice(price, base.Add(2*time.Minute)))

	winner, err := services.NewWinnerSelector().Select([]*bid.Bid{late, early})
	require.NoError(t, err)
	assert.True(t, winner.IsEqual(early))
}

func TestWinnerSelector_SingleBid(t *testing.T) {
	orderID := kernel.NewUUID()
	only := makeBid(t, orderID, 100, time.Now().UTC())

	winner, err := services.NewWinnerSelector().Select([]*bid.Bid{only})
	require.NoError(t, err)
	assert.True(t, winner.IsEqual(only))
}

func TestWinnerSelector_NoBids(t *testing.T) {
	_, err := services.NewWinnerSelector().Select(nil)
	require.ErrorIs(t, err, services.ErrNoBids)
}

func TestWinnerSelector_RejectsUnconstructedBid(t *testing.T) {
	_, err := services.NewWinnerSelector().Select([]*bid.Bid{{}})
	require.Error(t, err)
}
