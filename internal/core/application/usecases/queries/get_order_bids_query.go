package queries

import (
	"errors"
	"time"

	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/pkg/guard"
)

var ErrGetOrderBidsQueryIsNotConstructed = errors.New(
	"GetOrderBidsQuery must be created via NewGetOrderBidsQuery constructor",
)

// GetOrderBidsQuery retrieves the bid list for one order, cheapest first.
// The customer uses it to review offers before selecting a winner.
type GetOrderBidsQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderBidsQuery creates a query for the given order's bids.
func NewGetOrderBidsQuery(orderID kernel.UUID) (GetOrderBidsQuery, error) {
	bidsQuery := GetOrderBidsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := bidsQuery.setOrderID(orderID); err != nil {
		return GetOrderBidsQuery{}, err
	}

	return bidsQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderBidsQueryIsNotConstructed if validation fails.
func (q GetOrderBidsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderBidsQueryIsNotConstructed)
}

// OrderID returns the order whose bids are listed.
func (q GetOrderBidsQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderBidsQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderBidsQueryResponse is one row of the bid list.
// Rows are ordered by price ascending, ties by earliest submission.
type GetOrderBidsQueryResponse struct {
	BidID       kernel.UUID
	CarrierID   kernel.UUID
	CarrierName string
	Price       int64
	SubmittedAt time.Time
}
