// Package queries contains read-only operations over the persisted state.
// Query handlers bypass the domain aggregates and read projections straight
// from the database, following the CQRS split used across the application.
package queries

import (
	"errors"
	"time"

	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/pkg/guard"
)

var ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
	"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
)

// GetOrderSummaryQuery retrieves the live auction snapshot for one order:
// status, bid count, lowest offered price, and the window deadline so a UI
// can render the countdown.
//
// Example:
//
//	query, err := NewGetOrderSummaryQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order summary: %w", err)
//	}
//	fmt.Printf("%s: %d bids, best %v\n", summary.Status, summary.BidCount, summary.MinPrice)
type GetOrderSummaryQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderSummaryQuery creates a query for the given order.
func NewGetOrderSummaryQuery(orderID kernel.UUID) (GetOrderSummaryQuery, error) {
	summaryQuery := GetOrderSummaryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := summaryQuery.setOrderID(orderID); err != nil {
		return GetOrderSummaryQuery{}, err
	}

	return summaryQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderSummaryQueryIsNotConstructed if validation fails.
func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

// OrderID returns the order being summarized.
func (q GetOrderSummaryQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderSummaryQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderSummaryQueryResponse is the auction snapshot for one order.
// MinPrice is nil while no bids exist.
type GetOrderSummaryQueryResponse struct {
	OrderID       kernel.UUID
	Status        string
	BidCount      int
	MinPrice      *int64
	WindowCloseAt time.Time
}
