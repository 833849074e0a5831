package ports

import (
	"context"

	"freighthub/internal/core/domain/model/bid"
	"freighthub/internal/core/domain/model/kernel"
)

// BidRepository defines the persistence contract for the bid ledger.
// Uniqueness per (order, carrier) is enforced by storage; ordering follows
// the selection policy: price ascending, earliest submission first on ties.
type BidRepository interface {
	// Add persists a new bid. Fails if the (order, carrier) pair already has one.
	Add(ctx context.Context, aggregate *bid.Bid) error

	// Update persists a price change to an existing bid.
	Update(ctx context.Context, aggregate *bid.Bid) error

	// Get retrieves a bid by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such bid exists.
	Get(ctx context.Context, id kernel.UUID) (*bid.Bid, error)

	// GetByOrderAndCarrier retrieves the carrier's live bid for the order.
	// Returns errs.ObjectNotFoundError when the carrier has not bid.
	GetByOrderAndCarrier(ctx context.Context, orderID, carrierID kernel.UUID) (*bid.Bid, error)

	// GetAllByOrder retrieves all bids for the order ordered by price
	// ascending, ties broken by earliest submission.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*bid.Bid, error)

	// CountByOrder returns the number of live bids for the order.
	CountByOrder(ctx context.Context, orderID kernel.UUID) (int, error)
}
