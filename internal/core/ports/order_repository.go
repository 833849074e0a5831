package ports

import (
	"context"

	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Open-order listings used by the sweep and the carrier feed live in the
// queries package; the repository only loads and stores whole aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
