package queries

import (
	"context"
	"log/slog"

	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/core/domain/model/order"
	"freighthub/internal/pkg/errs"

	"gorm.io/gorm"
)

// SummaryCache is a read-through cache for order summaries.
// Lookups answer (response, found); a miss is not an error. Implementations
// own their invalidation policy, so stale reads are bounded by the TTL.
type SummaryCache interface {
	Get(ctx context.Context, orderID kernel.UUID) (GetOrderSummaryQueryResponse, bool, error)
	Set(ctx context.Context, response GetOrderSummaryQueryResponse) error
}

// GetOrderSummaryQueryHandler serves auction snapshots.
// Reads through the summary cache; on a miss the snapshot is computed from
// the database and stored back. Cache failures degrade to direct reads.
type GetOrderSummaryQueryHandler struct {
	db     *gorm.DB
	cache  SummaryCache
	logger *slog.Logger
}

// NewGetOrderSummaryQueryHandler creates a handler for order summary queries.
// Requires a GORM database connection and a summary cache.
func NewGetOrderSummaryQueryHandler(
	db *gorm.DB,
	cache SummaryCache,
	logger *slog.Logger,
) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

// Handle executes the summary query.
// Returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummaryQuery,
) (GetOrderSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	if cached, found, err := h.cache.Get(ctx, query.OrderID()); err != nil {
		h.logger.Warn("summary cache lookup failed",
			"order_id", query.OrderID().String(),
			"error", err)
	} else if found {
		return cached, nil
	}

	response, err := h.load(ctx, query.OrderID())
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	if err = h.cache.Set(ctx, response); err != nil {
		h.logger.Warn("summary cache store failed",
			"order_id", query.OrderID().String(),
			"error", err)
	}

	return response, nil
}

func (h GetOrderSummaryQueryHandler) load(
	ctx context.Context,
	orderID kernel.UUID,
) (GetOrderSummaryQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.status,
			o.window_close_at,
			COUNT(b.id),
			MIN(b.price)
		FROM orders o
		LEFT JOIN bids b ON b.order_id = o.id
		WHERE o.id = ?
		GROUP BY o.status, o.window_close_at
	`, orderID.Bytes()).Rows()
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderSummaryQueryResponse{}, err
		}
		return GetOrderSummaryQueryResponse{}, errs.NewObjectNotFoundError("order", orderID.String())
	}

	response := GetOrderSummaryQueryResponse{OrderID: orderID}
	var status int
	if err = rows.Scan(&status, &response.WindowCloseAt, &response.BidCount, &response.MinPrice); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}
	response.Status = order.Status(status).String()

	if err = rows.Err(); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	return response, nil
}
