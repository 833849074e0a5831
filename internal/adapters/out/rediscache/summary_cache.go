// Package rediscache implements the order summary cache on Redis.
// Summaries are hot while an auction runs (every participant polls the same
// countdown), so a short TTL absorbs the read load without a dedicated
// invalidation protocol.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"freighthub/internal/core/application/usecases/queries"
	"freighthub/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "order_summary:"

// SummaryCache stores order summaries in Redis as JSON with a fixed TTL.
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache creates a summary cache over the given Redis client.
func NewSummaryCache(client *redis.Client, ttl time.Duration) *SummaryCache {
	return &SummaryCache{
		client: client,
		ttl:    ttl,
	}
}

// cachedSummary is the Redis JSON representation of a summary.
type cachedSummary struct {
	OrderID       string    `json:"order_id"`
	Status        string    `json:"status"`
	BidCount      int       `json:"bid_count"`
	MinPrice      *int64    `json:"min_price,omitempty"`
	WindowCloseAt time.Time `json:"window_close_at"`
}

// Get looks up a cached summary. A missing key is a miss, not an error.
func (c *SummaryCache) Get(
	ctx context.Context,
	orderID kernel.UUID,
) (queries.GetOrderSummaryQueryResponse, bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+orderID.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return queries.GetOrderSummaryQueryResponse{}, false, nil
		}
		return queries.GetOrderSummaryQueryResponse{}, false, err
	}

	var cached cachedSummary
	if err = json.Unmarshal(raw, &cached); err != nil {
		return queries.GetOrderSummaryQueryResponse{}, false, err
	}

	id, err := kernel.UUIDFromString(cached.OrderID)
	if err != nil {
		return queries.GetOrderSummaryQueryResponse{}, false, err
	}

	return queries.GetOrderSummaryQueryResponse{
		OrderID:       id,
		Status:        cached.Status,
		BidCount:      cached.BidCount,
		MinPrice:      cached.MinPrice,
		WindowCloseAt: cached.WindowCloseAt,
	}, true, nil
}

// Set stores the summary under the order's key with the configured TTL.
func (c *SummaryCache) Set(ctx context.Context, response queries.GetOrderSummaryQueryResponse) error {
	raw, err := json.Marshal(cachedSummary{
		OrderID:       response.OrderID.String(),
		Status:        response.Status,
		BidCount:      response.BidCount,
		MinPrice:      response.MinPrice,
		WindowCloseAt: response.WindowCloseAt,
	})
	if err != nil {
		return err
	}

	return c.client.Set(ctx, keyPrefix+response.OrderID.String(), raw, c.ttl).Err()
}
