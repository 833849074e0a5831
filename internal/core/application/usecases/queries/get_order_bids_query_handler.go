package queries

import (
	"context"

	"freighthub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderBidsQueryHandler retrieves the ordered bid list from the database.
// Joins carrier names so the customer sees who is offering without extra
// lookups.
type GetOrderBidsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderBidsQueryHandler creates a handler for bid list queries.
// Requires a GORM database connection for query execution.
func NewGetOrderBidsQueryHandler(db *gorm.DB) GetOrderBidsQueryHandler {
	return GetOrderBidsQueryHandler{db: db}
}

// Handle executes the query to retrieve all bids for the order.
// Returns an empty slice when the order has no bids or does not exist.
func (h GetOrderBidsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderBidsQuery,
) ([]GetOrderBidsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	bids := make([]GetOrderBidsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			b.carrier_id,
			p.name,
			b.price,
			b.submitted_at
		FROM bids b
		JOIN participants p ON p.id = b.carrier_id
		WHERE b.order_id = ?
		ORDER BY b.price, b.submitted_at
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var bidResp GetOrderBidsQueryResponse
		var bidID, carrierID uuid.UUID

		err = rows.Scan(
			&bidID,
			&carrierID,
			&bidResp.CarrierName,
			&bidResp.Price,
			&bidResp.SubmittedAt,
		)
		if err != nil {
			return nil, err
		}

		bidResp.BidID, err = kernel.UUIDFromBytes(bidID[:])
		if err != nil {
			return nil, err
		}
		bidResp.CarrierID, err = kernel.UUIDFromBytes(carrierID[:])
		if err != nil {
			return nil, err
		}

		bids = append(bids, bidResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bids, nil
}
