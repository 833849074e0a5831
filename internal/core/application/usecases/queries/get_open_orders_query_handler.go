package queries

import (
	"context"

	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenOrdersQueryHandler retrieves the open-order feed from the database.
type GetOpenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenOrdersQueryHandler creates a handler for open-order feed queries.
// Requires a GORM database connection for query execution.
func NewGetOpenOrdersQueryHandler(db *gorm.DB) GetOpenOrdersQueryHandler {
	return GetOpenOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve orders accepting bids.
// Results are sorted by window deadline, soonest first.
func (h GetOpenOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOpenOrdersQuery,
) ([]GetOpenOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			truck_type,
			cargo,
			delivery_address,
			delivery_date,
			window_close_at
		FROM orders
		WHERE status = ?
	`
	args := []any{order.Open}
	if query.HasTruckType() {
		sql += ` AND truck_type = ?`
		args = append(args, query.TruckType().String())
	}
	sql += ` ORDER BY window_close_at`

	orders := make([]GetOpenOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetOpenOrdersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&orderResp.TruckType,
			&orderResp.Cargo,
			&orderResp.DeliveryAddress,
			&orderResp.DeliveryDate,
			&orderResp.WindowCloseAt,
		)
		if err != nil {
			return nil, err
		}

		orderResp.OrderID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
