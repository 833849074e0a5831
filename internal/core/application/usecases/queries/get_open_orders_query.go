package queries

import (
	"errors"
	"time"

	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/core/domain/model/vehicle"
	"freighthub/internal/pkg/guard"
)

var ErrGetOpenOrdersQueryIsNotConstructed = errors.New(
	"GetOpenOrdersQuery must be created via NewGetOpenOrdersQuery constructor",
)

// GetOpenOrdersQuery retrieves orders currently accepting bids, soonest
// deadline first. Carriers use it as their work feed, filtered to the truck
// types they operate; the window jobs use the unfiltered form to rebuild and
// sweep close timers.
type GetOpenOrdersQuery struct { //nolint:recvcheck //using for validation
	truckType    vehicle.TruckType
	hasTruckType bool

	guard guard.ConstructorGuard
}

// NewGetOpenOrdersQuery creates a query for all open orders.
func NewGetOpenOrdersQuery() GetOpenOrdersQuery {
	return GetOpenOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetOpenOrdersByTruckTypeQuery creates a query for open orders requiring
// the given truck type.
func NewGetOpenOrdersByTruckTypeQuery(truckType vehicle.TruckType) (GetOpenOrdersQuery, error) {
	openQuery := GetOpenOrdersQuery{
		hasTruckType: true,
		guard:        guard.NewConstructorGuard(),
	}

	if err := openQuery.setTruckType(truckType); err != nil {
		return GetOpenOrdersQuery{}, err
	}

	return openQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOpenOrdersQueryIsNotConstructed if validation fails.
func (q GetOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenOrdersQueryIsNotConstructed)
}

// TruckType returns the truck type filter.
// Only meaningful when HasTruckType reports true.
func (q GetOpenOrdersQuery) TruckType() vehicle.TruckType {
	return q.truckType
}

// HasTruckType reports whether the feed is filtered by truck type.
func (q GetOpenOrdersQuery) HasTruckType() bool {
	return q.hasTruckType
}

func (q *GetOpenOrdersQuery) setTruckType(truckType vehicle.TruckType) error {
	if err := truckType.Validate(); err != nil {
		return err
	}

	q.truckType = truckType
	return nil
}

// GetOpenOrdersQueryResponse is one row of the open-order feed.
type GetOpenOrdersQueryResponse struct {
	OrderID         kernel.UUID
	TruckType       string
	Cargo           string
	DeliveryAddress string
	DeliveryDate    string
	WindowCloseAt   time.Time
}
