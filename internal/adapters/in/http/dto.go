package http

import "time"

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder is the request body for POST /api/v1/orders.
type NewOrder struct {
	TruckType       string `json:"truck_type"`
	Cargo           string `json:"cargo"`
	PickupAddress   string `json:"pickup_address,omitempty"`
	DeliveryAddress string `json:"delivery_address"`
	DeliveryDate    string `json:"delivery_date,omitempty"`
}

// OrderCreated is the response body for a successful order creation.
type OrderCreated struct {
	ID string `json:"id"`
}

// NewBid is the request body for POST /api/v1/orders/:id/bids.
type NewBid struct {
	Price int64 `json:"price"`
}

// SelectWinner is the request body for POST /api/v1/orders/:id/select.
// An omitted bid id closes the window immediately and applies the automatic
// lowest-price policy.
type SelectWinner struct {
	BidID string `json:"bid_id,omitempty"`
}

// CancelOrder is the request body for POST /api/v1/orders/:id/cancel.
type CancelOrder struct {
	Reason string `json:"reason"`
}

// Bid is one row of the bid list response.
type Bid struct {
	ID          string    `json:"id"`
	CarrierID   string    `json:"carrier_id"`
	CarrierName string    `json:"carrier_name"`
	Price       int64     `json:"price"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// OrderSummary is the response body for GET /api/v1/orders/:id/summary.
type OrderSummary struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"`
	BidCount      int       `json:"bid_count"`
	MinPrice      *int64    `json:"min_price,omitempty"`
	WindowCloseAt time.Time `json:"window_close_at"`
}

// OpenOrder is one row of the open-order feed response.
type OpenOrder struct {
	ID              string    `json:"id"`
	TruckType       string    `json:"truck_type"`
	Cargo           string    `json:"cargo"`
	DeliveryAddress string    `json:"delivery_address"`
	DeliveryDate    string    `json:"delivery_date,omitempty"`
	WindowCloseAt   time.Time `json:"window_close_at"`
}
