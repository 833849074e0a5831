// Package http exposes the order lifecycle over a REST API.
// The acting participant is identified by the X-Participant-ID header;
// authentication is handled upstream, this layer only authorizes against
// the order's own roles.
package http

import (
	"net/http"

	"freighthub/internal/core/application/usecases/commands"
	"freighthub/internal/core/application/usecases/queries"
	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/core/domain/model/vehicle"

	"github.com/labstack/echo/v4"
)

// ParticipantHeader carries the acting participant's identity.
const ParticipantHeader = "X-Participant-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	placeBidHandler     commands.PlaceBidCommandHandler
	closeAuctionHandler commands.CloseAuctionCommandHandler
	selectWinnerHandler commands.SelectWinnerCommandHandler
	confirmHandler      commands.ConfirmCompletionCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler

	// Query handlers
	getOrderSummaryHandler queries.GetOrderSummaryQueryHandler
	getOrderBidsHandler    queries.GetOrderBidsQueryHandler
	getOpenOrdersHandler   queries.GetOpenOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	placeBidHandler commands.PlaceBidCommandHandler,
	closeAuctionHandler commands.CloseAuctionCommandHandler,
	selectWinnerHandler commands.SelectWinnerCommandHandler,
	confirmHandler commands.ConfirmCompletionCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderSummaryHandler queries.GetOrderSummaryQueryHandler,
	getOrderBidsHandler queries.GetOrderBidsQueryHandler,
	getOpenOrdersHandler queries.GetOpenOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		placeBidHandler:        placeBidHandler,
		closeAuctionHandler:    closeAuctionHandler,
		selectWinnerHandler:    selectWinnerHandler,
		confirmHandler:         confirmHandler,
		cancelOrderHandler:     cancelOrderHandler,
		getOrderSummaryHandler: getOrderSummaryHandler,
		getOrderBidsHandler:    getOrderBidsHandler,
		getOpenOrdersHandler:   getOpenOrdersHandler,
	}
}

// RegisterRoutes attaches all API endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/open", s.GetOpenOrders)
	api.POST("/orders/:id/bids", s.PlaceBid)
	api.GET("/orders/:id/bids", s.GetOrderBids)
	api.POST("/orders/:id/select", s.SelectWinner)
	api.POST("/orders/:id/confirm", s.ConfirmCompletion)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.GET("/orders/:id/summary", s.GetOrderSummary)
}

// CreateOrder handles POST /api/v1/orders - publishes a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid or missing "+ParticipantHeader+" header")
	}

	var body NewOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		actor,
		vehicle.TruckType(body.TruckType),
		body.Cargo,
		body.PickupAddress,
		body.DeliveryAddress,
		body.DeliveryDate,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{ID: orderID.String()})
}

// PlaceBid handles POST /api/v1/orders/:id/bids - submits or updates a bid.
func (s *Server) PlaceBid(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid or missing "+ParticipantHeader+" header")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body NewBid
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewPrice(body.Price)
	if err != nil {
		return badRequest(ctx, "Invalid bid data: "+err.Error())
	}

	cmd, err := commands.NewPlaceBidCommand(kernel.NewUUID(), orderID, actor, price)
	if err != nil {
		return badRequest(ctx, "Invalid bid data: "+err.Error())
	}

	if err = s.placeBidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SelectWinner handles POST /api/v1/orders/:id/select - assigns the winner.
// With a bid id the customer picks manually; without one the window closes
// immediately and the automatic lowest-price policy decides.
func (s *Server) SelectWinner(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid or missing "+ParticipantHeader+" header")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body SelectWinner
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	if body.BidID == "" {
		cmd, cmdErr := commands.NewCloseAuctionByCustomerCommand(orderID, actor)
		if cmdErr != nil {
			return badRequest(ctx, "Invalid selection data: "+cmdErr.Error())
		}
		if err = s.closeAuctionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
			return writeError(ctx, err)
		}
		return ctx.NoContent(http.StatusNoContent)
	}

	bidID, err := kernel.UUIDFromString(body.BidID)
	if err != nil {
		return badRequest(ctx, "Invalid bid id")
	}

	cmd, err := commands.NewSelectWinnerCommand(orderID, actor, bidID)
	if err != nil {
		return badRequest(ctx, "Invalid selection data: "+err.Error())
	}

	if err = s.selectWinnerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmCompletion handles POST /api/v1/orders/:id/confirm - records one
// party's completion confirmation.
func (s *Server) ConfirmCompletion(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid or missing "+ParticipantHeader+" header")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewConfirmCompletionCommand(orderID, actor)
	if err != nil {
		return badRequest(ctx, "Invalid confirmation data: "+err.Error())
	}

	if err = s.confirmHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancels the order on
// behalf of the acting participant.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid or missing "+ParticipantHeader+" header")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body CancelOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor, body.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation data: "+err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderBids handles GET /api/v1/orders/:id/bids - lists bids, cheapest first.
func (s *Server) GetOrderBids(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderBidsQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	bids, err := s.getOrderBidsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Bid, len(bids))
	for i, b := range bids {
		response[i] = Bid{
			ID:          b.BidID.String(),
			CarrierID:   b.CarrierID.String(),
			CarrierName: b.CarrierName,
			Price:       b.Price,
			SubmittedAt: b.SubmittedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderSummary handles GET /api/v1/orders/:id/summary - the auction snapshot.
func (s *Server) GetOrderSummary(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderSummaryQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	summary, err := s.getOrderSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderSummary{
		ID:            summary.OrderID.String(),
		Status:        summary.Status,
		BidCount:      summary.BidCount,
		MinPrice:      summary.MinPrice,
		WindowCloseAt: summary.WindowCloseAt,
	})
}

// GetOpenOrders handles GET /api/v1/orders/open - the carrier-facing feed.
// An optional truck_type query parameter narrows the feed.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	var query queries.GetOpenOrdersQuery
	if truckType := ctx.QueryParam("truck_type"); truckType != "" {
		q, err := queries.NewGetOpenOrdersByTruckTypeQuery(vehicle.TruckType(truckType))
		if err != nil {
			return badRequest(ctx, "Invalid truck type")
		}
		query = q
	} else {
		query = queries.NewGetOpenOrdersQuery()
	}

	orders, err := s.getOpenOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OpenOrder, len(orders))
	for i, o := range orders {
		response[i] = OpenOrder{
			ID:              o.OrderID.String(),
			TruckType:       o.TruckType,
			Cargo:           o.Cargo,
			DeliveryAddress: o.DeliveryAddress,
			DeliveryDate:    o.DeliveryDate,
			WindowCloseAt:   o.WindowCloseAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// actorID extracts the acting participant from the request header.
func actorID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(ParticipantHeader))
}
