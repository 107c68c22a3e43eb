package http

import (
	"net/http"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server wires the HTTP routes to the application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	updateOrderHandler    commands.UpdateOrderCommandHandler
	reportLocationHandler commands.ReportLocationCommandHandler

	// Query handlers
	listOrdersHandler        queries.ListOrdersQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	getLatestLocationHandler queries.GetLatestLocationQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	reportLocationHandler commands.ReportLocationCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getLatestLocationHandler queries.GetLatestLocationQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderHandler:       updateOrderHandler,
		reportLocationHandler:    reportLocationHandler,
		listOrdersHandler:        listOrdersHandler,
		getOrderHandler:          getOrderHandler,
		getLatestLocationHandler: getLatestLocationHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1 behind the principal middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, principalMiddleware echo.MiddlewareFunc) {
	api := e.Group("/api/v1", principalMiddleware)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id", s.UpdateOrder)
	api.GET("/locations", s.GetLatestLocation)
	api.POST("/locations", s.ReportLocation)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	counterpartID, err := kernel.UUIDFromString(req.CounterpartID)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, payload := range req.Items {
		item, itemErr := order.NewItem(payload.Name, payload.Quantity, payload.Price)
		if itemErr != nil {
			return writeError(ctx, itemErr)
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, principal, counterpartID,
		items, req.TotalAmount, req.DeliveryAddress)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	query, err := queries.NewListOrdersQuery(principal)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]orderResponse, 0, len(orders))
	for _, resp := range orders {
		response = append(response, toOrderResponse(resp))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, principal)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(resp))
}

// UpdateOrder handles PATCH /api/v1/orders/:id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req updateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	patch, err := parsePatch(req)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, principal, patch)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetLatestLocation handles GET /api/v1/locations?orderId=.
func (s *Server) GetLatestLocation(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	orderID, err := kernel.UUIDFromString(ctx.QueryParam("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetLatestLocationQuery(orderID, principal)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getLatestLocationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toLocationResponse(resp))
}

// ReportLocation handles POST /api/v1/locations.
func (s *Server) ReportLocation(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	var req reportLocationRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return writeError(ctx, err)
	}

	coordinates, err := kernel.NewCoordinates(req.Latitude, req.Longitude)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewReportLocationCommand(orderID, principal, coordinates)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.reportLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}
