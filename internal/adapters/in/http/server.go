package http

import (
	"errors"
	"net/http"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/services"
	"ordertrack/internal/generated/servers"
	"ordertrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	changeStatusHandler commands.ChangeOrderStatusCommandHandler
	advanceHandler      commands.AdvanceOrderStatusCommandHandler

	// Query handlers
	getOrdersHandler   queries.GetOrdersQueryHandler
	getTrackingHandler queries.GetOrderTrackingQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	advanceHandler commands.AdvanceOrderStatusCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getTrackingHandler queries.GetOrderTrackingQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:  createOrderHandler,
		changeStatusHandler: changeStatusHandler,
		advanceHandler:      advanceHandler,
		getOrdersHandler:    getOrdersHandler,
		getTrackingHandler:  getTrackingHandler,
	}
}

// GetOrders handles GET /api/v1/orders - retrieves all tracked orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrdersQuery()

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Error: "failed to retrieve orders",
		})
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = servers.Order{
			Id:           o.ID.Bytes(),
			CustomerName: o.CustomerName,
			Status:       o.Status.String(),
			StatusLabel:  o.StatusLabel,
			UpdatedAt:    o.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - creates a new order in the
// initial lifecycle stage.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Error: "invalid request body",
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, newOrder.CustomerName)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Error: "invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Error: "failed to create order",
		})
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{Id: orderID.Bytes()})
}

// GetOrderTracking handles GET /api/v1/orders/{orderId}/tracking - returns
// the current tracking snapshot.
func (s *Server) GetOrderTracking(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{Error: "invalid order id"})
	}

	query, err := queries.NewGetOrderTrackingQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{Error: "invalid order id"})
	}

	event, err := s.getTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{Error: "order not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Error: "failed to retrieve tracking",
		})
	}

	return ctx.JSON(http.StatusOK, toTrackingResponse(event))
}

// AdvanceOrderStatus handles POST /api/v1/orders/{orderId}/advance - moves
// the order one stage forward. An already delivered order is not modified
// and the response carries the terminal notice instead of a new transition.
func (s *Server) AdvanceOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{Error: "invalid order id"})
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{Error: "invalid order id"})
	}

	result, err := s.advanceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.statusChangeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.AdvanceOrderResponse{
		Status:        result.Status.String(),
		StatusLabel:   result.StatusLabel,
		Notifications: result.Notifications,
		Completed:     result.Completed,
	})
}

// SetOrderStatus handles POST /api/v1/orders/{orderId}/status - sets the
// order to an explicit stage. A value outside the known lifecycle is
// rejected with 400 before any state is touched.
func (s *Server) SetOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{Error: "invalid order id"})
	}

	var statusChange servers.StatusChange
	if err = ctx.Bind(&statusChange); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Error: "invalid request body",
		})
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Status(statusChange.Status))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Error: "invalid status value: " + statusChange.Status,
		})
	}

	result, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.statusChangeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.SetOrderStatusResponse{
		Tracking:      toTrackingResponse(result.Event),
		Notifications: result.Notifications,
		Completed:     result.Completed,
	})
}

// statusChangeError maps transition failures to HTTP responses.
func (s *Server) statusChangeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{Error: "order not found"})
	case errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, servers.Error{Error: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Error: "failed to change order status",
		})
	}
}

func toTrackingResponse(event services.TrackingEvent) servers.TrackingEvent {
	progress := make([]servers.ProgressStep, len(event.Progress))
	for i, step := range event.Progress {
		progress[i] = servers.ProgressStep{
			Value:   step.Value,
			Label:   step.Label,
			Reached: step.Reached,
		}
	}

	return servers.TrackingEvent{
		Kind:        event.Kind,
		Status:      event.Status,
		StatusLabel: event.StatusLabel,
		UpdatedAt:   event.UpdatedAt,
		Progress:    progress,
	}
}
