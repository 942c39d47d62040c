package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/services"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/generated/servers"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/metrics"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// TrackingQueryHandler resolves the current tracking snapshot of an order.
type TrackingQueryHandler interface {
	Handle(ctx context.Context, query queries.GetOrderTrackingQuery) (services.TrackingEvent, error)
}

// Handler upgrades tracking subscriptions to WebSocket connections.
// Joining subscribers receive the current tracking snapshot of their order
// plus every event broadcast for it from the moment they join, until they
// disconnect.
type Handler struct {
	broadcaster     ports.Broadcaster
	trackingHandler TrackingQueryHandler
	upgrader        websocket.Upgrader
	logger          *slog.Logger
}

// NewHandler creates the WebSocket tracking handler.
func NewHandler(
	broadcaster ports.Broadcaster,
	trackingHandler TrackingQueryHandler,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		broadcaster:     broadcaster,
		trackingHandler: trackingHandler,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(_ *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Subscribe handles GET /ws/orders/:orderId/tracking.
// The connection joins the broadcast group before the snapshot is read, so
// a transition committed while the subscriber connects is covered either by
// the snapshot or by a live frame, never dropped.
func (h *Handler) Subscribe(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{Error: "invalid order id"})
	}

	query, err := queries.NewGetOrderTrackingQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{Error: "invalid order id"})
	}

	// Existence check only. Unknown orders must fail the handshake with a
	// plain HTTP status; the snapshot pushed to the subscriber is re-read
	// after joining the group so events broadcast in between are not lost.
	if _, err = h.trackingHandler.Handle(ctx.Request().Context(), query); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{Error: "order not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{Error: "failed to load tracking"})
	}

	conn, err := h.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		// Upgrade already wrote the handshake error response.
		return nil
	}

	client := newClient(conn)
	group := services.OrderGroup(orderID)

	h.broadcaster.GroupJoin(group, client)
	metrics.LiveSubscribers.Inc()
	defer func() {
		h.broadcaster.GroupLeave(group, client)
		metrics.LiveSubscribers.Dec()
	}()

	go client.writePump()

	snapshot, err := h.trackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		h.logger.Warn("failed to load tracking snapshot",
			"order", orderID.String(),
			"error", err)
		client.close()
		return nil
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		h.logger.Warn("failed to encode tracking snapshot",
			"order", orderID.String(),
			"error", err)
		client.close()
		return nil
	}

	if sendErr := client.Send(payload); sendErr != nil {
		h.logger.Warn("failed to push tracking snapshot",
			"order", orderID.String(),
			"error", sendErr)
		return nil
	}

	h.logger.Info("tracking subscriber joined", "order", orderID.String())
	client.readPump()
	h.logger.Info("tracking subscriber left", "order", orderID.String())

	return nil
}
