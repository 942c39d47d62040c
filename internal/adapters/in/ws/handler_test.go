package ws_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ordertrack/internal/adapters/in/ws"
	"ordertrack/internal/adapters/out/broadcast"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/services"
	"ordertrack/internal/pkg/errs"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTrackingHandler serves canned snapshots keyed by order id.
type stubTrackingHandler struct {
	events map[string]services.TrackingEvent
}

func (s *stubTrackingHandler) Handle(
	_ context.Context,
	query queries.GetOrderTrackingQuery,
) (services.TrackingEvent, error) {
	event, ok := s.events[query.OrderID().String()]
	if !ok {
		return services.TrackingEvent{}, errs.NewObjectNotFoundError("orderID", query.OrderID().String())
	}
	return event, nil
}

func trackingEventFor(t *testing.T, id kernel.UUID, status order.Status) services.TrackingEvent {
	t.Helper()

	now := time.Now().UTC()
	aggregate, err := order.RestoreOrder(id, "Laura", status, now, now)
	require.NoError(t, err)
	return services.BuildTrackingEvent(aggregate)
}

func newTestServer(hub *broadcast.Hub, tracking ws.TrackingQueryHandler) *httptest.Server {
	e := echo.New()
	handler := ws.NewHandler(hub, tracking, slog.New(slog.DiscardHandler))
	e.GET("/ws/orders/:orderId/tracking", handler.Subscribe)
	return httptest.NewServer(e)
}

func wsURL(server *httptest.Server, orderID string) string {
	return "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/orders/" + orderID + "/tracking"
}

func readEvent(t *testing.T, conn *websocket.Conn) services.TrackingEvent {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var event services.TrackingEvent
	require.NoError(t, json.Unmarshal(payload, &event))
	return event
}

func TestHandler_Subscribe_SendsSnapshotOnJoin(t *testing.T) {
	hub := broadcast.NewHub(slog.New(slog.DiscardHandler))
	id := kernel.NewUUID()
	tracking := &stubTrackingHandler{events: map[string]services.TrackingEvent{
		id.String(): trackingEventFor(t, id, order.Shipped),
	}}
	server := newTestServer(hub, tracking)
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(server, id.String()), nil)
	require.NoError(t, err)
	defer conn.Close()

	// a subscriber joining mid-flow starts from the persisted state
	event := readEvent(t, conn)
	assert.Equal(t, services.TrackingEventKind, event.Kind)
	assert.Equal(t, "shipped", event.Status)
	assert.Equal(t, "En camino", event.StatusLabel)
}

func TestHandler_Subscribe_ForwardsBroadcastEvents(t *testing.T) {
	hub := broadcast.NewHub(slog.New(slog.DiscardHandler))
	id := kernel.NewUUID()
	tracking := &stubTrackingHandler{events: map[string]services.TrackingEvent{
		id.String(): trackingEventFor(t, id, order.Preparing),
	}}
	server := newTestServer(hub, tracking)
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(server, id.String()), nil)
	require.NoError(t, err)
	defer conn.Close()

	readEvent(t, conn) // snapshot

	group := services.OrderGroup(id)
	require.Eventually(t, func() bool {
		return hub.GroupSize(group) == 1
	}, 2*time.Second, 10*time.Millisecond)

	live := trackingEventFor(t, id, order.Outside)
	payload, err := json.Marshal(live)
	require.NoError(t, err)
	hub.GroupSend(group, payload)

	event := readEvent(t, conn)
	assert.Equal(t, "outside", event.Status)
	assert.Equal(t, "Afuera", event.StatusLabel)
}

// racingTrackingHandler simulates a status transition committing while the
// snapshot read is in flight: once the subscriber has joined the group, the
// next snapshot read triggers a broadcast before returning the stale event.
type racingTrackingHandler struct {
	hub      *broadcast.Hub
	orderID  kernel.UUID
	snapshot services.TrackingEvent
	live     []byte
}

func (s *racingTrackingHandler) Handle(
	_ context.Context,
	_ queries.GetOrderTrackingQuery,
) (services.TrackingEvent, error) {
	group := services.OrderGroup(s.orderID)
	if s.hub.GroupSize(group) == 1 {
		s.hub.GroupSend(group, s.live)
	}
	return s.snapshot, nil
}

func TestHandler_Subscribe_EventDuringSnapshotReadIsDelivered(t *testing.T) {
	hub := broadcast.NewHub(slog.New(slog.DiscardHandler))
	id := kernel.NewUUID()

	live, err := json.Marshal(trackingEventFor(t, id, order.Shipped))
	require.NoError(t, err)
	tracking := &racingTrackingHandler{
		hub:      hub,
		orderID:  id,
		snapshot: trackingEventFor(t, id, order.Preparing),
		live:     live,
	}
	server := newTestServer(hub, tracking)
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(server, id.String()), nil)
	require.NoError(t, err)
	defer conn.Close()

	// both the transition broadcast while connecting and the snapshot must
	// arrive, whatever the interleaving
	statuses := map[string]bool{}
	statuses[readEvent(t, conn).Status] = true
	statuses[readEvent(t, conn).Status] = true

	assert.True(t, statuses["shipped"], "transition broadcast while connecting was dropped")
	assert.True(t, statuses["preparing"], "snapshot was dropped")
}

func TestHandler_Subscribe_UnknownOrder_Returns404(t *testing.T) {
	hub := broadcast.NewHub(slog.New(slog.DiscardHandler))
	tracking := &stubTrackingHandler{events: map[string]services.TrackingEvent{}}
	server := newTestServer(hub, tracking)
	defer server.Close()

	//nolint:bodyclose // Dial returns a closed response on handshake failure
	_, resp, err := websocket.DefaultDialer.Dial(wsURL(server, kernel.NewUUID().String()), nil)

	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_Subscribe_InvalidOrderID_Returns400(t *testing.T) {
	hub := broadcast.NewHub(slog.New(slog.DiscardHandler))
	tracking := &stubTrackingHandler{events: map[string]services.TrackingEvent{}}
	server := newTestServer(hub, tracking)
	defer server.Close()

	//nolint:bodyclose // Dial returns a closed response on handshake failure
	_, resp, err := websocket.DefaultDialer.Dial(wsURL(server, "not-a-uuid"), nil)

	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_Subscribe_LeavesGroupOnDisconnect(t *testing.T) {
	hub := broadcast.NewHub(slog.New(slog.DiscardHandler))
	id := kernel.NewUUID()
	tracking := &stubTrackingHandler{events: map[string]services.TrackingEvent{
		id.String(): trackingEventFor(t, id, order.Preparing),
	}}
	server := newTestServer(hub, tracking)
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(server, id.String()), nil)
	require.NoError(t, err)

	group := services.OrderGroup(id)
	require.Eventually(t, func() bool {
		return hub.GroupSize(group) == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool {
		return hub.GroupSize(group) == 0
	}, 2*time.Second, 10*time.Millisecond)
}
