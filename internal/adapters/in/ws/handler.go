package ws

import (
	"context"
	"errors"
	"net/http"
	"time"

	"tracking/internal/auth"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/realtime"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// OrderReader loads a single order on behalf of a principal, applying the
// read access rules.
type OrderReader interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
}

// LocationReporter ingests a location report on behalf of a principal.
type LocationReporter interface {
	Handle(ctx context.Context, cmd commands.ReportLocationCommand) error
}

// Handler upgrades HTTP requests to WebSocket connections and speaks the
// frame protocol. Room joins run through the same read gate as the HTTP API
// and location frames take the same ingest path as POST /api/v1/locations.
type Handler struct {
	upgrader   websocket.Upgrader
	verifier   *auth.TokenVerifier
	hub        *realtime.Hub
	orders     OrderReader
	reporter   LocationReporter
	sendBuffer int
}

// NewHandler creates a WebSocket handler. sendBuffer caps the per-connection
// outbound queue; events beyond it are dropped rather than stalling the hub.
func NewHandler(
	verifier *auth.TokenVerifier,
	hub *realtime.Hub,
	orders OrderReader,
	reporter LocationReporter,
	sendBuffer int,
) *Handler {
	if sendBuffer <= 0 {
		sendBuffer = 64
	}
	return &Handler{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		verifier:   verifier,
		hub:        hub,
		orders:     orders,
		reporter:   reporter,
		sendBuffer: sendBuffer,
	}
}

// Serve handles GET /ws.
func (h *Handler) Serve(ctx echo.Context) error {
	sock, err := h.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		return err
	}

	conn := newConnection(kernel.NewUUID().String(), sock, h.sendBuffer)
	go conn.writePump()
	h.readLoop(ctx.Request().Context(), conn)
	return nil
}

// readLoop reads client frames until the connection drops, then tears down
// every subscription the connection held.
func (h *Handler) readLoop(ctx context.Context, conn *connection) {
	defer func() {
		h.hub.DropSubscriber(conn.ID())
		conn.close()
	}()

	_ = conn.sock.SetReadDeadline(time.Now().Add(pongWait))
	conn.sock.SetPongHandler(func(string) error {
		return conn.sock.SetReadDeadline(time.Now().Add(pongWait))
	})

	var principal *kernel.Principal
	for {
		var frame inboundFrame
		if err := conn.sock.ReadJSON(&frame); err != nil {
			return
		}

		switch frame.Type {
		case typeAuthenticate:
			principal = h.authenticate(conn, frame.Token)
		case typeJoinOrderRoom:
			h.joinRoom(ctx, conn, principal, frame.OrderID)
		case typeLeaveOrderRoom:
			h.leaveRoom(conn, frame.OrderID)
		case typeUpdateLocation:
			h.reportLocation(ctx, conn, principal, frame)
		default:
			conn.enqueue(errorFrame{Type: typeError, Message: "unknown frame type"})
		}
	}
}

func (h *Handler) authenticate(conn *connection, token string) *kernel.Principal {
	principal, err := h.verifier.Verify(token)
	if err != nil {
		conn.enqueue(errorFrame{Type: typeUnauthorized, Message: "invalid token"})
		return nil
	}

	conn.enqueue(authenticatedFrame{
		Type:   typeAuthenticated,
		UserID: principal.UserID().String(),
		Role:   principal.Role().String(),
	})
	return &principal
}

func (h *Handler) joinRoom(ctx context.Context, conn *connection, principal *kernel.Principal, rawOrderID string) {
	if principal == nil {
		conn.enqueue(errorFrame{Type: typeUnauthorized, Message: "authenticate first"})
		return
	}

	orderID, err := kernel.UUIDFromString(rawOrderID)
	if err != nil {
		conn.enqueue(errorFrame{Type: typeError, Message: "invalid order id"})
		return
	}

	query, err := queries.NewGetOrderQuery(orderID, *principal)
	if err != nil {
		conn.enqueue(errorFrame{Type: typeError, Message: err.Error()})
		return
	}

	// The read gate decides who may watch this order.
	if _, err = h.orders.Handle(ctx, query); err != nil {
		conn.enqueue(errorFrame{Type: typeError, Message: err.Error()})
		return
	}

	if err = h.hub.Subscribe(orderID, conn); err != nil {
		if errors.Is(err, realtime.ErrHubClosed) {
			conn.enqueue(errorFrame{Type: typeError, Message: "service shutting down"})
			return
		}
		conn.enqueue(errorFrame{Type: typeError, Message: err.Error()})
		return
	}

	conn.enqueue(roomFrame{Type: typeJoinedRoom, OrderID: orderID.String()})
}

func (h *Handler) leaveRoom(conn *connection, rawOrderID string) {
	orderID, err := kernel.UUIDFromString(rawOrderID)
	if err != nil {
		conn.enqueue(errorFrame{Type: typeError, Message: "invalid order id"})
		return
	}

	h.hub.Unsubscribe(orderID, conn.ID())
	conn.enqueue(roomFrame{Type: typeLeftRoom, OrderID: orderID.String()})
}

func (h *Handler) reportLocation(ctx context.Context, conn *connection, principal *kernel.Principal, frame inboundFrame) {
	if principal == nil {
		conn.enqueue(errorFrame{Type: typeUnauthorized, Message: "authenticate first"})
		return
	}

	orderID, err := kernel.UUIDFromString(frame.OrderID)
	if err != nil {
		conn.enqueue(errorFrame{Type: typeError, Message: "invalid order id"})
		return
	}

	coordinates, err := kernel.NewCoordinates(frame.Latitude, frame.Longitude)
	if err != nil {
		conn.enqueue(errorFrame{Type: typeError, Message: err.Error()})
		return
	}

	cmd, err := commands.NewReportLocationCommand(orderID, *principal, coordinates)
	if err != nil {
		conn.enqueue(errorFrame{Type: typeError, Message: err.Error()})
		return
	}

	if err = h.reporter.Handle(ctx, cmd); err != nil {
		conn.enqueue(errorFrame{Type: typeError, Message: err.Error()})
	}
}
