package ws

import (
	"sync"
	"time"

	"tracking/internal/realtime"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// connection is one WebSocket client registered as a hub subscriber. Frames
// flow to the client through the buffered send channel; the write pump is the
// only goroutine that writes to the socket.
type connection struct {
	id        string
	sock      *websocket.Conn
	send      chan any
	done      chan struct{}
	closeOnce sync.Once
}

func newConnection(id string, sock *websocket.Conn, sendBuffer int) *connection {
	return &connection{
		id:   id,
		sock: sock,
		send: make(chan any, sendBuffer),
		done: make(chan struct{}),
	}
}

// ID implements realtime.Subscriber.
func (c *connection) ID() string {
	return c.id
}

// Offer implements realtime.Subscriber. It never blocks: when the send
// buffer is full the event is dropped and Offer reports false.
func (c *connection) Offer(event realtime.Event) bool {
	frame := eventFrame(event)
	if frame == nil {
		return false
	}
	return c.enqueue(frame)
}

// enqueue puts a frame on the send channel without blocking.
func (c *connection) enqueue(frame any) bool {
	select {
	case <-c.done:
		return false
	case c.send <- frame:
		return true
	default:
		return false
	}
}

// close stops the write pump and closes the socket. Safe to call more than
// once.
func (c *connection) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.sock.Close()
	})
}

// writePump drains the send channel onto the socket and keeps the connection
// alive with pings. It exits on the first write error or when close is
// called, closing the socket so the read loop unblocks too.
func (c *connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.sock.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.sock.WriteMessage(websocket.CloseMessage, nil)
			return
		case frame := <-c.send:
			_ = c.sock.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.sock.WriteJSON(frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.sock.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.sock.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
