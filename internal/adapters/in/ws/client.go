// Package ws provides the WebSocket tracking endpoint. Each subscriber
// connection joins the broadcast group of one order and receives tracking
// events pushed by the status change pipeline.
package ws

import (
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// writeWait bounds a single write to the peer.
	writeWait = 10 * time.Second

	// pongWait is how long the peer has to answer a ping.
	pongWait = 60 * time.Second

	// pingPeriod must be shorter than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// maxInboundSize limits inbound frames, subscribers are not expected
	// to send payloads.
	maxInboundSize = 512

	// sendQueueSize bounds the outbound queue per connection.
	sendQueueSize = 16
)

var errSubscriberGone = errors.New("subscriber queue full or connection closed")

// Client adapts one WebSocket connection to the broadcast port.
// Outbound payloads go through a bounded queue drained by a single writer
// goroutine, so broadcasts never block on a slow peer. A peer that cannot
// keep up has its queue fill and is disconnected.
type Client struct {
	conn *websocket.Conn
	send chan []byte

	closeOnce sync.Once
	done      chan struct{}
}

func newClient(conn *websocket.Conn) *Client {
	return &Client{
		conn: conn,
		send: make(chan []byte, sendQueueSize),
		done: make(chan struct{}),
	}
}

// Send queues a payload for delivery. Never blocks: returns
// errSubscriberGone when the connection is closed or the queue is full,
// which makes the hub evict this member.
func (c *Client) Send(payload []byte) error {
	select {
	case <-c.done:
		return errSubscriberGone
	default:
	}

	select {
	case c.send <- payload:
		return nil
	default:
		c.close()
		return errSubscriberGone
	}
}

// close makes every subsequent Send fail and wakes the writer goroutine.
func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

// writePump drains the outbound queue to the peer and keeps the connection
// alive with pings. Runs in its own goroutine, exactly one per connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				c.close()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.close()
				return
			}
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, nil)
			return
		}
	}
}

// readPump consumes and discards inbound frames until the peer goes away.
// Reading is required to process close and pong control frames.
func (c *Client) readPump() {
	defer func() {
		c.close()
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxInboundSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
