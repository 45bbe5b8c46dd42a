package server

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendQueueSize  = 32
)

// client is one connected UI peer. Frames to send are queued on a
// channel consumed by the write pump; a peer that stops draining its
// queue is dropped rather than blocking the broadcast path.
type client struct {
	conn   *websocket.Conn
	server *Server
	send   chan []byte
}

func newClient(conn *websocket.Conn, server *Server) *client {
	return &client{
		conn:   conn,
		server: server,
		send:   make(chan []byte, sendQueueSize),
	}
}

// enqueue queues a frame for delivery, dropping it if the client's
// queue is full.
func (c *client) enqueue(frame Frame) {
	select {
	case c.send <- encodeFrame(frame):
	default:
		c.server.logger.Warn("dropping frame for slow client")
	}
}

// readPump decodes commands off the socket and dispatches them until
// the peer disconnects.
func (c *client) readPump() {
	defer func() {
		c.server.removeClient(c)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.server.logger.Warn("unexpected client close", zap.Error(err))
			}
			return
		}
		var cmd Command
		if err := json.Unmarshal(data, &cmd); err != nil {
			c.enqueue(Frame{Type: FrameError, Error: "malformed command"})
			continue
		}
		c.server.dispatch(c, cmd)
	}
}

// writePump drains the send queue onto the socket and keeps the
// connection alive with pings.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
