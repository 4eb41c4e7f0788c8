package websocket

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tronweb/gameserver/game/service"
)

// sendBufferSize is the per-client outbound queue length.
const sendBufferSize = 256

// GameHandler dispatches inbound client events. service.GameService
// satisfies it.
type GameHandler interface {
	FindGame(ctx context.Context, connectionID string, req service.FindGameRequest) error
	DirectionChanged(ctx context.Context, connectionID string, req service.DirectionChangedRequest) error
	GameFinished(ctx context.Context, connectionID string, payload json.RawMessage) error
	Disconnected(ctx context.Context, connectionID string) error
}

// Client represents a single websocket connection.
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	handler GameHandler
	send    chan []byte
	done    chan struct{}
	id      string
}

// readPump pumps frames from the websocket connection to the game service.
// Frames are dispatched sequentially, preserving per-connection order.
func (c *Client) readPump() {
	defer func() {
		if err := c.handler.Disconnected(context.Background(), c.id); err != nil {
			log.Printf("Disconnect cleanup for %s failed: %v", c.id, err)
		}
		c.hub.unregister <- c
		c.conn.Close()
	}()

	pongWait := c.hub.settings.PongWait()
	c.conn.SetReadLimit(c.hub.settings.MaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error on %s: %v", c.id, err)
			}
			break
		}

		c.dispatch(raw)
	}
}

// dispatch routes one inbound frame to the matching service operation.
// Malformed frames and rejected requests are logged and skipped; they never
// tear the connection down.
func (c *Client) dispatch(raw []byte) {
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		log.Printf("Dropping malformed frame from %s: %v", c.id, err)
		return
	}

	ctx := context.Background()

	switch msg.Type {
	case service.EventFindGame:
		var req service.FindGameRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			log.Printf("Dropping malformed findGame from %s: %v", c.id, err)
			return
		}
		if err := c.handler.FindGame(ctx, c.id, req); err != nil {
			log.Printf("findGame from %s failed: %v", c.id, err)
		}

	case service.EventDirectionChanged:
		var req service.DirectionChangedRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			log.Printf("Dropping malformed directionChanged from %s: %v", c.id, err)
			return
		}
		if err := c.handler.DirectionChanged(ctx, c.id, req); err != nil {
			log.Printf("directionChanged from %s failed: %v", c.id, err)
		}

	case service.EventGameFinished:
		if err := c.handler.GameFinished(ctx, c.id, msg.Data); err != nil {
			log.Printf("gameFinished from %s failed: %v", c.id, err)
		}

	default:
		log.Printf("Dropping frame with unknown type %q from %s", msg.Type, c.id)
	}
}

// writePump pumps messages from the hub to the websocket connection. One
// frame per message; a ping keeps the connection alive between messages.
func (c *Client) writePump() {
	ticker := time.NewTicker(c.hub.settings.PingPeriod())
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	writeWait := c.hub.settings.WriteWait()

	for {
		select {
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-c.done:
			// The hub dropped this client.
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
