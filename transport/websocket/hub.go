package websocket

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/tronweb/gameserver/game/config"
)

var ErrConnectionNotFound = errors.New("connection not found")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins in development
		// TODO: Configure this for production
		return true
	},
}

// Message is the JSON envelope for every websocket frame.
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// encode wraps an event payload in the message envelope and marshals it.
func encode(event string, data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Message{Type: event, Data: raw})
}

// Hub maintains the set of active connections and their broadcast groups.
type Hub struct {
	// connections maps connection IDs to active clients.
	connections map[string]*Client

	// groups maps group names to member connection IDs.
	groups map[string]map[string]bool

	// register receives clients to add to the connection table.
	register chan *Client

	// unregister receives clients to remove from the connection table.
	unregister chan *Client

	settings *config.Settings

	// mu protects connections and groups.
	mu sync.RWMutex
}

// NewHub creates a new hub with initialized channels and tables.
func NewHub(settings *config.Settings) *Hub {
	if settings == nil {
		settings = config.Default()
	}
	return &Hub{
		connections: make(map[string]*Client),
		groups:      make(map[string]map[string]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		settings:    settings,
	}
}

// Run starts the hub's event loop. It should be called in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.connections[client.id] = client
			h.mu.Unlock()
			log.Printf("Client connected: %s (total connections: %d)", client.id, h.ConnectionCount())

		case client := <-h.unregister:
			h.drop(client)
			log.Printf("Client disconnected: %s (total connections: %d)", client.id, h.ConnectionCount())
		}
	}
}

// ServeWS upgrades the HTTP request and registers the connection. Inbound
// events are dispatched to the given handler.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, handler GameHandler) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		hub:     h,
		conn:    conn,
		handler: handler,
		send:    make(chan []byte, sendBufferSize),
		done:    make(chan struct{}),
		id:      uuid.NewString(),
	}

	h.register <- client

	go client.writePump()
	go client.readPump()
}

// SendToConnection sends a private event to a single connection.
func (h *Hub) SendToConnection(connectionID, event string, data any) error {
	payload, err := encode(event, data)
	if err != nil {
		return err
	}

	h.mu.RLock()
	client, ok := h.connections[connectionID]
	h.mu.RUnlock()
	if !ok {
		return ErrConnectionNotFound
	}

	h.deliver(client, payload)
	return nil
}

// AddToGroup adds a connection to a named broadcast group, creating the
// group if needed.
func (h *Hub) AddToGroup(group, connectionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.groups[group] == nil {
		h.groups[group] = make(map[string]bool)
	}
	h.groups[group][connectionID] = true
}

// RemoveFromGroup removes a connection from a group. Empty groups are
// deleted.
func (h *Hub) RemoveFromGroup(group, connectionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.groups[group], connectionID)
	if len(h.groups[group]) == 0 {
		delete(h.groups, group)
	}
}

// BroadcastToGroupExcept sends an event to every member of a group except
// the named connection.
func (h *Hub) BroadcastToGroupExcept(group, exceptConnectionID, event string, data any) error {
	payload, err := encode(event, data)
	if err != nil {
		return err
	}

	h.mu.RLock()
	targets := make([]*Client, 0, len(h.groups[group]))
	for id := range h.groups[group] {
		if id == exceptConnectionID {
			continue
		}
		if client, ok := h.connections[id]; ok {
			targets = append(targets, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range targets {
		h.deliver(client, payload)
	}

	return nil
}

// ConnectionCount returns the number of open connections.
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// GroupMembers returns the connection IDs currently in a group.
func (h *Hub) GroupMembers(group string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	members := make([]string, 0, len(h.groups[group]))
	for id := range h.groups[group] {
		members = append(members, id)
	}
	return members
}

// deliver queues a payload on the client's send channel. A client whose
// buffer is full is dropped rather than allowed to stall the sender; a
// payload racing an already-dropped client is discarded. The send channel is
// never closed, so a delivery landing right after a drop cannot panic.
func (h *Hub) deliver(client *Client, payload []byte) {
	select {
	case client.send <- payload:
	case <-client.done:
		// Already dropped.
	default:
		h.drop(client)
	}
}

// drop removes a client from the connection table and every group, and
// signals its write pump to shut down. Safe to call more than once per
// client.
func (h *Hub) drop(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.connections[client.id]; !ok {
		return
	}

	delete(h.connections, client.id)
	for group, members := range h.groups {
		delete(members, client.id)
		if len(members) == 0 {
			delete(h.groups, group)
		}
	}
	close(client.done)
}
