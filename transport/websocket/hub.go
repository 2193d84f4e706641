package websocket

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/blockfall/blockfall/game/engine"
	"github.com/blockfall/blockfall/game/service"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins in development
		// TODO: Configure this for production
		return true
	},
}

// Message represents a WebSocket message sent to clients
type Message struct {
	SessionID string           `json:"session_id"`
	Snapshot  *engine.Snapshot `json:"snapshot,omitempty"`
	Event     string           `json:"event,omitempty"`
	Data      interface{}      `json:"data,omitempty"`
}

// inputFrame is the message format accepted from clients. Either a single
// input or a batch may be supplied.
type inputFrame struct {
	Input  string   `json:"input,omitempty"`
	Inputs []string `json:"inputs,omitempty"`
}

// Client represents a WebSocket client
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	sessionID string
}

// Hub maintains the set of active clients, streams snapshots from each
// session's game clock, and feeds client input frames into the service.
type Hub struct {
	service service.GameService

	// Registered clients by session ID
	sessions map[string]map[*Client]bool

	// Per-session snapshot stream cancellers
	streams map[string]func()

	// Outbound messages to clients
	broadcast chan *Message

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client
}

// NewHub creates a new WebSocket hub
func NewHub(gameService service.GameService) *Hub {
	return &Hub{
		service:    gameService,
		sessions:   make(map[string]map[*Client]bool),
		streams:    make(map[string]func()),
		broadcast:  make(chan *Message),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's event loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)
		}
	}
}

// ServeWS handles WebSocket requests from clients
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, sessionID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		hub:       h,
		conn:      conn,
		send:      make(chan []byte, 256),
		sessionID: sessionID,
	}

	client.hub.register <- client

	// Start client goroutines
	go client.writePump()
	go client.readPump()
}

// BroadcastToSession sends a snapshot to all clients in a session
func (h *Hub) BroadcastToSession(sessionID string, snapshot *engine.Snapshot) {
	h.broadcast <- &Message{
		SessionID: sessionID,
		Snapshot:  snapshot,
		Event:     "snapshot",
	}
}

// BroadcastEvent sends a custom event to all clients in a session
func (h *Hub) BroadcastEvent(sessionID string, event string, data interface{}) {
	h.broadcast <- &Message{
		SessionID: sessionID,
		Event:     event,
		Data:      data,
	}
}

// registerClient adds a client to a session, opening the session's snapshot
// stream when it is the first client.
func (h *Hub) registerClient(client *Client) {
	if h.sessions[client.sessionID] == nil {
		h.sessions[client.sessionID] = make(map[*Client]bool)

		ch, cancel, err := h.service.Subscribe(context.Background(), client.sessionID)
		if err != nil {
			log.Printf("Failed to subscribe to session %s: %v", client.sessionID, err)
		} else {
			h.streams[client.sessionID] = cancel
			go h.forwardSnapshots(client.sessionID, ch)
		}
	}
	h.sessions[client.sessionID][client] = true

	log.Printf("Client registered for session %s (total clients: %d)",
		client.sessionID, len(h.sessions[client.sessionID]))

	// The newcomer gets the current state immediately rather than waiting
	// for the next change
	if snapshot, err := h.service.GetSnapshot(context.Background(), client.sessionID); err == nil {
		if data, err := json.Marshal(&Message{SessionID: client.sessionID, Snapshot: snapshot, Event: "snapshot"}); err == nil {
			select {
			case client.send <- data:
			default:
			}
		}
	}
}

// unregisterClient removes a client from a session, closing the session's
// snapshot stream when it was the last client.
func (h *Hub) unregisterClient(client *Client) {
	clients, ok := h.sessions[client.sessionID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}

	delete(clients, client)
	close(client.send)

	if len(clients) == 0 {
		delete(h.sessions, client.sessionID)
		if cancel, ok := h.streams[client.sessionID]; ok {
			cancel()
			delete(h.streams, client.sessionID)
		}
	}

	log.Printf("Client unregistered from session %s (remaining clients: %d)",
		client.sessionID, len(clients))
}

// forwardSnapshots pumps a session's snapshot stream into the hub loop.
// The goroutine ends when the stream is cancelled.
func (h *Hub) forwardSnapshots(sessionID string, ch <-chan *engine.Snapshot) {
	for snapshot := range ch {
		h.broadcast <- &Message{
			SessionID: sessionID,
			Snapshot:  snapshot,
			Event:     "snapshot",
		}
	}
}

// broadcastMessage sends a message to all clients in a session
func (h *Hub) broadcastMessage(message *Message) {
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("Failed to marshal broadcast message: %v", err)
		return
	}

	if clients, ok := h.sessions[message.SessionID]; ok {
		for client := range clients {
			select {
			case client.send <- data:
			default:
				h.unregisterClient(client)
			}
		}
	}
}

// readPump pumps input frames from the WebSocket connection into the game.
// Resulting state changes come back to the client through the snapshot
// stream, not as direct replies.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
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
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		var frame inputFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			log.Printf("Ignoring malformed input frame from session %s: %v", c.sessionID, err)
			continue
		}

		inputs := frame.Inputs
		if frame.Input != "" {
			inputs = append(inputs, frame.Input)
		}
		if len(inputs) == 0 {
			continue
		}

		if _, err := c.hub.service.PushInputs(context.Background(), c.sessionID, inputs); err != nil {
			log.Printf("Input rejected for session %s: %v", c.sessionID, err)
		}
	}
}

// writePump pumps messages from the hub to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued messages to the current WebSocket message
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
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
