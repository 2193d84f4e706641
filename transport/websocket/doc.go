// Package websocket provides WebSocket transport for Blockfall.
//
// The websocket package implements:
//   - Real-time bidirectional communication
//   - Session-aware WebSocket connections
//   - Automatic snapshot broadcasting on state changes
//   - Input frame handling from clients
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// goroutine pair managing reading, writing, and cleanup. When the first
// client of a session connects, the hub subscribes to that session's
// snapshot stream; the game clock runs server-side and pushes a frame
// whenever observable state changes, so clients render without polling.
//
// Message Protocol:
//
// Messages are JSON-encoded:
//   - Incoming: {"input": "move_left"} or {"inputs": ["rotate_cw", "hard_drop"]}
//   - Outgoing: {"session_id": "ab12", "event": "snapshot", "snapshot": {...}}
//
// Input results are not acknowledged directly; any effect arrives through
// the snapshot stream.
//
// Session Integration:
//
// WebSocket connections are session-aware. Clients specify their session ID
// via query parameter (?session=ab12) when establishing the connection.
// Snapshots are broadcast only to clients connected to the same session.
//
// Usage:
//
//	hub := websocket.NewHub(gameService)
//	go hub.Run()
//
//	// from an HTTP handler after validating the session
//	hub.ServeWS(w, r, sessionID)
//
// Concurrency:
//
// The hub loop owns all connection state; registration, unregistration, and
// broadcasting are serialized through channels. Multiple clients can
// connect, disconnect, and send inputs simultaneously without blocking each
// other or the game clocks.
package websocket
