// Package api provides HTTP REST API handlers for Blockfall.
//
// The api package implements:
//   - RESTful endpoints for session and game operations
//   - Input submission (single and batched)
//   - Snapshot retrieval for renderers and bots
//   - Configuration listing and creation
//   - High score lookup
//   - WebSocket upgrade handling
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session (optional config_id)
//   - GET /api/sessions - List all sessions (sort, order, limit query params)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Game Operations:
//   - GET /api/sessions/{id}/snapshot - Current render snapshot
//   - POST /api/sessions/{id}/input - Apply one input event
//   - POST /api/sessions/{id}/inputs - Apply a batch of input events
//   - POST /api/sessions/{id}/restart - Reset session to the start menu
//
// High Score:
//   - GET /api/highscore - Best score across all sessions
//
// Configuration:
//   - GET /api/configs - List available rule configurations
//   - GET /api/configs/{name} - Get a specific rule configuration
//   - POST /api/configs - Save a new rule configuration
//
// WebSocket:
//   - GET /ws?session={id} - Upgrade to a live snapshot stream
//
// Request/Response Format:
//
// All endpoints accept and return JSON. Inputs are sent as POST with
// a JSON body:
//
//	{"input": "move_left"}
//	{"inputs": ["rotate_cw", "move_right", "hard_drop"]}
//
// Input responses include the accepted/rejected breakdown plus the
// snapshot taken after the batch was applied:
//
//	{
//	  "accepted": 2,
//	  "rejected": ["teleport"],
//	  "snapshot": { ... }
//	}
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{"error": "error message"}
package api
