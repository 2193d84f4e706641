// Package mcp provides a Model Context Protocol server for Blockfall.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for game operations
//   - A thin proxy that forwards every call to the REST API
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - create_session: Create new game session with config selection
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - delete_session: Delete a session
//   - snapshot: Get the current board snapshot with ASCII rendering
//   - input: Apply a single input event
//   - inputs: Apply a batch of input events in one tick
//   - restart: Reset a session to the start menu
//   - high_score: Get the best score across all sessions
//   - list_configs: List available rule configurations
//   - game_instructions: Get comprehensive game instructions
//
// Architecture:
//
// The MCP server holds no game state of its own. Each tool call maps to
// one or two REST calls against the API server, so the MCP process can
// run separately from the game server and multiple MCP clients can share
// the same sessions.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Autonomously play the game against the live 60Hz clock
//   - Batch a full piece placement into a single tool call
//   - Read the ghost preview to predict hard drop landings
//   - Manage multiple concurrent game sessions
package mcp
