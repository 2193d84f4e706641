package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/blockfall/blockfall/game/engine"
	"github.com/blockfall/blockfall/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Blockfall",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Blockfall - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Stack falling tetrominoes on a 10x20 well and clear full rows. Score grows
with lines cleared and level; the game ends when a new piece has no room.

AVAILABLE TOOLS:
- create_session: Create new game session
- get_session: Get session details
- list_sessions: List all active sessions
- delete_session: Delete a session
- snapshot: Get the current board snapshot
- input: Apply a single input event
- inputs: Apply a batch of input events in one tick
- restart: Reset a session to the start menu
- high_score: Get the best score across all sessions
- list_configs: List available rule configurations
- game_instructions: Get comprehensive game instructions and rules

NOTE: The game runs its own 60Hz clock server-side. Inputs are applied
between ticks, so send "start" first, then steer the falling piece.`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional config selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the rule config to use (optional, defaults to classic)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "delete_session",
		Description: "Delete a game session and stop its clock",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to delete",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleDeleteSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "snapshot",
		Description: "Get the current board snapshot for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleSnapshot)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "input",
		Description: "Apply a single input event to a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"input": map[string]interface{}{
					"type": "string",
					"enum": []string{
						"start", "pause", "quit", "hold",
						"rotate_cw", "rotate_ccw", "move_left", "move_right",
						"soft_drop_on", "soft_drop_off", "hard_drop",
					},
					"description": "Input event to apply",
				},
			},
			Required: []string{"session_id", "input"},
		},
	}, c.handleInput)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "inputs",
		Description: "Apply a batch of input events in one tick (priority ordered server-side)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"inputs": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
					},
					"description": "Array of input events",
				},
			},
			Required: []string{"session_id", "inputs"},
		},
	}, c.handleInputs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "restart",
		Description: "Reset a session back to the start menu",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleRestart)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "high_score",
		Description: "Get the best score across all sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleHighScore)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available rule configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n", session.ID, session.ConfigName)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		phase := ""
		if s.Snapshot != nil {
			phase = fmt.Sprintf(", Phase: %s, Score: %d", s.Snapshot.Phase, s.Snapshot.Score)
		}
		result += fmt.Sprintf("- %s (Config: %s, Created: %s%s)\n",
			s.ID, s.ConfigName, s.CreatedAt.Format("15:04:05"), phase)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleDeleteSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	err := c.apiCall("DELETE", fmt.Sprintf("/api/sessions/%s", sessionID), nil, nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Session %s deleted", sessionID)), nil
}

func (c *Client) handleSnapshot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var snapshot engine.Snapshot
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/snapshot", sessionID), nil, &snapshot)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSnapshot(&snapshot)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleInput(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	input, _ := args["input"].(string)

	body := map[string]string{"input": input}

	var result service.InputResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/input", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatInputResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleInputs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	inputsRaw, _ := args["inputs"].([]interface{})

	inputs := make([]string, 0, len(inputsRaw))
	for _, in := range inputsRaw {
		if s, ok := in.(string); ok {
			inputs = append(inputs, s)
		}
	}

	body := map[string]interface{}{"inputs": inputs}

	var result service.InputResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/inputs", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatInputResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleRestart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message  string           `json:"message"`
		Snapshot *engine.Snapshot `json:"snapshot"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/restart", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatSnapshot(response.Snapshot))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleHighScore(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var info service.HighScoreInfo
	err := c.apiCall("GET", "/api/highscore", nil, &info)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("High score: %d", info.HighScore)), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s (%s)\n  %s\n  Well: %dx%d, Preview: %d\n\n",
			config.Name, config.ConfigID, config.Description,
			config.Cols, config.Rows, config.PreviewCount)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `🎮 Blockfall - Complete Instructions

GAME OBJECTIVE:
Steer falling tetromino pieces into a 10-wide, 20-tall well. Complete
horizontal rows disappear and score points. The game ends when the stack
reaches the top and a new piece has no room to spawn.

GAME FLOW:
The game starts at a menu. Send "start" to begin. The server runs a 60Hz
clock; the active piece falls on its own, faster at higher levels.

INPUT EVENTS:
• start - Begin a game from the menu, or return to the menu after game over
• pause - Toggle pause while playing
• quit - End the session's game loop
• move_left / move_right - Shift the active piece one column
• rotate_cw / rotate_ccw - Rotate the active piece (with wall kicks)
• soft_drop_on / soft_drop_off - Press and release fast-fall
• hard_drop - Drop the piece straight down and lock it immediately
• hold - Stash the active piece, swapping with the held one (once per piece)

BOARD LEGEND (snapshot rendering):
• I O T S Z J L - Locked cells, letter names the piece that left them
• # - The active falling piece
• . - The ghost landing preview
• (space) - Empty cell

SCORING:
• 1 line: 40 x (level + 1)
• 2 lines: 100 x (level + 1)
• 3 lines: 300 x (level + 1)
• 4 lines: 1200 x (level + 1)
• Soft drop: +1 per cell fallen while held
• Hard drop: +2 per cell dropped
• Level increases every 10 cleared lines and speeds up gravity

🤖 AI AGENTS - PRACTICAL TIPS:
1. Create a session, send "start", then fetch a snapshot to see the board.
2. The piece keeps falling between your calls. Use the "inputs" tool to
   batch a whole placement (rotations, moves, then hard_drop) in one tick.
3. The ghost cells (.) show exactly where a hard_drop will land.
4. The "next" queue in the snapshot shows upcoming pieces; plan for flat
   stacks and keep a column open for I pieces.
5. Watch flash_rows in the snapshot: input is ignored during the brief
   line-clear flash.

SESSION MANAGEMENT:
- Multiple game sessions can run simultaneously
- Each session has a unique 4-character ID
- Sessions maintain independent state and configuration
- The high score is shared across sessions and persists on disk

Good luck stacking! 🧱`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatSnapshot(session.Snapshot))
}

func formatInputResult(result *service.InputResult) string {
	response := fmt.Sprintf("Accepted: %d", result.Accepted)
	if len(result.Rejected) > 0 {
		response += fmt.Sprintf(" | Rejected: %s", strings.Join(result.Rejected, ", "))
	}
	response += "\n\n" + formatSnapshot(result.Snapshot)
	return response
}

// formatSnapshot renders the well as ASCII with the active piece and ghost
// overlaid on the locked cells.
func formatSnapshot(snapshot *engine.Snapshot) string {
	if snapshot == nil {
		return "No snapshot available"
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("Phase: %s | Score: %d | Level: %d | Lines: %d | High: %d\n",
		snapshot.Phase, snapshot.Score, snapshot.Level, snapshot.Lines, snapshot.HighScore))

	if snapshot.Held != "" {
		b.WriteString(fmt.Sprintf("Held: %s | ", snapshot.Held))
	}
	if len(snapshot.Next) > 0 {
		names := make([]string, len(snapshot.Next))
		for i, k := range snapshot.Next {
			names[i] = string(k)
		}
		b.WriteString(fmt.Sprintf("Next: %s", strings.Join(names, " ")))
	}
	b.WriteString("\n\n")

	active := make(map[engine.Position]bool, len(snapshot.Active))
	for _, p := range snapshot.Active {
		active[p] = true
	}
	ghost := make(map[engine.Position]bool, len(snapshot.Ghost))
	for _, p := range snapshot.Ghost {
		ghost[p] = true
	}

	for y := 0; y < snapshot.Rows; y++ {
		b.WriteString("|")
		for x := 0; x < snapshot.Cols; x++ {
			pos := engine.Position{X: x, Y: y}
			switch {
			case active[pos]:
				b.WriteString("#")
			case snapshot.Cells[y][x] != "":
				b.WriteString(string(snapshot.Cells[y][x]))
			case ghost[pos]:
				b.WriteString(".")
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString("+" + strings.Repeat("-", snapshot.Cols) + "+\n")

	if len(snapshot.FlashRows) > 0 {
		b.WriteString(fmt.Sprintf("\nClearing rows %v (%.2fs left)\n",
			snapshot.FlashRows, snapshot.FlashRemaining))
	}

	return b.String()
}
