package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/blockfall/blockfall/game/engine"
	"github.com/blockfall/blockfall/game/service"
)

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	if client == nil {
		t.Fatal("Expected client to be created")
	}

	if client.baseURL != baseURL {
		t.Errorf("Expected baseURL %s, got %s", baseURL, client.baseURL)
	}

	if client.httpClient == nil {
		t.Error("Expected HTTP client to be initialized")
	}

	if client.mcpServer == nil {
		t.Error("Expected MCP server to be initialized")
	}
}

func TestClient_apiCall(t *testing.T) {
	expectedResponse := map[string]interface{}{
		"high_score": float64(1200),
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expectedResponse)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var response map[string]interface{}
	err := client.apiCall("GET", "/api/highscore", nil, &response)
	if err != nil {
		t.Fatalf("apiCall failed: %v", err)
	}

	if response["high_score"] != expectedResponse["high_score"] {
		t.Errorf("Expected high_score %v, got %v", expectedResponse["high_score"], response["high_score"])
	}
}

func TestClient_apiCall_Error(t *testing.T) {
	client := NewClient("http://invalid-url-that-does-not-exist:9999")

	err := client.apiCall("GET", "/api", nil, nil)
	if err == nil {
		t.Error("Expected error for invalid URL")
	}
}

func TestClient_apiCall_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api", nil, nil)
	if err == nil {
		t.Error("Expected error for HTTP 500 response")
	}

	if !strings.Contains(err.Error(), "API error") {
		t.Errorf("Expected 'API error' in error message, got: %v", err)
	}
}

func TestClient_apiCall_JSONError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "session not found: zzzz"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api/sessions/zzzz", nil, nil)
	if err == nil {
		t.Fatal("Expected error for 404 response")
	}

	if !strings.Contains(err.Error(), "session not found") {
		t.Errorf("Expected server error message passed through, got: %v", err)
	}
}

func TestClient_createSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/sessions" {
			t.Errorf("Expected POST /api/sessions, got %s %s", r.Method, r.URL.Path)
		}

		resp := service.SessionInfo{
			ID:         "ab12",
			ConfigName: "classic",
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "create_session",
			Arguments: map[string]interface{}{},
		},
	}

	result, err := client.handleCreateSession(ctx, request)
	if err != nil {
		t.Fatalf("createSession failed: %v", err)
	}

	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	if !strings.Contains(resultStr.Text, "ab12") {
		t.Errorf("Expected session ID in result, got: %s", resultStr.Text)
	}
}

func TestClient_handleInputs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/sessions/ab12/inputs" {
			t.Errorf("Expected POST /api/sessions/ab12/inputs, got %s %s", r.Method, r.URL.Path)
		}

		var body struct {
			Inputs []string `json:"inputs"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if len(body.Inputs) != 2 {
			t.Errorf("Expected 2 inputs forwarded, got %v", body.Inputs)
		}

		resp := service.InputResult{
			Accepted: 1,
			Rejected: []string{"teleport"},
			Snapshot: &engine.Snapshot{
				Phase: engine.PhasePlaying,
				Rows:  20,
				Cols:  10,
				Cells: emptyCells(20, 10),
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "inputs",
			Arguments: map[string]interface{}{
				"session_id": "ab12",
				"inputs":     []interface{}{"move_left", "teleport"},
			},
		},
	}

	result, err := client.handleInputs(context.Background(), request)
	if err != nil {
		t.Fatalf("handleInputs failed: %v", err)
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	if !strings.Contains(resultStr.Text, "Accepted: 1") {
		t.Errorf("Expected accepted count in result, got: %s", resultStr.Text)
	}
	if !strings.Contains(resultStr.Text, "teleport") {
		t.Errorf("Expected rejected input listed, got: %s", resultStr.Text)
	}
}

func TestFormatSnapshot(t *testing.T) {
	cells := emptyCells(20, 10)
	cells[19][0] = engine.PieceJ
	cells[19][1] = engine.PieceJ

	snapshot := &engine.Snapshot{
		Phase:     engine.PhasePlaying,
		Rows:      20,
		Cols:      10,
		Cells:     cells,
		Active:    []engine.Position{{X: 4, Y: 0}, {X: 5, Y: 0}, {X: 4, Y: 1}, {X: 5, Y: 1}},
		Ghost:     []engine.Position{{X: 4, Y: 18}, {X: 5, Y: 18}, {X: 4, Y: 17}, {X: 5, Y: 17}},
		Held:      engine.PieceT,
		Next:      []engine.PieceKind{engine.PieceI, engine.PieceS, engine.PieceZ},
		Score:     340,
		Level:     2,
		Lines:     21,
		HighScore: 4800,
	}

	result := formatSnapshot(snapshot)

	expectedFields := []string{
		"Phase: playing",
		"Score: 340",
		"Level: 2",
		"Lines: 21",
		"High: 4800",
		"Held: T",
		"Next: I S Z",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in formatted output, got: %s", field, result)
		}
	}

	lines := strings.Split(result, "\n")
	var boardLines []string
	for _, line := range lines {
		if strings.HasPrefix(line, "|") {
			boardLines = append(boardLines, line)
		}
	}
	if len(boardLines) != 20 {
		t.Fatalf("Expected 20 board rows, got %d", len(boardLines))
	}

	// Active piece renders as #, locked cells as their letter, ghost as .
	if !strings.Contains(boardLines[0], "##") {
		t.Errorf("Expected active piece in top row, got: %s", boardLines[0])
	}
	if !strings.HasPrefix(boardLines[19], "|JJ") {
		t.Errorf("Expected locked J cells in bottom row, got: %s", boardLines[19])
	}
	if !strings.Contains(boardLines[18], "..") {
		t.Errorf("Expected ghost cells in row 18, got: %s", boardLines[18])
	}
}

func TestFormatSnapshot_Flash(t *testing.T) {
	snapshot := &engine.Snapshot{
		Phase:          engine.PhasePlaying,
		Rows:           20,
		Cols:           10,
		Cells:          emptyCells(20, 10),
		FlashRows:      []int{19},
		FlashRemaining: 0.25,
	}

	result := formatSnapshot(snapshot)

	if !strings.Contains(result, "Clearing rows [19]") {
		t.Errorf("Expected flash rows in result, got: %s", result)
	}
}

func TestFormatSnapshot_Nil(t *testing.T) {
	if got := formatSnapshot(nil); got != "No snapshot available" {
		t.Errorf("Expected placeholder for nil snapshot, got: %s", got)
	}
}

func TestClient_handleGameInstructions(t *testing.T) {
	client := NewClient("http://localhost:8080")
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "game_instructions",
			Arguments: map[string]interface{}{},
		},
	}

	result, err := client.handleGameInstructions(ctx, request)
	if err != nil {
		t.Fatalf("handleGameInstructions failed: %v", err)
	}

	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	expectedContent := []string{
		"Blockfall - Complete Instructions",
		"GAME OBJECTIVE:",
		"INPUT EVENTS:",
		"BOARD LEGEND",
		"SCORING:",
		"AI AGENTS - PRACTICAL TIPS:",
		"SESSION MANAGEMENT:",
		"hard_drop",
	}

	for _, content := range expectedContent {
		if !strings.Contains(resultStr.Text, content) {
			t.Errorf("Expected '%s' in instructions, got: %s", content, resultStr.Text)
		}
	}
}

func TestClient_Integration(t *testing.T) {
	client := NewClient("http://localhost:8080")

	if client == nil {
		t.Fatal("Failed to create client")
	}

	if client.mcpServer == nil {
		t.Fatal("MCP server not initialized")
	}

	if client.baseURL == "" {
		t.Error("Base URL not set")
	}

	if client.httpClient == nil {
		t.Error("HTTP client not initialized")
	}
}

func emptyCells(rows, cols int) [][]engine.PieceKind {
	cells := make([][]engine.PieceKind, rows)
	for y := range cells {
		cells[y] = make([]engine.PieceKind, cols)
	}
	return cells
}
