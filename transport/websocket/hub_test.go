package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockfall/blockfall/game/engine"
	"github.com/blockfall/blockfall/game/service"
)

// stubService backs the hub with a single real runner, so input frames and
// snapshot streams behave exactly as in production without a session store.
type stubService struct {
	runner *service.Runner
}

func newStubService(t *testing.T) *stubService {
	t.Helper()
	eng, err := engine.NewEngine(engine.DefaultConfig())
	require.NoError(t, err)
	return &stubService{runner: service.NewRunner(eng)}
}

func (s *stubService) CreateSession(ctx context.Context, configName string) (*service.SessionInfo, error) {
	return nil, nil
}
func (s *stubService) GetSession(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
	return nil, nil
}
func (s *stubService) ListSessions(ctx context.Context) ([]*service.SessionInfo, error) {
	return nil, nil
}
func (s *stubService) DeleteSession(ctx context.Context, sessionID string) error { return nil }

func (s *stubService) PushInput(ctx context.Context, sessionID, input string) (*service.InputResult, error) {
	return s.PushInputs(ctx, sessionID, []string{input})
}

func (s *stubService) PushInputs(ctx context.Context, sessionID string, inputs []string) (*service.InputResult, error) {
	var kinds []engine.InputKind
	for _, raw := range inputs {
		kinds = append(kinds, engine.InputKind(raw))
	}
	snap := s.runner.Apply(kinds)
	return &service.InputResult{Accepted: len(kinds), Snapshot: snap}, nil
}

func (s *stubService) Restart(ctx context.Context, sessionID string) (*engine.Snapshot, error) {
	return s.runner.Restart(), nil
}

func (s *stubService) GetSnapshot(ctx context.Context, sessionID string) (*engine.Snapshot, error) {
	return s.runner.Snapshot(), nil
}

func (s *stubService) Subscribe(ctx context.Context, sessionID string) (<-chan *engine.Snapshot, func(), error) {
	ch, cancel := s.runner.Subscribe()
	return ch, cancel, nil
}

func (s *stubService) GetHighScore(ctx context.Context) (*service.HighScoreInfo, error) {
	return &service.HighScoreInfo{}, nil
}
func (s *stubService) ListConfigs(ctx context.Context) ([]*service.ConfigInfo, error) {
	return nil, nil
}
func (s *stubService) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return nil, nil
}
func (s *stubService) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return nil
}

func TestNewHub(t *testing.T) {
	hub := NewHub(newStubService(t))

	require.NotNil(t, hub)
	assert.NotNil(t, hub.sessions)
	assert.NotNil(t, hub.streams)
	assert.NotNil(t, hub.broadcast)
	assert.NotNil(t, hub.register)
	assert.NotNil(t, hub.unregister)
}

func TestHubRegisterClient(t *testing.T) {
	hub := NewHub(newStubService(t))

	client := &Client{
		hub:       hub,
		sessionID: "test-session",
		send:      make(chan []byte, 256),
	}

	hub.registerClient(client)

	require.Contains(t, hub.sessions, "test-session")
	assert.True(t, hub.sessions["test-session"][client])
	assert.Contains(t, hub.streams, "test-session", "first client should open the snapshot stream")

	// The newcomer receives the current state immediately
	select {
	case data := <-client.send:
		var msg Message
		require.NoError(t, json.Unmarshal(data, &msg))
		assert.Equal(t, "snapshot", msg.Event)
		require.NotNil(t, msg.Snapshot)
		assert.Equal(t, engine.PhaseStartMenu, msg.Snapshot.Phase)
	default:
		t.Fatal("No initial snapshot queued for new client")
	}
}

func TestHubUnregisterClosesStream(t *testing.T) {
	hub := NewHub(newStubService(t))

	client := &Client{
		hub:       hub,
		sessionID: "test-session",
		send:      make(chan []byte, 256),
	}

	hub.registerClient(client)
	hub.unregisterClient(client)

	assert.NotContains(t, hub.sessions, "test-session")
	assert.NotContains(t, hub.streams, "test-session", "last client should close the snapshot stream")

	// send channel is closed
	select {
	case _, ok := <-client.send:
		if ok {
			// drain the initial snapshot, then expect close
			_, ok = <-client.send
			assert.False(t, ok, "send channel not closed on unregister")
		}
	default:
		t.Fatal("send channel neither closed nor holding data")
	}
}

func TestHubBroadcastIsolatedPerSession(t *testing.T) {
	hub := NewHub(newStubService(t))

	a := &Client{hub: hub, sessionID: "aaaa", send: make(chan []byte, 256)}
	b := &Client{hub: hub, sessionID: "bbbb", send: make(chan []byte, 256)}
	hub.registerClient(a)
	hub.registerClient(b)
	drain(a.send)
	drain(b.send)

	hub.broadcastMessage(&Message{SessionID: "aaaa", Event: "snapshot"})

	select {
	case <-a.send:
	default:
		t.Error("Client in target session received nothing")
	}
	select {
	case <-b.send:
		t.Error("Client in other session received the broadcast")
	default:
	}
}

func drain(ch chan []byte) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}

func TestWebSocketEndToEnd(t *testing.T) {
	svc := newStubService(t)
	hub := NewHub(svc)
	go hub.Run()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWS(w, r, "e2e1")
	}))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Initial snapshot arrives on connect
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	require.NotNil(t, msg.Snapshot)
	assert.Equal(t, engine.PhaseStartMenu, msg.Snapshot.Phase)

	// An input frame changes state; the update flows back over the stream
	require.NoError(t, conn.WriteJSON(map[string]string{"input": "start"}))

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		conn.SetReadDeadline(deadline)
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("Failed reading snapshot stream: %v", err)
		}
		if msg.Snapshot != nil && msg.Snapshot.Phase == engine.PhasePlaying {
			return
		}
	}
	t.Fatal("Never received the playing-phase snapshot")
}
