package service

import (
	"context"
	"time"

	"github.com/blockfall/blockfall/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	PushInput(ctx context.Context, sessionID, input string) (*InputResult, error)
	PushInputs(ctx context.Context, sessionID string, inputs []string) (*InputResult, error)
	Restart(ctx context.Context, sessionID string) (*engine.Snapshot, error)

	// Game State
	GetSnapshot(ctx context.Context, sessionID string) (*engine.Snapshot, error)
	Subscribe(ctx context.Context, sessionID string) (<-chan *engine.Snapshot, func(), error)
	GetHighScore(ctx context.Context) (*HighScoreInfo, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error)
	SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, config *engine.GameConfig) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id string, config *engine.GameConfig) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
	HighScore() uint64
}

// ConfigManager handles game rule set loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.GameConfig
	SaveConfig(name string, config *engine.GameConfig) error
}

// Session represents an active game session
type Session struct {
	ID             string
	Runner         *Runner
	Config         *engine.GameConfig
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
