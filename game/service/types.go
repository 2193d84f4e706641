package service

import (
	"time"

	"github.com/blockfall/blockfall/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	Snapshot       *engine.Snapshot   `json:"snapshot"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// InputResult is the outcome of pushing one or more inputs into a session.
// Inputs are applied atomically between ticks; the snapshot reflects the
// state after they landed.
type InputResult struct {
	Accepted int              `json:"accepted"`
	Rejected []string         `json:"rejected,omitempty"`
	Snapshot *engine.Snapshot `json:"snapshot"`
}

// HighScoreInfo is the globally persisted best score
type HighScoreInfo struct {
	HighScore uint64 `json:"high_score"`
}

// ConfigInfo provides information about a game rule set
type ConfigInfo struct {
	Filename     string `json:"filename"`
	ConfigID     string `json:"config_id"` // The identifier to use for session creation
	Name         string `json:"name"`      // Display name
	Description  string `json:"description"`
	Rows         int    `json:"rows"`
	Cols         int    `json:"cols"`
	PreviewCount int    `json:"preview_count"`
}
