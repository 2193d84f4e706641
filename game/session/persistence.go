package session

import (
	"time"

	"github.com/blockfall/blockfall/game/service"
)

// SessionPersistence defines the interface for persisting session metadata.
// Only metadata survives a restart: a revived session starts a fresh game at
// the start menu rather than resuming mid-fall.
type SessionPersistence interface {
	// Save persists a session's metadata to storage
	Save(session *service.Session) error

	// Load retrieves session metadata from storage by ID
	Load(id string) (*PersistedSessionData, error)

	// Delete removes a session from storage
	Delete(id string) error

	// ListAll returns all persisted session IDs
	ListAll() ([]string, error)

	// Exists checks if a session exists in storage
	Exists(id string) bool
}

// PersistedSessionData is the JSON structure for persisted session metadata
type PersistedSessionData struct {
	ID             string    `json:"id"`
	ConfigName     string    `json:"config_name"`
	CreatedAt      time.Time `json:"created_at"`
	LastAccessedAt time.Time `json:"last_accessed_at"`
	HighScore      uint64    `json:"high_score"`
}
