// Package session provides session management for Blockfall.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Session lifecycle management, including each session's game clock
//   - Session metadata persistence
//   - High score persistence
//
// Core Types:
//
// Manager is the main session manager that handles all session operations.
// Each created session owns a running engine driven at the fixed tick rate;
// deleting a session stops its clock.
//
// Session Identifiers:
//
// Sessions use 4-character hex IDs for easy reference. The manager ensures
// IDs are unique and generates them with cryptographic randomness.
//
// Persistence:
//
// Only session metadata (ID, rule set, timestamps) is persisted; a session
// revived after a restart begins a fresh game at the start menu. The high
// score is persisted separately by FileHighScoreStore as a single integer
// in a plain text file, shared across all sessions.
//
// Usage:
//
//	manager := session.NewManager()
//	manager.UseHighScoreStore(session.NewFileHighScoreStore("highscore.txt"))
//
//	sess, err := manager.Create("", config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess, err = manager.Get(sessionID)
//
// Cleanup:
//
// Sessions can be explicitly deleted or may expire based on inactivity.
// CleanupExpiredSessions removes stale sessions and stops their clocks.
package session
