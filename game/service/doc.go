// Package service provides the business logic layer for Blockfall.
//
// The service package implements:
//   - Multi-session game management
//   - The fixed-rate session clock (Runner)
//   - Input validation and delivery
//   - Rule set loading and listing
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game
// operations. SessionManager handles session creation, retrieval, and
// lifecycle. ConfigManager manages rule set loading and validation.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP)
// and the game engine, providing session isolation and orchestration. Each
// session owns one engine instance driven by a Runner: a goroutine ticking
// at 60Hz. The engine itself is a single actor; the Runner serializes clock
// ticks and transport inputs through one mutex, and fans out snapshots to
// subscribers whenever observable state changes.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	svc := service.NewGameService(sessionMgr, configMgr)
//
//	info, _ := svc.CreateSession(ctx, "classic")
//	svc.PushInput(ctx, info.ID, "start")
//	snap, _ := svc.GetSnapshot(ctx, info.ID)
package service
