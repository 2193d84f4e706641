// Package engine implements the core rules of the Blockfall falling-block
// puzzle game.
//
// The engine package contains everything that makes the game the game:
//   - The piece catalog: seven tetromino kinds with pure rotation math
//   - The 7-bag randomizer with its fairness guarantee
//   - The playfield grid with collision and line-clear queries
//   - The active piece controller: movement, wall-kick rotation, ghost
//   - The hold slot with its swap-once-per-spawn rule
//   - The game clock: gravity, lock delay, flash timing, phase machine
//   - Scoring and level progression
//
// Core Types:
//
// Engine is the single entry point: it owns one game and advances it one
// tick at a time via Step. GameConfig defines the rule set (board size,
// gravity curve, timings, scoring table) loaded from JSON files and
// validated by ValidateGameConfig. Snapshot is the read-only view handed
// to renderers.
//
// Usage:
//
//	eng, err := engine.NewEngine(engine.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// 60 ticks per second; inputs collected since the previous tick
//	eng.Step(1.0/60, []engine.InputKind{engine.InputStart})
//	snap := eng.Snapshot()
//
// Concurrency:
//
// An Engine is a single logical actor with no internal locking. Callers
// serialize access; Step never blocks, and all timing is driven by the dt
// argument rather than the wall clock, so the whole core is testable
// without sleeping.
//
// Error Handling:
//
// Rejected moves and rotations are ordinary false results, not errors.
// A lock or spawn that cannot fit transitions the game to its terminal
// GameOver phase. Unrecognized inputs are ignored, and failures in the
// high-score collaborator never reach engine state.
package engine
