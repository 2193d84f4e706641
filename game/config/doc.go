// Package config provides rule set management for Blockfall.
//
// The config package handles:
//   - Loading game rule sets from JSON files
//   - Rule set validation and caching
//   - Default rule set management
//   - Rule set discovery and listing
//
// Configuration Format:
//
// Rule sets are stored as JSON files in the configs directory. Each file
// defines a complete game variant:
//   - Board dimensions and preview queue length
//   - The gravity curve (base interval, per-level speedup, floor)
//   - Lock delay, line flash, and level-up popup durations
//   - The scoring table and drop bonuses
//
// Available Configurations:
//
//   - classic: standard 10x20 rules with the familiar scoring table
//   - zen: slow gravity and a generous lock delay for relaxed play
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific rule set
//	gameConfig, err := manager.LoadConfig("zen")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default rule set
//	defaultConfig := manager.GetDefault()
//
//	// List available rule sets
//	configs, err := manager.ListConfigs()
//
// Validation:
//
// All rule sets are validated on load: board dimensions within bounds, a
// positive monotone gravity curve, a non-decreasing five-entry points table,
// and non-negative delays. Invalid files are skipped by ListConfigs and
// rejected by LoadConfig.
package config
