// Command validate provides a small CLI that validates rule configuration
// JSON files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Board dimension and preview bounds
//   - Gravity curve sanity (positive intervals, floor below base)
//   - Scoring table shape and monotonicity
//   - Playability heuristics: the level where gravity hits its floor and
//     the per-line point ceiling
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blockfall/blockfall/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single rule configuration JSON file.
// Structural checks come from the engine; this adds playability heuristics
// on top.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config engine.GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if err := engine.ValidateGameConfig(&config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	// Playability heuristics, informational only
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Board: %dx%d, preview %d", config.Cols, config.Rows, config.PreviewCount))
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Lock delay: %.2fs, line flash: %.2fs", config.LockDelay, config.LineFlash))

	g := config.Gravity
	if g.PerLevelSpeedup > 0 {
		floorLevel := int((g.BaseInterval - g.MinInterval) / g.PerLevelSpeedup)
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Gravity: %.2fs/cell at level 0, floor %.2fs reached at level %d", g.BaseInterval, g.MinInterval, floorLevel))
	} else {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Gravity: fixed %.2fs/cell (no per-level speedup)", g.BaseInterval))
	}

	s := config.Scoring
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Scoring: %v points, +%d/+%d drop bonuses, level every %d lines",
		s.LinePoints, s.SoftDropPerCell, s.HardDropPerCell, s.LinesPerLevel))

	// A quad should be worth more than four singles, otherwise the variant
	// never rewards holding out for an I piece.
	if len(s.LinePoints) == 5 && s.LinePoints[4] <= 4*s.LinePoints[1] {
		result.Errors = append(result.Errors, fmt.Sprintf("⚠ line_points[4]=%d does not beat four singles (%d)", s.LinePoints[4], 4*s.LinePoints[1]))
	}

	return result
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
