// Command analyze prints quick, human-readable heuristics about rule
// configuration files in the project's configs directory. It summarizes board
// dimensions, the gravity curve at a few sample levels, scoring efficiency,
// and highlights pacing problems like a soft drop that is slower than natural
// gravity at high levels.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AnalysisConfig is a light struct for reading config files used by analysis.
type AnalysisConfig struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Rows         int    `json:"rows"`
	Cols         int    `json:"cols"`
	PreviewCount int    `json:"preview_count"`
	Gravity      struct {
		BaseInterval     float64 `json:"base_interval"`
		PerLevelSpeedup  float64 `json:"per_level_speedup"`
		MinInterval      float64 `json:"min_interval"`
		SoftDropInterval float64 `json:"soft_drop_interval"`
		SoftDropFactor   float64 `json:"soft_drop_factor"`
	} `json:"gravity"`
	LockDelay float64 `json:"lock_delay"`
	Scoring   struct {
		LinePoints      []uint64 `json:"line_points"`
		SoftDropPerCell uint64   `json:"soft_drop_per_cell"`
		HardDropPerCell uint64   `json:"hard_drop_per_cell"`
		LinesPerLevel   uint32   `json:"lines_per_level"`
	} `json:"scoring"`
}

func main() {
	configs := []string{
		"classic.json",
		"zen.json",
	}

	for _, configFile := range configs {
		fmt.Printf("\n=== Analyzing %s ===\n", configFile)
		analyzeConfig(filepath.Join("configs", configFile))
	}
}

func analyzeConfig(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	var config AnalysisConfig
	if err := json.Unmarshal(data, &config); err != nil {
		fmt.Printf("Error parsing JSON: %v\n", err)
		return
	}

	fmt.Printf("Name: %s\n", config.Name)
	fmt.Printf("Board: %d x %d\n", config.Cols, config.Rows)
	fmt.Printf("Preview: %d pieces\n", config.PreviewCount)
	fmt.Printf("Lock Delay: %.2fs\n", config.LockDelay)

	// Gravity curve at sample levels
	fmt.Println("Gravity curve (seconds per cell):")
	for _, level := range []int{0, 5, 10, 15, 20} {
		fmt.Printf("   level %2d: %.3fs\n", level, intervalAt(config, level))
	}
	if config.Gravity.PerLevelSpeedup > 0 {
		floorLevel := int((config.Gravity.BaseInterval - config.Gravity.MinInterval) / config.Gravity.PerLevelSpeedup)
		fmt.Printf("Gravity floor (%.3fs) reached at level %d\n", config.Gravity.MinInterval, floorLevel)
	} else {
		fmt.Println("Gravity is fixed (no per-level speedup)")
	}

	// A full natural drop from the top row at level 0
	dropTime := float64(config.Rows) * config.Gravity.BaseInterval
	fmt.Printf("Full drop at level 0: %.1fs (%d rows)\n", dropTime, config.Rows)

	// Scoring efficiency per line at level 0
	if len(config.Scoring.LinePoints) == 5 {
		fmt.Println("Points per line at level 0:")
		for n := 1; n <= 4; n++ {
			pts := config.Scoring.LinePoints[n]
			fmt.Printf("   %d lines: %4d total (%.0f per line)\n", n, pts, float64(pts)/float64(n))
		}

		quad := config.Scoring.LinePoints[4]
		singles := 4 * config.Scoring.LinePoints[1]
		if quad <= singles {
			fmt.Printf("⚠️  WARNING: a quad (%d) is worth no more than four singles (%d)\n", quad, singles)
			fmt.Println("   The variant never rewards saving an I piece")
		} else {
			fmt.Printf("✅ Quad premium: %d vs %d for four singles (%.1fx)\n", quad, singles, float64(quad)/float64(singles))
		}
	}

	// Soft drop has to stay meaningfully faster than natural gravity
	softAtFloor := config.Gravity.MinInterval * config.Gravity.SoftDropFactor
	if softAtFloor > config.Gravity.SoftDropInterval {
		softAtFloor = config.Gravity.SoftDropInterval
	}
	if config.Gravity.SoftDropInterval >= config.Gravity.MinInterval {
		fmt.Printf("⚠️  WARNING: soft drop cap (%.3fs) is no faster than the gravity floor (%.3fs)\n",
			config.Gravity.SoftDropInterval, config.Gravity.MinInterval)
	} else {
		fmt.Printf("✅ Soft drop at the gravity floor: %.3fs per cell\n", softAtFloor)
	}
}

// intervalAt computes the natural gravity interval at a level, clamped to the
// configured floor.
func intervalAt(config AnalysisConfig, level int) float64 {
	interval := config.Gravity.BaseInterval - float64(level)*config.Gravity.PerLevelSpeedup
	if interval < config.Gravity.MinInterval {
		interval = config.Gravity.MinInterval
	}
	return interval
}
