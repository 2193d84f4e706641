package engine

import "fmt"

// GravityConfig shapes the fall-speed curve. All durations are seconds.
type GravityConfig struct {
	BaseInterval     float64 `json:"base_interval"`      // seconds per cell at level 0
	PerLevelSpeedup  float64 `json:"per_level_speedup"`  // interval reduction per level
	MinInterval      float64 `json:"min_interval"`       // floor, never faster than this
	SoftDropInterval float64 `json:"soft_drop_interval"` // cap while soft drop is held
	SoftDropFactor   float64 `json:"soft_drop_factor"`   // scale applied to the natural interval
}

// ScoringConfig is the fixed points table plus drop bonuses
type ScoringConfig struct {
	LinePoints      []uint64 `json:"line_points"` // indexed by lines cleared, 0..4
	SoftDropPerCell uint64   `json:"soft_drop_per_cell"`
	HardDropPerCell uint64   `json:"hard_drop_per_cell"`
	LinesPerLevel   uint32   `json:"lines_per_level"`
}

// GameConfig is a complete rule set for one game variant, loaded from JSON
type GameConfig struct {
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Rows         int           `json:"rows"`
	Cols         int           `json:"cols"`
	PreviewCount int           `json:"preview_count"`
	Gravity      GravityConfig `json:"gravity"`
	LockDelay    float64       `json:"lock_delay"`      // grace seconds once grounded
	LineFlash    float64       `json:"line_flash"`      // line-clear flash seconds
	LevelUpPopup float64       `json:"level_up_popup"`  // cosmetic popup seconds
	Scoring      ScoringConfig `json:"scoring"`
}

// DefaultConfig returns the classic rule set
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Name:         "Classic",
		Description:  "Classic rules: 10x20 board, 7-bag, half-second lock delay",
		Rows:         20,
		Cols:         10,
		PreviewCount: 5,
		Gravity: GravityConfig{
			BaseInterval:     0.8,
			PerLevelSpeedup:  0.07,
			MinInterval:      0.05,
			SoftDropInterval: 0.02,
			SoftDropFactor:   0.25,
		},
		LockDelay:    0.5,
		LineFlash:    0.35,
		LevelUpPopup: 1.2,
		Scoring: ScoringConfig{
			LinePoints:      []uint64{0, 40, 100, 300, 1200},
			SoftDropPerCell: 1,
			HardDropPerCell: 2,
			LinesPerLevel:   10,
		},
	}
}

// ValidateGameConfig validates a rule set for correctness and playability
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Rows < MinRows || config.Rows > MaxRows {
		return fmt.Errorf("config validation: rows must be between %d and %d, got %d", MinRows, MaxRows, config.Rows)
	}
	if config.Cols < MinCols || config.Cols > MaxCols {
		return fmt.Errorf("config validation: cols must be between %d and %d, got %d", MinCols, MaxCols, config.Cols)
	}
	if config.PreviewCount < MinPreview || config.PreviewCount > MaxPreview {
		return fmt.Errorf("config validation: preview_count must be between %d and %d, got %d", MinPreview, MaxPreview, config.PreviewCount)
	}

	g := config.Gravity
	if g.BaseInterval <= 0 {
		return fmt.Errorf("config validation: gravity.base_interval must be positive, got %v", g.BaseInterval)
	}
	if g.PerLevelSpeedup < 0 {
		return fmt.Errorf("config validation: gravity.per_level_speedup cannot be negative, got %v", g.PerLevelSpeedup)
	}
	if g.MinInterval <= 0 || g.MinInterval > g.BaseInterval {
		return fmt.Errorf("config validation: gravity.min_interval must be in (0, base_interval], got %v", g.MinInterval)
	}
	if g.SoftDropInterval <= 0 {
		return fmt.Errorf("config validation: gravity.soft_drop_interval must be positive, got %v", g.SoftDropInterval)
	}
	if g.SoftDropFactor <= 0 || g.SoftDropFactor > 1 {
		return fmt.Errorf("config validation: gravity.soft_drop_factor must be in (0, 1], got %v", g.SoftDropFactor)
	}

	if config.LockDelay < 0 {
		return fmt.Errorf("config validation: lock_delay cannot be negative, got %v", config.LockDelay)
	}
	if config.LineFlash < 0 {
		return fmt.Errorf("config validation: line_flash cannot be negative, got %v", config.LineFlash)
	}
	if config.LevelUpPopup < 0 {
		return fmt.Errorf("config validation: level_up_popup cannot be negative, got %v", config.LevelUpPopup)
	}

	s := config.Scoring
	if len(s.LinePoints) != MaxLinesPerClear+1 {
		return fmt.Errorf("config validation: scoring.line_points must have %d entries, got %d", MaxLinesPerClear+1, len(s.LinePoints))
	}
	if s.LinePoints[0] != 0 {
		return fmt.Errorf("config validation: scoring.line_points[0] must be 0, got %d", s.LinePoints[0])
	}
	for i := 1; i < len(s.LinePoints); i++ {
		if s.LinePoints[i] < s.LinePoints[i-1] {
			return fmt.Errorf("config validation: scoring.line_points must be non-decreasing, got %v", s.LinePoints)
		}
	}
	if s.LinesPerLevel == 0 {
		return fmt.Errorf("config validation: scoring.lines_per_level must be positive")
	}

	return nil
}
