package engine

// ApplyLineClear converts a cleared-line count into points and level
// progression: base points from the configured table multiplied by
// (level+1), then the level recomputed from the new line total. Returns
// true when the clear crossed a level boundary. Drop bonuses are credited
// separately by the clock and never pick up the line-clear multiplier.
func (s *ScoreState) ApplyLineClear(n int, cfg *ScoringConfig) bool {
	if n <= 0 {
		return false
	}
	if n > MaxLinesPerClear {
		n = MaxLinesPerClear
	}
	s.Score += cfg.LinePoints[n] * uint64(s.Level+1)
	s.LinesClearedTotal += uint32(n)
	oldLevel := s.Level
	s.Level = s.LinesClearedTotal / cfg.LinesPerLevel
	return s.Level > oldLevel
}

// AddDropBonus credits soft/hard drop points for the given number of cells
func (s *ScoreState) AddDropBonus(cells int, perCell uint64) {
	if cells > 0 {
		s.Score += uint64(cells) * perCell
	}
}

// GravityInterval returns the seconds per forced fall step at a level:
// strictly decreasing as the level rises, floored at the configured minimum.
func GravityInterval(level uint32, g *GravityConfig) float64 {
	interval := g.BaseInterval - float64(level)*g.PerLevelSpeedup
	if interval < g.MinInterval {
		interval = g.MinInterval
	}
	return interval
}

// SoftDropInterval accelerates a gravity interval while soft drop is held.
// The accelerated interval is the smaller of the configured fixed interval
// and the scaled-down natural one, so soft drop never slows a fast level.
func SoftDropInterval(interval float64, g *GravityConfig) float64 {
	scaled := interval * g.SoftDropFactor
	if scaled > g.SoftDropInterval {
		return g.SoftDropInterval
	}
	return scaled
}
