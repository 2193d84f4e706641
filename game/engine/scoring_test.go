package engine

import "testing"

func TestApplyLineClearPointsTable(t *testing.T) {
	cfg := &DefaultConfig().Scoring

	cases := []struct {
		lines int
		level uint32
		want  uint64
	}{
		{1, 0, 40},
		{2, 0, 100},
		{3, 0, 300},
		{4, 0, 1200},
		{1, 1, 80},
		{4, 3, 4800},
	}
	for _, c := range cases {
		s := ScoreState{Level: c.level, LinesClearedTotal: c.level * cfg.LinesPerLevel}
		s.ApplyLineClear(c.lines, cfg)
		if s.Score != c.want {
			t.Errorf("%d lines at level %d scored %d, want %d", c.lines, c.level, s.Score, c.want)
		}
	}
}

func TestApplyLineClearLevelProgression(t *testing.T) {
	cfg := &DefaultConfig().Scoring
	var s ScoreState

	// 9 lines stay at level 0, the 10th crosses
	for i := 0; i < 3; i++ {
		if s.ApplyLineClear(3, cfg) {
			t.Fatalf("leveled up at %d total lines", s.LinesClearedTotal)
		}
	}
	if !s.ApplyLineClear(1, cfg) {
		t.Fatal("10th line should level up")
	}
	if s.Level != 1 || s.LinesClearedTotal != 10 {
		t.Errorf("level=%d lines=%d, want 1 and 10", s.Level, s.LinesClearedTotal)
	}
}

func TestApplyLineClearZeroIsNoOp(t *testing.T) {
	cfg := &DefaultConfig().Scoring
	s := ScoreState{Score: 40}
	if s.ApplyLineClear(0, cfg) {
		t.Error("zero lines reported a level up")
	}
	if s.Score != 40 || s.LinesClearedTotal != 0 {
		t.Errorf("zero-line clear changed state: %+v", s)
	}
}

func TestAddDropBonus(t *testing.T) {
	var s ScoreState
	s.AddDropBonus(5, 1) // soft drop
	s.AddDropBonus(18, 2) // hard drop
	s.AddDropBonus(-1, 2)
	if s.Score != 41 {
		t.Errorf("score = %d, want 41", s.Score)
	}
}

func TestGravityIntervalCurve(t *testing.T) {
	g := &DefaultConfig().Gravity

	if got := GravityInterval(0, g); got != 0.8 {
		t.Errorf("level 0 interval = %v, want 0.8", got)
	}
	if got := GravityInterval(5, g); got < 0.449 || got > 0.451 {
		t.Errorf("level 5 interval = %v, want 0.45", got)
	}
	// Deep levels hit the floor
	if got := GravityInterval(30, g); got != 0.05 {
		t.Errorf("level 30 interval = %v, want floor 0.05", got)
	}
}

func TestSoftDropIntervalNeverSlower(t *testing.T) {
	g := &DefaultConfig().Gravity

	// Slow level: the fixed cap wins
	if got := SoftDropInterval(0.8, g); got != 0.02 {
		t.Errorf("soft drop at 0.8 = %v, want 0.02", got)
	}
	// Fast level: the scaled interval is already under the cap
	if got := SoftDropInterval(0.05, g); got != 0.0125 {
		t.Errorf("soft drop at 0.05 = %v, want 0.0125", got)
	}
}
