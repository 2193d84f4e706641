package engine

import (
	"fmt"
	"math/rand"
	"sort"
)

// Engine owns one complete game: playfield, piece supply, hold slot, score,
// phase, and every timer. It is a single logical actor advanced by Step;
// nothing inside it blocks or runs concurrently.
type Engine struct {
	config *GameConfig
	store  HighScoreStore
	src    rand.Source

	phase  GamePhase
	grid   *Grid
	bag    *Bag
	queue  []PieceKind
	active *Piece
	hold   HoldState
	score  ScoreState

	highScore uint64

	fallAccum  float64 // seconds since the last forced fall step
	lockTimer  Timer   // grace period once grounded
	flashTimer Timer   // line-clear flash, movement held while armed
	flashRows  []int   // rows pending removal while the flash runs
	popupTimer Timer   // cosmetic level-up popup, reported to renderers

	softDrop bool
	quit     bool
	revision uint64
}

// NewEngine creates an engine with the provided rule set, starting in the
// menu phase with a clock-seeded piece supply.
func NewEngine(config *GameConfig) (*Engine, error) {
	return NewEngineWithSource(config, nil)
}

// NewEngineWithSource is NewEngine with an explicit randomness source,
// used by tests that need a reproducible piece sequence.
func NewEngineWithSource(config *GameConfig, src rand.Source) (*Engine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}
	e := &Engine{
		config: config,
		src:    src,
		phase:  PhaseStartMenu,
		grid:   NewGrid(config.Rows, config.Cols),
	}
	e.resetCore()
	return e, nil
}

// NewEngineWithDefaults creates an engine with the classic rule set
func NewEngineWithDefaults() *Engine {
	e, err := NewEngine(DefaultConfig())
	if err != nil {
		// DefaultConfig always validates
		panic(fmt.Sprintf("engine: default config invalid: %v", err))
	}
	return e
}

// UseHighScoreStore attaches the high-score collaborator and loads the known
// best immediately. A store that reports nothing leaves the default of 0;
// store failures never reach engine state.
func (e *Engine) UseHighScoreStore(store HighScoreStore) {
	e.store = store
	if store == nil {
		return
	}
	if best, ok := store.Load(); ok && best > e.highScore {
		e.highScore = best
	}
}

// Config returns the active rule set
func (e *Engine) Config() *GameConfig { return e.config }

// Phase returns the current state-machine phase
func (e *Engine) Phase() GamePhase { return e.phase }

// Score returns a copy of the score state
func (e *Engine) Score() ScoreState { return e.score }

// HighScore returns the best score known to this engine
func (e *Engine) HighScore() uint64 { return e.highScore }

// QuitRequested reports whether a quit input has been received
func (e *Engine) QuitRequested() bool { return e.quit }

// Revision returns a counter that increases whenever observable state
// changes, letting broadcasters skip identical frames.
func (e *Engine) Revision() uint64 { return e.revision }

// Step advances the game by one tick: the inputs collected since the last
// tick are applied in fixed priority order, then timers and gravity advance
// by dt seconds. Unrecognized inputs are ignored.
func (e *Engine) Step(dt float64, inputs []InputKind) {
	ordered := append([]InputKind(nil), inputs...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].priority() < ordered[j].priority()
	})

	changed := false
	for _, in := range ordered {
		if !in.Valid() {
			continue
		}
		if e.apply(in) {
			changed = true
		}
	}
	if e.advance(dt) {
		changed = true
	}
	if changed {
		e.revision++
	}
}

// Reset returns the engine to the start menu with all state cleared,
// including any pending quit request
func (e *Engine) Reset() {
	e.resetCore()
	e.quit = false
	e.phase = PhaseStartMenu
}

// apply handles a single input event, returning whether state changed
func (e *Engine) apply(in InputKind) bool {
	if in == InputQuit {
		e.quit = true
		return true
	}

	switch e.phase {
	case PhaseStartMenu:
		if in == InputStart {
			e.startGame()
			return true
		}

	case PhaseGameOver:
		if in == InputStart {
			e.Reset()
			return true
		}

	case PhasePaused:
		if in == InputPause || in == InputStart {
			e.phase = PhasePlaying
			return true
		}

	case PhasePlaying:
		switch in {
		case InputPause:
			e.phase = PhasePaused
			return true
		case InputSoftDropOn:
			changed := !e.softDrop
			e.softDrop = true
			return changed
		case InputSoftDropOff:
			changed := e.softDrop
			e.softDrop = false
			return changed
		}
		// Piece movement is held while cleared rows await removal
		if e.flashTimer.Active() || e.active == nil {
			return false
		}
		switch in {
		case InputHold:
			return e.holdSwap()
		case InputRotateCW:
			return e.pieceInput(func() bool { return e.active.TryRotate(e.grid, Clockwise) })
		case InputRotateCCW:
			return e.pieceInput(func() bool { return e.active.TryRotate(e.grid, CounterClockwise) })
		case InputMoveLeft:
			return e.pieceInput(func() bool { return e.active.TryMove(e.grid, -1, 0) })
		case InputMoveRight:
			return e.pieceInput(func() bool { return e.active.TryMove(e.grid, 1, 0) })
		case InputHardDrop:
			e.hardDrop()
			return true
		}
	}
	return false
}

// pieceInput runs a move or rotation attempt. A success while grounded
// restarts the lock-delay grace; a success that leaves the ground disarms it.
func (e *Engine) pieceInput(try func() bool) bool {
	if !try() {
		return false
	}
	if e.active.IsGrounded(e.grid) {
		if e.lockTimer.Active() {
			e.lockTimer.Start(e.config.LockDelay)
		}
	} else {
		e.lockTimer.Stop()
	}
	return true
}

// advance moves timers and gravity forward by dt seconds while playing.
// No timer advances in any other phase.
func (e *Engine) advance(dt float64) bool {
	if e.phase != PhasePlaying {
		return false
	}

	changed := false
	if e.popupTimer.Active() {
		e.popupTimer.Tick(dt)
		changed = true
	}

	if e.flashTimer.Active() {
		if e.flashTimer.Tick(dt) {
			e.finishLineClear()
		}
		return true
	}
	if e.active == nil {
		e.spawnNext()
		return true
	}

	e.fallAccum += dt
	interval := GravityInterval(e.score.Level, &e.config.Gravity)
	if e.softDrop {
		interval = SoftDropInterval(interval, &e.config.Gravity)
	}
	for e.fallAccum >= interval {
		e.fallAccum -= interval
		if !e.active.TryMove(e.grid, 0, 1) {
			e.fallAccum = 0
			break
		}
		changed = true
		if e.softDrop {
			e.score.AddDropBonus(1, e.config.Scoring.SoftDropPerCell)
			e.bumpHighScore()
		}
	}

	if e.active.IsGrounded(e.grid) {
		// Only timer transitions are observable; the grace period itself
		// ticking down is not part of the snapshot.
		if !e.lockTimer.Active() {
			e.lockTimer.Start(e.config.LockDelay)
			changed = true
		}
		if e.lockTimer.Tick(dt) {
			e.lockActive()
			changed = true
		}
	} else if e.lockTimer.Active() {
		e.lockTimer.Stop()
		changed = true
	}

	return changed
}

// startGame begins play from a clean slate and spawns the first piece
func (e *Engine) startGame() {
	e.resetCore()
	e.phase = PhasePlaying
	e.spawnNext()
}

// resetCore clears grid, bag, hold, score, and timers
func (e *Engine) resetCore() {
	e.grid.Clear()
	e.bag = NewBag(e.src)
	e.queue = e.queue[:0]
	e.fillQueue()
	e.active = nil
	e.hold.Clear()
	e.score = ScoreState{}
	e.fallAccum = 0
	e.lockTimer.Stop()
	e.flashTimer.Stop()
	e.popupTimer.Stop()
	e.flashRows = nil
	e.softDrop = false
}

// spawnNext draws the next kind and places it as the active piece.
// This is the natural spawn event that re-arms the hold slot.
func (e *Engine) spawnNext() {
	e.placeActive(e.dequeue())
	e.hold.NoteSpawn()
}

// placeActive puts a fresh piece at the spawn origin. A spawn that cannot
// fit ends the game without touching the grid.
func (e *Engine) placeActive(kind PieceKind) {
	p := SpawnPiece(kind, e.grid.Cols())
	e.active = p
	e.fallAccum = 0
	e.lockTimer.Stop()
	if !e.grid.ValidPosition(p) {
		e.gameOver()
	}
}

// holdSwap applies the hold input: stash the active kind and continue with
// either the previously held kind or a fresh draw. The swap-spawn does not
// re-arm the slot.
func (e *Engine) holdSwap() bool {
	kind, fromBag, ok := e.hold.Swap(e.active.Kind)
	if !ok {
		return false
	}
	if fromBag {
		kind = e.dequeue()
	}
	e.placeActive(kind)
	return true
}

// hardDrop slams the piece to its resting row, credits the bonus, and locks
// immediately with no lock-delay grace.
func (e *Engine) hardDrop() {
	dist := 0
	for e.active.TryMove(e.grid, 0, 1) {
		dist++
	}
	e.score.AddDropBonus(dist, e.config.Scoring.HardDropPerCell)
	e.bumpHighScore()
	e.lockActive()
}

// lockActive freezes the piece into the grid. Full rows start the flash and
// hold the next spawn; a lock that cannot fit (above the visible top or on
// an occupied cell) ends the game.
func (e *Engine) lockActive() {
	if err := e.grid.Lock(e.active); err != nil {
		e.gameOver()
		return
	}
	e.active = nil
	e.lockTimer.Stop()
	e.fallAccum = 0

	rows := e.grid.FullRows()
	if len(rows) > 0 {
		e.flashRows = rows
		e.flashTimer.Start(e.config.LineFlash)
		return
	}
	e.spawnNext()
}

// finishLineClear runs when the flash expires: remove the rows, score them,
// and resume with the next spawn.
func (e *Engine) finishLineClear() {
	rows := e.flashRows
	e.flashRows = nil
	e.grid.ClearRows(rows)
	if e.score.ApplyLineClear(len(rows), &e.config.Scoring) {
		e.popupTimer.Start(e.config.LevelUpPopup)
	}
	e.bumpHighScore()
	e.spawnNext()
}

// gameOver is the terminal transition; a designed state, not an error
func (e *Engine) gameOver() {
	e.phase = PhaseGameOver
	e.lockTimer.Stop()
	e.flashTimer.Stop()
	e.flashRows = nil
	e.softDrop = false
	e.bumpHighScore()
}

// bumpHighScore persists the score whenever it beats the known best
func (e *Engine) bumpHighScore() {
	if e.score.Score > e.highScore {
		e.highScore = e.score.Score
		if e.store != nil {
			e.store.Save(e.highScore)
		}
	}
}

// dequeue pops the next kind from the preview queue, keeping it topped up
func (e *Engine) dequeue() PieceKind {
	e.fillQueue()
	kind := e.queue[0]
	e.queue = e.queue[1:]
	e.fillQueue()
	return kind
}

func (e *Engine) fillQueue() {
	for len(e.queue) < e.config.PreviewCount {
		e.queue = append(e.queue, e.bag.Next())
	}
}

// Snapshot builds the read-only per-tick view for renderers
func (e *Engine) Snapshot() *Snapshot {
	s := &Snapshot{
		Revision:         e.revision,
		Phase:            e.phase,
		Rows:             e.grid.Rows(),
		Cols:             e.grid.Cols(),
		Cells:            e.grid.Snapshot(),
		Held:             e.hold.Held,
		Next:             append([]PieceKind(nil), e.queue...),
		Score:            e.score.Score,
		Level:            e.score.Level,
		Lines:            e.score.LinesClearedTotal,
		HighScore:        e.highScore,
		FlashRemaining:   e.flashTimer.Remaining(),
		LevelUpRemaining: e.popupTimer.Remaining(),
	}
	if len(e.flashRows) > 0 {
		s.FlashRows = append([]int(nil), e.flashRows...)
	}
	if e.active != nil {
		cells := e.active.Cells()
		s.Active = append([]Position(nil), cells[:]...)
		s.ActiveKind = e.active.Kind
		ghost := e.active.Ghost(e.grid).Cells()
		s.Ghost = append([]Position(nil), ghost[:]...)
	}
	return s
}
