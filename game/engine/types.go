package engine

// PieceKind identifies one of the seven tetromino shapes
type PieceKind string

const (
	PieceI PieceKind = "I"
	PieceO PieceKind = "O"
	PieceT PieceKind = "T"
	PieceS PieceKind = "S"
	PieceZ PieceKind = "Z"
	PieceJ PieceKind = "J"
	PieceL PieceKind = "L"

	// Validation constants
	MinRows    = 8
	MaxRows    = 60
	MinCols    = 6
	MaxCols    = 30
	MinPreview = 1
	MaxPreview = 7

	// MaxLinesPerClear is the most rows a single piece can complete
	MaxLinesPerClear = 4
)

// Kinds lists all piece kinds in catalog order
var Kinds = [7]PieceKind{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL}

// Position represents x,y coordinates on the playfield.
// Rows grow downward; y may be negative for cells above the visible top.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Piece is a falling tetromino: a kind plus origin and rotation state.
// Cells derive from the catalog offsets rotated about the 4x4 pivot and
// translated by the origin.
type Piece struct {
	Kind     PieceKind `json:"kind"`
	X        int       `json:"x"`
	Y        int       `json:"y"`
	Rotation int       `json:"rotation"` // 0..3, quarter turns clockwise
}

// GamePhase is the overall state-machine phase. Exactly one is active;
// transitions are explicit events.
type GamePhase string

const (
	PhaseStartMenu GamePhase = "start_menu"
	PhasePlaying   GamePhase = "playing"
	PhasePaused    GamePhase = "paused"
	PhaseGameOver  GamePhase = "game_over"
)

// InputKind is an abstract input event. The core is agnostic to physical
// key bindings; transports and clients translate their events to these.
type InputKind string

const (
	InputMoveLeft    InputKind = "move_left"
	InputMoveRight   InputKind = "move_right"
	InputRotateCW    InputKind = "rotate_cw"
	InputRotateCCW   InputKind = "rotate_ccw"
	InputSoftDropOn  InputKind = "soft_drop_on"
	InputSoftDropOff InputKind = "soft_drop_off"
	InputHardDrop    InputKind = "hard_drop"
	InputHold        InputKind = "hold"
	InputPause       InputKind = "pause"
	InputStart       InputKind = "start"
	InputQuit        InputKind = "quit"
)

// priority orders inputs within a single tick: system events, then hold,
// rotation, horizontal movement, soft drop, hard drop. A fixed order removes
// order-dependent ambiguity inside one frame.
func (k InputKind) priority() int {
	switch k {
	case InputQuit:
		return 0
	case InputPause, InputStart:
		return 1
	case InputHold:
		return 2
	case InputRotateCW, InputRotateCCW:
		return 3
	case InputMoveLeft, InputMoveRight:
		return 4
	case InputSoftDropOn, InputSoftDropOff:
		return 5
	case InputHardDrop:
		return 6
	default:
		return 7
	}
}

// Valid reports whether the input is one of the recognized events
func (k InputKind) Valid() bool {
	switch k {
	case InputMoveLeft, InputMoveRight, InputRotateCW, InputRotateCCW,
		InputSoftDropOn, InputSoftDropOff, InputHardDrop, InputHold,
		InputPause, InputStart, InputQuit:
		return true
	}
	return false
}

// AllInputs lists every recognized input name, for boundary error messages
func AllInputs() []InputKind {
	return []InputKind{
		InputMoveLeft, InputMoveRight, InputRotateCW, InputRotateCCW,
		InputSoftDropOn, InputSoftDropOff, InputHardDrop, InputHold,
		InputPause, InputStart, InputQuit,
	}
}

// HoldState is the single stash slot. UsedThisSpawn blocks a second swap
// until the next natural spawn re-arms it.
type HoldState struct {
	Held          PieceKind `json:"held"`
	UsedThisSpawn bool      `json:"used_this_spawn"`
}

// ScoreState tracks points, level, and cleared-line totals.
// Score is monotonically non-decreasing; level derives from total lines.
type ScoreState struct {
	Score             uint64 `json:"score"`
	Level             uint32 `json:"level"`
	LinesClearedTotal uint32 `json:"lines_cleared_total"`
}

// HighScoreStore is the persistence collaborator for the single high-score
// scalar. Implementations must not fail the caller: absence is reported via
// the bool on Load, and Save errors stay inside the store.
type HighScoreStore interface {
	Load() (uint64, bool)
	Save(uint64)
}

// Snapshot is the read-only view handed to renderers each tick. It carries
// everything a presentation layer needs to draw a frame and nothing it can
// mutate back into the core.
type Snapshot struct {
	Revision uint64    `json:"revision"`
	Phase    GamePhase `json:"phase"`

	Rows  int           `json:"rows"`
	Cols  int           `json:"cols"`
	Cells [][]PieceKind `json:"cells"`

	Active     []Position `json:"active,omitempty"`
	ActiveKind PieceKind  `json:"active_kind,omitempty"`
	Ghost      []Position `json:"ghost,omitempty"`

	Held PieceKind   `json:"held,omitempty"`
	Next []PieceKind `json:"next"`

	Score     uint64 `json:"score"`
	Level     uint32 `json:"level"`
	Lines     uint32 `json:"lines"`
	HighScore uint64 `json:"high_score"`

	FlashRows      []int   `json:"flash_rows,omitempty"`
	FlashRemaining float64 `json:"flash_remaining,omitempty"`

	LevelUpRemaining float64 `json:"level_up_remaining,omitempty"`
}
