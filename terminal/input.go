package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/blockfall/blockfall/game/engine"
)

// MapKey translates a terminal key event to an abstract input event.
// The second return is false for keys the game does not use.
func MapKey(ev *tcell.EventKey) (engine.InputKind, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return engine.InputMoveLeft, true
	case tcell.KeyRight:
		return engine.InputMoveRight, true
	case tcell.KeyUp:
		return engine.InputRotateCW, true
	case tcell.KeyDown:
		return engine.InputSoftDropOn, true
	case tcell.KeyEnter:
		return engine.InputStart, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return engine.InputQuit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'x', 'X':
			return engine.InputRotateCW, true
		case 'z', 'Z':
			return engine.InputRotateCCW, true
		case ' ':
			return engine.InputHardDrop, true
		case 'c', 'C':
			return engine.InputHold, true
		case 'p', 'P':
			return engine.InputPause, true
		case 'q', 'Q':
			return engine.InputQuit, true
		}
	}
	return "", false
}
