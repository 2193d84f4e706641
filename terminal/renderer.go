package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/blockfall/blockfall/game/engine"
)

const cellWidth = 2 // terminal cells per board column

var pieceColors = map[engine.PieceKind]tcell.Color{
	engine.PieceI: tcell.ColorAqua,
	engine.PieceO: tcell.ColorYellow,
	engine.PieceT: tcell.ColorPurple,
	engine.PieceS: tcell.ColorGreen,
	engine.PieceZ: tcell.ColorRed,
	engine.PieceJ: tcell.ColorBlue,
	engine.PieceL: tcell.NewRGBColor(255, 165, 0),
}

// Renderer draws snapshots onto a tcell screen. The board occupies the
// left side, a stats panel the right.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders a full frame for the snapshot and flushes it to the
// terminal.
func (r *Renderer) Draw(snap *engine.Snapshot) {
	r.screen.Clear()

	boardW := snap.Cols*cellWidth + 2
	boardH := snap.Rows + 2
	sw, sh := r.screen.Size()
	ox := (sw - boardW - panelWidth) / 2
	if ox < 0 {
		ox = 0
	}
	oy := (sh - boardH) / 2
	if oy < 0 {
		oy = 0
	}

	r.drawFrame(ox, oy, boardW, boardH)

	switch snap.Phase {
	case engine.PhaseStartMenu:
		r.drawMenu(snap, ox, oy, boardW, boardH)
	default:
		r.drawBoard(snap, ox+1, oy+1)
		if snap.Phase == engine.PhasePaused {
			r.drawCentered(ox, oy+boardH/2, boardW, "PAUSED", tcell.StyleDefault.Bold(true))
		}
		if snap.Phase == engine.PhaseGameOver {
			r.drawCentered(ox, oy+boardH/2-1, boardW, "GAME OVER", tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
			r.drawCentered(ox, oy+boardH/2+1, boardW, "enter: menu  q: quit", tcell.StyleDefault)
		}
	}

	r.drawPanel(snap, ox+boardW+2, oy)

	if snap.LevelUpRemaining > 0 && snap.Phase == engine.PhasePlaying {
		msg := fmt.Sprintf(" LEVEL %d ", snap.Level)
		r.drawCentered(ox, oy+boardH/2, boardW, msg, tcell.StyleDefault.Reverse(true).Bold(true))
	}

	r.screen.Show()
}

func (r *Renderer) drawFrame(x, y, w, h int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i := 1; i < w-1; i++ {
		r.screen.SetContent(x+i, y, '─', nil, style)
		r.screen.SetContent(x+i, y+h-1, '─', nil, style)
	}
	for j := 1; j < h-1; j++ {
		r.screen.SetContent(x, y+j, '│', nil, style)
		r.screen.SetContent(x+w-1, y+j, '│', nil, style)
	}
	r.screen.SetContent(x, y, '┌', nil, style)
	r.screen.SetContent(x+w-1, y, '┐', nil, style)
	r.screen.SetContent(x, y+h-1, '└', nil, style)
	r.screen.SetContent(x+w-1, y+h-1, '┘', nil, style)
}

func (r *Renderer) drawBoard(snap *engine.Snapshot, ox, oy int) {
	flash := make(map[int]bool, len(snap.FlashRows))
	for _, row := range snap.FlashRows {
		flash[row] = true
	}
	active := make(map[engine.Position]bool, len(snap.Active))
	for _, p := range snap.Active {
		active[p] = true
	}
	ghost := make(map[engine.Position]bool, len(snap.Ghost))
	for _, p := range snap.Ghost {
		ghost[p] = true
	}

	for y := 0; y < snap.Rows; y++ {
		for x := 0; x < snap.Cols; x++ {
			pos := engine.Position{X: x, Y: y}
			sx := ox + x*cellWidth
			sy := oy + y

			var ch rune = ' '
			style := tcell.StyleDefault
			switch {
			case flash[y]:
				ch = '█'
				style = style.Foreground(tcell.ColorWhite)
			case active[pos]:
				ch = '█'
				style = style.Foreground(pieceColors[snap.ActiveKind])
			case snap.Cells[y][x] != "":
				ch = '█'
				style = style.Foreground(pieceColors[snap.Cells[y][x]])
			case ghost[pos]:
				ch = '░'
				style = style.Foreground(pieceColors[snap.ActiveKind]).Dim(true)
			}

			for i := 0; i < cellWidth; i++ {
				r.screen.SetContent(sx+i, sy, ch, nil, style)
			}
		}
	}
}

const panelWidth = 18

func (r *Renderer) drawPanel(snap *engine.Snapshot, ox, oy int) {
	bold := tcell.StyleDefault.Bold(true)
	plain := tcell.StyleDefault

	r.drawText(ox, oy, "BLOCKFALL", bold)
	r.drawText(ox, oy+2, fmt.Sprintf("Score %8d", snap.Score), plain)
	r.drawText(ox, oy+3, fmt.Sprintf("Level %8d", snap.Level), plain)
	r.drawText(ox, oy+4, fmt.Sprintf("Lines %8d", snap.Lines), plain)
	r.drawText(ox, oy+5, fmt.Sprintf("Best  %8d", snap.HighScore), plain)

	r.drawText(ox, oy+7, "Next", bold)
	for i, kind := range snap.Next {
		style := tcell.StyleDefault.Foreground(pieceColors[kind])
		r.drawText(ox+2, oy+8+i, string(kind), style)
	}

	r.drawText(ox, oy+9+len(snap.Next), "Held", bold)
	if snap.Held != "" {
		style := tcell.StyleDefault.Foreground(pieceColors[snap.Held])
		r.drawText(ox+2, oy+10+len(snap.Next), string(snap.Held), style)
	} else {
		r.drawText(ox+2, oy+10+len(snap.Next), "-", plain)
	}

	helpY := oy + 12 + len(snap.Next)
	help := []string{
		"←/→  move",
		"↑/x  rotate cw",
		"z    rotate ccw",
		"↓    soft drop",
		"space hard drop",
		"c    hold",
		"p    pause",
		"q    quit",
	}
	for i, line := range help {
		r.drawText(ox, helpY+i, line, tcell.StyleDefault.Dim(true))
	}
}

func (r *Renderer) drawMenu(snap *engine.Snapshot, ox, oy, w, h int) {
	r.drawCentered(ox, oy+h/2-2, w, "BLOCKFALL", tcell.StyleDefault.Bold(true))
	r.drawCentered(ox, oy+h/2, w, "press enter to start", tcell.StyleDefault)
	if snap.HighScore > 0 {
		r.drawCentered(ox, oy+h/2+2, w, fmt.Sprintf("best %d", snap.HighScore), tcell.StyleDefault.Dim(true))
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) drawCentered(x, y, w int, text string, style tcell.Style) {
	r.drawText(x+(w-len(text))/2, y, text, style)
}
