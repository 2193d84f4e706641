package engine

import (
	"errors"
	"fmt"
)

// ErrCannotLock reports a lock attempt into occupied or out-of-bounds cells.
// Callers treat it as a game-over condition, not a crash.
var ErrCannotLock = errors.New("cannot lock piece")

// Grid is the playfield of locked cells. The zero value is not usable;
// construct via NewGrid. Invariant: every occupied cell lies inside
// [0,cols) x [0,rows). Only Lock and ClearRows mutate it.
type Grid struct {
	rows  int
	cols  int
	cells [][]PieceKind // "" means empty
}

// NewGrid creates an empty rows x cols playfield
func NewGrid(rows, cols int) *Grid {
	g := &Grid{rows: rows, cols: cols}
	g.cells = make([][]PieceKind, rows)
	for y := range g.cells {
		g.cells[y] = make([]PieceKind, cols)
	}
	return g
}

// Rows returns the visible height
func (g *Grid) Rows() int { return g.rows }

// Cols returns the width
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (x,y) lies inside the visible playfield
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// IsOccupied reports whether a locked cell sits at (x,y). Coordinates above
// the visible top (y < 0) count as unoccupied so freshly spawned pieces can
// overlap the hidden rows.
func (g *Grid) IsOccupied(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[y][x] != ""
}

// Cell returns the locked kind at (x,y), or "" when empty or out of bounds
func (g *Grid) Cell(x, y int) PieceKind {
	if !g.InBounds(x, y) {
		return ""
	}
	return g.cells[y][x]
}

// ValidPosition reports whether every cell of the piece fits: inside the
// horizontal bounds, above the floor, and not on a locked cell. Negative y
// is allowed so pieces can enter from above the visible top.
func (g *Grid) ValidPosition(p *Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= g.cols || c.Y >= g.rows {
			return false
		}
		if c.Y >= 0 && g.cells[c.Y][c.X] != "" {
			return false
		}
	}
	return true
}

// Lock writes the piece's cells into the grid. It is atomic: if any cell is
// outside the visible playfield (including above the top) or already
// occupied, nothing is written and ErrCannotLock is returned so the caller
// can transition to game over.
func (g *Grid) Lock(p *Piece) error {
	cells := p.Cells()
	for _, c := range cells {
		if !g.InBounds(c.X, c.Y) {
			return fmt.Errorf("%w: cell (%d,%d) out of bounds", ErrCannotLock, c.X, c.Y)
		}
		if g.cells[c.Y][c.X] != "" {
			return fmt.Errorf("%w: cell (%d,%d) occupied", ErrCannotLock, c.X, c.Y)
		}
	}
	for _, c := range cells {
		g.cells[c.Y][c.X] = p.Kind
	}
	return nil
}

// FullRows returns the indices of completely occupied rows, ascending
func (g *Grid) FullRows() []int {
	var full []int
	for y := 0; y < g.rows; y++ {
		complete := true
		for x := 0; x < g.cols; x++ {
			if g.cells[y][x] == "" {
				complete = false
				break
			}
		}
		if complete {
			full = append(full, y)
		}
	}
	return full
}

// ClearRows removes the given rows and shifts everything above down in a
// single collapse pass, inserting empty rows at the top. Handles multiple
// non-contiguous rows without double-shifting.
func (g *Grid) ClearRows(rows []int) {
	if len(rows) == 0 {
		return
	}
	clearing := make(map[int]bool, len(rows))
	for _, y := range rows {
		if y >= 0 && y < g.rows {
			clearing[y] = true
		}
	}

	write := g.rows - 1
	for y := g.rows - 1; y >= 0; y-- {
		if clearing[y] {
			continue
		}
		g.cells[write] = g.cells[y]
		write--
	}
	for ; write >= 0; write-- {
		g.cells[write] = make([]PieceKind, g.cols)
	}
}

// ClearFullRows is the common compose of FullRows and ClearRows, returning
// the rows that were removed in ascending order.
func (g *Grid) ClearFullRows() []int {
	rows := g.FullRows()
	g.ClearRows(rows)
	return rows
}

// Snapshot returns a deep copy of the locked cells for renderers
func (g *Grid) Snapshot() [][]PieceKind {
	out := make([][]PieceKind, g.rows)
	for y := range g.cells {
		out[y] = append([]PieceKind(nil), g.cells[y]...)
	}
	return out
}

// Clear empties the whole playfield
func (g *Grid) Clear() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = ""
		}
	}
}
