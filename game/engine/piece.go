package engine

// RotationDir selects the rotation direction for TryRotate
type RotationDir int

const (
	Clockwise        RotationDir = 1
	CounterClockwise RotationDir = -1
)

// kickOffsets is the fixed ordered sequence of horizontal offsets tried when
// an in-place rotation is blocked. Deliberately a simplified kick table, not
// per-rotation-state kick data; changing the order changes game feel.
var kickOffsets = [5]int{0, 1, -1, 2, -2}

// NewPiece creates a piece of the given kind at the given origin, rotation 0
func NewPiece(kind PieceKind, x, y int) *Piece {
	return &Piece{Kind: kind, X: x, Y: y}
}

// SpawnPiece places a fresh piece at the top-center spawn origin for a board
// of the given width: horizontally centered within its 4x4 box, two rows
// above the visible top so it can enter the field.
func SpawnPiece(kind PieceKind, cols int) *Piece {
	return NewPiece(kind, cols/2-2, -2)
}

// Cells returns the absolute playfield coordinates of the piece's four cells
func (p *Piece) Cells() [4]Position {
	cells := RotatedCells(p.Kind, p.Rotation)
	for i := range cells {
		cells[i].X += p.X
		cells[i].Y += p.Y
	}
	return cells
}

// Clone returns an independent copy of the piece
func (p *Piece) Clone() *Piece {
	c := *p
	return &c
}

// TryMove shifts the piece by (dx,dy) if the candidate position is valid.
// Returns false with the piece unchanged otherwise.
func (p *Piece) TryMove(g *Grid, dx, dy int) bool {
	candidate := p.Clone()
	candidate.X += dx
	candidate.Y += dy
	if !g.ValidPosition(candidate) {
		return false
	}
	p.X, p.Y = candidate.X, candidate.Y
	return true
}

// TryRotate turns the piece one quarter in the given direction, trying each
// wall-kick offset in order at the same row. On the first offset where the
// rotated piece fits, the rotation and origin commit and TryRotate returns
// true. If no offset fits the piece is left exactly as it was.
func (p *Piece) TryRotate(g *Grid, dir RotationDir) bool {
	candidate := p.Clone()
	candidate.Rotation = ((candidate.Rotation+int(dir))%4 + 4) % 4
	for _, dx := range kickOffsets {
		candidate.X = p.X + dx
		if g.ValidPosition(candidate) {
			p.X = candidate.X
			p.Rotation = candidate.Rotation
			return true
		}
	}
	return false
}

// Ghost returns the piece's landing projection: a clone dropped straight
// down until it can fall no further. The receiver is not mutated.
func (p *Piece) Ghost(g *Grid) *Piece {
	ghost := p.Clone()
	for ghost.TryMove(g, 0, 1) {
	}
	return ghost
}

// IsGrounded reports whether the piece would be blocked from falling one
// more row, checked without committing any movement.
func (p *Piece) IsGrounded(g *Grid) bool {
	candidate := p.Clone()
	candidate.Y++
	return !g.ValidPosition(candidate)
}

// DropDistance returns how many rows the piece can fall before resting
func (p *Piece) DropDistance(g *Grid) int {
	return p.Ghost(g).Y - p.Y
}
