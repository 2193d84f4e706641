package engine

// Base cell offsets for each kind within a 4x4 bounding box. Rotation is an
// integer quarter-turn clockwise about the pivot (1,1):
//
//	(x, y) -> (px + (y - py), py - (x - px))
//
// which keeps every derived cell inside integer coordinates with no lookup
// tables beyond this catalog.
var baseCells = map[PieceKind][4]Position{
	PieceI: {{0, 1}, {1, 1}, {2, 1}, {3, 1}},
	PieceO: {{1, 1}, {2, 1}, {1, 2}, {2, 2}},
	PieceT: {{1, 0}, {0, 1}, {1, 1}, {2, 1}},
	PieceS: {{1, 1}, {2, 1}, {0, 2}, {1, 2}},
	PieceZ: {{0, 1}, {1, 1}, {1, 2}, {2, 2}},
	PieceJ: {{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	PieceL: {{2, 0}, {0, 1}, {1, 1}, {2, 1}},
}

// Display color tags per kind, plus the ghost projection tag. Presentation
// layers map these however they like; the core only carries them.
var colorTags = map[PieceKind]string{
	PieceI: "#00ffff",
	PieceO: "#ffff00",
	PieceT: "#a000f0",
	PieceS: "#00f000",
	PieceZ: "#f00000",
	PieceJ: "#0000f0",
	PieceL: "#f0a000",
}

// GhostColorTag is the display tag for the ghost projection
const GhostColorTag = "#969696"

const (
	pivotX = 1
	pivotY = 1
)

// Color returns the display color tag for the kind
func (k PieceKind) Color() string {
	return colorTags[k]
}

// BaseCells returns the unrotated catalog offsets for a kind
func BaseCells(kind PieceKind) [4]Position {
	return baseCells[kind]
}

// RotatedCells returns the catalog offsets for a kind after the given number
// of clockwise quarter turns about the pivot. Pure function of its inputs;
// all kinds and rotations 0..3 are valid by construction.
func RotatedCells(kind PieceKind, rotation int) [4]Position {
	cells := baseCells[kind]
	turns := ((rotation % 4) + 4) % 4
	for i := 0; i < turns; i++ {
		for j, c := range cells {
			cells[j] = Position{
				X: pivotX + (c.Y - pivotY),
				Y: pivotY - (c.X - pivotX),
			}
		}
	}
	return cells
}
