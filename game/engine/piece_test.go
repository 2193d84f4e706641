package engine

import "testing"

func TestSpawnPiecePosition(t *testing.T) {
	p := SpawnPiece(PieceT, 10)
	if p.X != 3 || p.Y != -2 {
		t.Errorf("spawn at (%d,%d), want (3,-2)", p.X, p.Y)
	}
	if p.Rotation != 0 {
		t.Errorf("spawn rotation %d, want 0", p.Rotation)
	}
}

func TestPieceCells(t *testing.T) {
	p := NewPiece(PieceO, 3, 16)
	want := map[Position]bool{
		{4, 17}: true, {5, 17}: true,
		{4, 18}: true, {5, 18}: true,
	}
	for _, c := range p.Cells() {
		if !want[c] {
			t.Errorf("unexpected cell %v", c)
		}
		delete(want, c)
	}
	if len(want) != 0 {
		t.Errorf("missing cells: %v", want)
	}
}

func TestTryMoveWallBlocked(t *testing.T) {
	g := NewGrid(20, 10)
	p := NewPiece(PieceO, -1, 10) // cells at x=0,1

	if !p.TryMove(g, 1, 0) {
		t.Fatal("move right on open grid should succeed")
	}
	p = NewPiece(PieceO, -1, 10)
	if p.TryMove(g, -1, 0) {
		t.Fatal("move left through the wall should fail")
	}
	if p.X != -1 {
		t.Errorf("failed move mutated piece: X=%d", p.X)
	}
}

func TestTryMoveBlockedByStack(t *testing.T) {
	g := NewGrid(20, 10)
	if err := g.Lock(NewPiece(PieceO, 3, 16)); err != nil {
		t.Fatalf("setup lock failed: %v", err)
	}
	p := NewPiece(PieceO, 3, 14) // directly above
	if p.TryMove(g, 0, 1) {
		t.Fatal("move down into locked cells should fail")
	}
	if p.Y != 14 {
		t.Errorf("failed move mutated piece: Y=%d", p.Y)
	}
}

func TestTryRotateOpenField(t *testing.T) {
	g := NewGrid(20, 10)
	p := NewPiece(PieceT, 3, 10)
	if !p.TryRotate(g, Clockwise) {
		t.Fatal("rotation in open field should succeed")
	}
	if p.Rotation != 1 || p.X != 3 {
		t.Errorf("rotation=%d X=%d, want rotation=1 with no kick", p.Rotation, p.X)
	}
	if !p.TryRotate(g, CounterClockwise) {
		t.Fatal("counter rotation should succeed")
	}
	if p.Rotation != 0 {
		t.Errorf("rotation=%d after undo, want 0", p.Rotation)
	}
}

func TestTryRotateWallKick(t *testing.T) {
	g := NewGrid(20, 10)
	// Vertical I against the left wall: rotating to horizontal needs a
	// +2 kick to pull the overhanging cells back inside
	p := &Piece{Kind: PieceI, X: -1, Y: 8, Rotation: 1}
	if !p.TryRotate(g, Clockwise) {
		t.Fatal("rotation with kick available should succeed")
	}
	if p.Rotation != 2 {
		t.Errorf("rotation=%d, want 2", p.Rotation)
	}
	if p.X != 1 {
		t.Errorf("kick moved piece to X=%d, want 1", p.X)
	}
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= g.Cols() {
			t.Errorf("cell %v outside grid after kick", c)
		}
	}
}

func TestTryRotateBlockedLeavesPieceUntouched(t *testing.T) {
	g := NewGrid(20, 10)
	// Box the vertical I in: neighbours on every kick landing spot
	for y := 0; y < 20; y++ {
		for x := 0; x < 10; x++ {
			if x != 1 {
				g.cells[y][x] = PieceJ
			}
		}
	}
	p := &Piece{Kind: PieceI, X: 0, Y: 8, Rotation: 1} // column at x=1
	if p.TryRotate(g, Clockwise) {
		t.Fatal("rotation with every kick blocked should fail")
	}
	if p.Rotation != 1 || p.X != 0 || p.Y != 8 {
		t.Errorf("failed rotation mutated piece: rot=%d X=%d Y=%d", p.Rotation, p.X, p.Y)
	}
}

func TestGhostAndDropDistance(t *testing.T) {
	g := NewGrid(20, 10)
	p := NewPiece(PieceO, 3, 0) // cells at y=1,2

	if d := p.DropDistance(g); d != 17 {
		t.Errorf("DropDistance = %d, want 17", d)
	}
	ghost := p.Ghost(g)
	if ghost.Y != 17 {
		t.Errorf("ghost Y = %d, want 17", ghost.Y)
	}
	if p.Y != 0 {
		t.Errorf("Ghost mutated piece: Y=%d", p.Y)
	}

	// Stack raises the landing spot: locked cells at y=17,18, so the
	// falling O rests with its bottom cell at y=16, origin y=14
	if err := g.Lock(NewPiece(PieceO, 3, 16)); err != nil {
		t.Fatalf("setup lock failed: %v", err)
	}
	if d := p.DropDistance(g); d != 14 {
		t.Errorf("DropDistance over stack = %d, want 14", d)
	}
	if ghost := p.Ghost(g); ghost.Y != 14 {
		t.Errorf("ghost Y over stack = %d, want 14", ghost.Y)
	}
}

func TestIsGrounded(t *testing.T) {
	g := NewGrid(20, 10)
	floating := NewPiece(PieceO, 3, 10)
	if floating.IsGrounded(g) {
		t.Error("floating piece reported grounded")
	}
	resting := NewPiece(PieceO, 3, 17) // cells at y=18,19
	if !resting.IsGrounded(g) {
		t.Error("piece on the floor not reported grounded")
	}
}
