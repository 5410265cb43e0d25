package tetris

import "testing"

func occupiedCells(p *Piece) [][2]int {
	var cells [][2]int
	m := p.Matrix()
	for y := range m {
		for x := range m[y] {
			if m[y][x] != 0 {
				cells = append(cells, [2]int{p.Row + y, p.Col + x})
			}
		}
	}
	return cells
}

func TestSpawnPosition(t *testing.T) {
	tests := []struct {
		kind    Kind
		wantCol int
	}{
		{KindI, 3}, // 4-wide matrix on a 10-wide board
		{KindO, 4}, // 2-wide matrix
		{KindT, 4}, // 3-wide matrix
		{KindS, 4},
		{KindZ, 4},
		{KindJ, 4},
		{KindL, 4},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			p := NewPiece(tt.kind, 10)
			if p.Col != tt.wantCol {
				t.Errorf("spawn col = %d, want %d", p.Col, tt.wantCol)
			}
			if p.Row != 0 {
				t.Errorf("spawn row = %d, want 0", p.Row)
			}
		})
	}
}

func TestPieceTags(t *testing.T) {
	for k := Kind(0); k < KindCount; k++ {
		p := NewPiece(k, 10)
		m := p.Matrix()
		for y := range m {
			for x := range m[y] {
				if m[y][x] != 0 && m[y][x] != k.Tag() {
					t.Errorf("%v: cell tag = %d, want %d", k, m[y][x], k.Tag())
				}
			}
		}
	}
}

func TestRotateOIsNoOp(t *testing.T) {
	b := NewBoard(10, 20)
	p := NewPiece(KindO, 10)
	before := occupiedCells(p)

	for i := 0; i < 4; i++ {
		if !p.Rotate(b) {
			t.Fatalf("rotation %d rejected on an empty board", i)
		}
		after := occupiedCells(p)
		for j := range before {
			if after[j] != before[j] {
				t.Fatalf("rotation %d moved O cells: %v -> %v", i, before, after)
			}
		}
	}
}

func TestRotateCycle(t *testing.T) {
	b := NewBoard(10, 20)
	p := NewPiece(KindT, 10)
	p.Row = 10

	start := occupiedCells(p)
	for i := 0; i < 4; i++ {
		if !p.Rotate(b) {
			t.Fatalf("rotation %d rejected on an empty board", i)
		}
	}
	if p.Rot != 0 {
		t.Errorf("after four rotations Rot = %d, want 0", p.Rot)
	}
	end := occupiedCells(p)
	for i := range start {
		if end[i] != start[i] {
			t.Errorf("four rotations should restore cells: %v -> %v", start, end)
		}
	}
}

func TestRotateWallKick(t *testing.T) {
	b := NewBoard(10, 20)
	p := NewPiece(KindI, 10)
	p.Row = 10
	p.Rotate(b) // vertical I

	// Push against the right wall; rotating back to horizontal needs a
	// leftward kick to stay inside the board.
	for p.Shift(b, 1) {
	}
	colBefore := p.Col

	if !p.Rotate(b) {
		t.Fatal("rotation at the wall should succeed via a kick")
	}
	if p.Col >= colBefore {
		t.Errorf("kick should shift left: col %d -> %d", colBefore, p.Col)
	}
	for _, c := range occupiedCells(p) {
		if c[1] < 0 || c[1] >= 10 {
			t.Errorf("cell column %d out of bounds after kick", c[1])
		}
	}
}

func TestRotateRejectedLeavesPieceUnchanged(t *testing.T) {
	b := NewBoard(10, 20)
	// Wall in every cell except a vertical 1-wide shaft at column 4.
	for row := 0; row < 20; row++ {
		for col := 0; col < 10; col++ {
			if col != 4 {
				b.cells[row][col] = 1
			}
		}
	}

	p := NewPiece(KindI, 10)
	p.Rotate(NewBoard(10, 20)) // vertical on a free board first
	p.Row = 10
	p.Col = 4 - vertICol(p)

	if !b.CanPlace(p.Matrix(), p.Row, p.Col) {
		t.Fatal("setup: vertical I should fit in the shaft")
	}
	rowBefore, colBefore, rotBefore := p.Row, p.Col, p.Rot

	if p.Rotate(b) {
		t.Error("rotation inside a 1-wide shaft should be rejected")
	}
	if p.Row != rowBefore || p.Col != colBefore || p.Rot != rotBefore {
		t.Error("rejected rotation must not change the piece")
	}
}

// vertICol returns the occupied matrix column of a vertical I piece.
func vertICol(p *Piece) int {
	m := p.Matrix()
	for y := range m {
		for x := range m[y] {
			if m[y][x] != 0 {
				return x
			}
		}
	}
	return 0
}

func TestRotateVerticalKickNearTop(t *testing.T) {
	b := NewBoard(10, 20)
	// A full wall on row 2 blocks the rotated shape at every horizontal
	// kick offset; only the upward kick remains.
	for col := 0; col < 10; col++ {
		b.cells[2][col] = 1
	}

	p := NewPiece(KindI, 10)
	p.Rotate(NewBoard(10, 20)) // vertical, occupying rows 0..3 at spawn
	if b.CanPlace(p.Matrix(), p.Row, p.Col) {
		t.Fatal("setup: vertical I should collide with the blocked row")
	}
	if !p.Rotate(b) {
		t.Fatal("rotation should succeed via the upward kick")
	}
	for _, c := range occupiedCells(p) {
		if c[0] >= 2 {
			t.Errorf("cell row %d should sit above the wall", c[0])
		}
	}
}

func TestShiftAndDescendBounds(t *testing.T) {
	b := NewBoard(10, 20)
	p := NewPiece(KindO, 10)

	for p.Shift(b, -1) {
	}
	if p.Col != 0 {
		t.Errorf("left shifts should stop at col 0, got %d", p.Col)
	}
	if p.Shift(b, -1) {
		t.Error("shift past the left wall should be rejected")
	}

	for p.Descend(b) {
	}
	if p.Row != 18 {
		t.Errorf("O piece should rest at row 18, got %d", p.Row)
	}
	if p.Descend(b) {
		t.Error("descend past the floor should be rejected")
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	a := NewGenerator(42, 10)
	b := NewGenerator(42, 10)

	for i := 0; i < 100; i++ {
		ka, kb := a.Spawn(), b.Spawn()
		if ka != kb {
			t.Fatalf("draw %d: %v != %v with the same seed", i, ka, kb)
		}
		if ka < 0 || int(ka) >= KindCount {
			t.Fatalf("draw %d: kind %d out of range", i, ka)
		}
	}

	if a.Reseed() != b.Reseed() {
		t.Error("Reseed should be deterministic for the same stream")
	}
}
