package tetris

import "testing"

func TestCanPlaceBounds(t *testing.T) {
	b := NewBoard(10, 20)
	m := Matrix{{2, 2}, {2, 2}}

	tests := []struct {
		name string
		row  int
		col  int
		want bool
	}{
		{"inside", 0, 4, true},
		{"bottom edge", 18, 4, true},
		{"past bottom", 19, 4, false},
		{"left edge", 0, 0, true},
		{"past left", 0, -1, false},
		{"right edge", 0, 8, true},
		{"past right", 0, 9, false},
		{"above top is legal", -1, 4, true},
		{"fully above top", -2, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.CanPlace(m, tt.row, tt.col); got != tt.want {
				t.Errorf("CanPlace(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.want)
			}
		})
	}
}

func TestCanPlaceCollision(t *testing.T) {
	b := NewBoard(10, 20)
	b.cells[19][4] = 1

	m := Matrix{{2, 2}, {2, 2}}
	if b.CanPlace(m, 18, 4) {
		t.Error("CanPlace should reject overlap with a settled cell")
	}
	if !b.CanPlace(m, 18, 6) {
		t.Error("CanPlace should allow a non-overlapping position")
	}
	// Empty matrix cells may overlay settled cells.
	tee := Matrix{{0, 3, 0}, {3, 3, 3}, {0, 0, 0}}
	b2 := NewBoard(10, 20)
	b2.cells[17][4] = 1
	if !b2.CanPlace(tee, 17, 3) {
		t.Error("CanPlace should ignore empty matrix cells over settled cells")
	}
}

func TestSettleCopyOnWrite(t *testing.T) {
	b := NewBoard(10, 20)
	m := Matrix{{2, 2}, {2, 2}}

	settled := b.Settle(m, 18, 4)

	if b.Cell(18, 4) != 0 || b.Cell(19, 5) != 0 {
		t.Error("Settle must not mutate the original board")
	}
	for _, pos := range [][2]int{{18, 4}, {18, 5}, {19, 4}, {19, 5}} {
		if settled.Cell(pos[0], pos[1]) != 2 {
			t.Errorf("cell (%d,%d) = %d, want tag 2", pos[0], pos[1], settled.Cell(pos[0], pos[1]))
		}
	}
}

func TestSettleDropsCellsAboveTop(t *testing.T) {
	b := NewBoard(10, 20)
	m := Matrix{{2, 2}, {2, 2}}

	settled := b.Settle(m, -1, 4)

	if settled.Cell(0, 4) != 2 || settled.Cell(0, 5) != 2 {
		t.Error("the in-board matrix row should settle at row 0")
	}
	count := 0
	for row := 0; row < settled.Height(); row++ {
		for col := 0; col < settled.Width(); col++ {
			if settled.Cell(row, col) != 0 {
				count++
			}
		}
	}
	if count != 2 {
		t.Errorf("settled cell count = %d, want 2 (above-top cells dropped)", count)
	}
}

func TestFullRowsBottomFirst(t *testing.T) {
	b := NewBoard(10, 20)
	for col := 0; col < 10; col++ {
		b.cells[19][col] = 1
		b.cells[17][col] = 1
	}
	b.cells[18][0] = 1 // partial row

	rows := b.FullRows()
	if len(rows) != 2 || rows[0] != 19 || rows[1] != 17 {
		t.Errorf("FullRows() = %v, want [19 17]", rows)
	}
}

func TestRemoveRowsPreservesDimensions(t *testing.T) {
	b := NewBoard(10, 20)
	for col := 0; col < 10; col++ {
		b.cells[19][col] = 1
		b.cells[18][col] = 2
	}
	b.cells[17][3] = 5

	cleared := b.RemoveRows([]int{19, 18})

	if cleared.Width() != 10 || cleared.Height() != 20 {
		t.Fatalf("dimensions = %dx%d, want 10x20", cleared.Width(), cleared.Height())
	}
	if cleared.Cell(19, 3) != 5 {
		t.Errorf("surviving cell should pack to the bottom, got %d at (19,3)", cleared.Cell(19, 3))
	}
	for col := 0; col < 10; col++ {
		if col != 3 && cleared.Cell(19, col) != 0 {
			t.Errorf("cell (19,%d) = %d, want empty", col, cleared.Cell(19, col))
		}
	}
}

func TestColumnHeightsAndHoles(t *testing.T) {
	b := NewBoard(4, 6)
	// Column 0: top at row 3, hole at row 4.
	b.cells[3][0] = 1
	b.cells[5][0] = 1
	// Column 2: solid stack of two.
	b.cells[4][2] = 1
	b.cells[5][2] = 1

	heights := b.ColumnHeights()
	want := []int{3, 0, 2, 0}
	for i, h := range heights {
		if h != want[i] {
			t.Errorf("height[%d] = %d, want %d", i, h, want[i])
		}
	}

	if holes := b.Holes(); holes != 1 {
		t.Errorf("Holes() = %d, want 1", holes)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBoard(10, 20)
	b.cells[10][5] = 3

	c := b.Clone()
	c.cells[10][5] = 7

	if b.Cell(10, 5) != 3 {
		t.Error("mutating a clone must not affect the original")
	}
}
