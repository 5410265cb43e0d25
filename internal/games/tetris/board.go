package tetris

// Board is the grid of settled cells. A cell holds 0 when empty or the
// color tag (1..7) of the shape that settled there. Rows are addressed top
// (row 0) to bottom (row Height-1). Dimensions never change once created;
// mutating operations return a new Board so prior snapshots stay valid.
type Board struct {
	width  int
	height int
	cells  [][]int
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(width, height int) Board {
	cells := make([][]int, height)
	for y := range cells {
		cells[y] = make([]int, width)
	}
	return Board{width: width, height: height, cells: cells}
}

// Width returns the board width in columns.
func (b Board) Width() int {
	return b.width
}

// Height returns the board height in rows.
func (b Board) Height() int {
	return b.height
}

// Cell returns the tag at (row, col), or 0 for out-of-bounds reads.
func (b Board) Cell(row, col int) int {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return 0
	}
	return b.cells[row][col]
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	cells := make([][]int, b.height)
	for y := range cells {
		cells[y] = make([]int, b.width)
		copy(cells[y], b.cells[y])
	}
	return Board{width: b.width, height: b.height, cells: cells}
}

// CanPlace reports whether matrix m can occupy the board with its top-left
// anchor at (row, col). An occupied matrix cell is illegal if it projects
// past the bottom or either side, or onto a settled cell. Cells projecting
// above row 0 are legal: pieces may spawn partially off-board, and those
// cells only matter for the game-over check at lock time.
func (b Board) CanPlace(m Matrix, row, col int) bool {
	for y := range m {
		for x, v := range m[y] {
			if v == 0 {
				continue
			}
			r := row + y
			c := col + x
			if r >= b.height || c < 0 || c >= b.width {
				return false
			}
			if r >= 0 && b.cells[r][c] != 0 {
				return false
			}
		}
	}
	return true
}

// Settle returns a copy of the board with every occupied cell of m written
// in at (row, col). Cells above row 0 are dropped; the caller is
// responsible for detecting them as a game-over condition.
func (b Board) Settle(m Matrix, row, col int) Board {
	out := b.Clone()
	for y := range m {
		for x, v := range m[y] {
			if v == 0 {
				continue
			}
			r := row + y
			c := col + x
			if r >= 0 && r < out.height && c >= 0 && c < out.width {
				out.cells[r][c] = v
			}
		}
	}
	return out
}

// FullRows returns the indices of completely filled rows, scanned bottom to
// top (highest index first).
func (b Board) FullRows() []int {
	var rows []int
	for y := b.height - 1; y >= 0; y-- {
		full := true
		for x := 0; x < b.width; x++ {
			if b.cells[y][x] == 0 {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, y)
		}
	}
	return rows
}

// RemoveRows returns a copy of the board with the given rows removed and an
// equal number of empty rows inserted at the top, preserving total height.
func (b Board) RemoveRows(rows []int) Board {
	if len(rows) == 0 {
		return b
	}

	removing := make(map[int]bool, len(rows))
	for _, y := range rows {
		removing[y] = true
	}

	out := NewBoard(b.width, b.height)
	dst := b.height - 1
	for y := b.height - 1; y >= 0; y-- {
		if removing[y] {
			continue
		}
		copy(out.cells[dst], b.cells[y])
		dst--
	}
	return out
}

// ColumnHeights returns each column's stack height: the distance from the
// topmost settled cell to the board bottom, or 0 for an empty column.
func (b Board) ColumnHeights() []int {
	heights := make([]int, b.width)
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			if b.cells[y][x] != 0 {
				heights[x] = b.height - y
				break
			}
		}
	}
	return heights
}

// Holes counts empty cells that have at least one settled cell somewhere
// above them in the same column.
func (b Board) Holes() int {
	holes := 0
	for x := 0; x < b.width; x++ {
		covered := false
		for y := 0; y < b.height; y++ {
			if b.cells[y][x] != 0 {
				covered = true
			} else if covered {
				holes++
			}
		}
	}
	return holes
}
