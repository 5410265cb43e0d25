package tetris

import (
	"math/rand"
)

// Kind identifies one of the seven canonical tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of tetromino shapes.
const KindCount = 7

// String returns the canonical one-letter shape name.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}

// Tag returns the board cell tag (1..7) for this shape's color.
func (k Kind) Tag() int {
	return int(k) + 1
}

// Matrix is a square rotation-state grid. Zero means empty; any other value
// is the color tag of the occupying shape.
type Matrix [][]int

// shapeTemplates holds the base (rotation 0) matrix for each shape, using 1
// for occupied cells. Pieces retag cells with the shape color at build time.
// The I shape uses a 4x4 grid, O a 2x2, everything else 3x3.
var shapeTemplates = [KindCount]Matrix{
	KindI: {
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	KindO: {
		{1, 1},
		{1, 1},
	},
	KindT: {
		{0, 1, 0},
		{1, 1, 1},
		{0, 0, 0},
	},
	KindS: {
		{0, 1, 1},
		{1, 1, 0},
		{0, 0, 0},
	},
	KindZ: {
		{1, 1, 0},
		{0, 1, 1},
		{0, 0, 0},
	},
	KindJ: {
		{1, 0, 0},
		{1, 1, 1},
		{0, 0, 0},
	},
	KindL: {
		{0, 0, 1},
		{1, 1, 1},
		{0, 0, 0},
	},
}

// rotationStates is the number of precomputed 90-degree rotation states.
const rotationStates = 4

// rotateCW returns a new matrix rotated 90 degrees clockwise.
func rotateCW(m Matrix) Matrix {
	n := len(m)
	out := make(Matrix, n)
	for y := range out {
		out[y] = make([]int, n)
		for x := range out[y] {
			out[y][x] = m[n-1-x][y]
		}
	}
	return out
}

// Piece is an active falling tetromino: an immutable set of precomputed
// rotation matrices plus a mutable rotation index and board position.
// Row/Col address the matrix's top-left anchor; Row may be negative while
// part of the piece sits above the visible board.
type Piece struct {
	Kind Kind
	Rot  int
	Row  int
	Col  int

	rots []Matrix
}

// NewPiece builds a piece of the given kind at its spawn position: row 0,
// horizontally centered for the given board width. All four rotation states
// are precomputed with cells tagged by the shape color.
func NewPiece(kind Kind, boardWidth int) *Piece {
	base := shapeTemplates[kind]
	tag := kind.Tag()

	rots := make([]Matrix, 0, rotationStates)
	m := retag(base, tag)
	for i := 0; i < rotationStates; i++ {
		rots = append(rots, m)
		m = rotateCW(m)
	}

	size := len(base)
	return &Piece{
		Kind: kind,
		Rot:  0,
		Row:  0,
		Col:  boardWidth/2 - size/2,
		rots: rots,
	}
}

// retag copies a template, replacing occupied cells with the color tag.
func retag(m Matrix, tag int) Matrix {
	out := make(Matrix, len(m))
	for y := range m {
		out[y] = make([]int, len(m[y]))
		for x, v := range m[y] {
			if v != 0 {
				out[y][x] = tag
			}
		}
	}
	return out
}

// Matrix returns the matrix of the current rotation state.
func (p *Piece) Matrix() Matrix {
	return p.rots[p.Rot]
}

// MatrixAt returns the matrix of an arbitrary rotation state.
func (p *Piece) MatrixAt(rot int) Matrix {
	return p.rots[rot%len(p.rots)]
}

// RotationCount returns the number of precomputed rotation states.
func (p *Piece) RotationCount() int {
	return len(p.rots)
}

// Size returns the rotation matrix dimension (2, 3, or 4).
func (p *Piece) Size() int {
	return len(p.rots[0])
}

// Clone returns a copy sharing the immutable rotation matrices.
func (p *Piece) Clone() *Piece {
	c := *p
	return &c
}

// Shift moves the piece one column left or right if the target position is
// legal. Returns false and leaves the piece unchanged otherwise.
func (p *Piece) Shift(b Board, dx int) bool {
	if !b.CanPlace(p.Matrix(), p.Row, p.Col+dx) {
		return false
	}
	p.Col += dx
	return true
}

// Descend moves the piece one row down if the target position is legal.
// Returns false and leaves the piece unchanged otherwise.
func (p *Piece) Descend(b Board) bool {
	if !b.CanPlace(p.Matrix(), p.Row+1, p.Col) {
		return false
	}
	p.Row++
	return true
}

// Rotate advances the rotation index one 90-degree step, searching the kick
// table when the rotated state collides at the current position: horizontal
// offsets -1, +1, -2, +2, then, near the top of the board, upward offsets
// (-1 and -2 rows for the I shape, -1 for everything else). The first legal
// offset is committed. Returns false and leaves the piece unchanged when no
// offset works.
func (p *Piece) Rotate(b Board) bool {
	next := (p.Rot + 1) % len(p.rots)
	m := p.rots[next]

	if b.CanPlace(m, p.Row, p.Col) {
		p.Rot = next
		return true
	}

	for _, dx := range []int{-1, 1, -2, 2} {
		if b.CanPlace(m, p.Row, p.Col+dx) {
			p.Rot = next
			p.Col += dx
			return true
		}
	}

	if p.Row <= 1 {
		kicks := []int{-1}
		if p.Size() == 4 {
			kicks = []int{-1, -2}
		}
		for _, dy := range kicks {
			if b.CanPlace(m, p.Row+dy, p.Col) {
				p.Rot = next
				p.Row += dy
				return true
			}
		}
	}

	return false
}

// Generator produces randomized pieces for a session. Shape selection is
// uniform over the seven kinds.
type Generator struct {
	rng        *rand.Rand
	boardWidth int
}

// NewGenerator creates a generator seeded for deterministic sequences.
func NewGenerator(seed int64, boardWidth int) *Generator {
	return &Generator{
		rng:        rand.New(rand.NewSource(seed)),
		boardWidth: boardWidth,
	}
}

// Spawn draws the next piece kind, uniform over the seven shapes.
func (g *Generator) Spawn() Kind {
	return Kind(g.rng.Intn(KindCount))
}

// NewPiece creates a piece of the drawn kind at its spawn position.
func (g *Generator) NewPiece(kind Kind) *Piece {
	return NewPiece(kind, g.boardWidth)
}

// Reseed returns a fresh seed derived from the generator's stream, used
// when restarting a session.
func (g *Generator) Reseed() int64 {
	return g.rng.Int63()
}
