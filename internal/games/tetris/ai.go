package tetris

import (
	"math"

	"github.com/sigco3111/Tetris-am3d/internal/config"
	"github.com/sigco3111/Tetris-am3d/internal/core"
)

// Move is a planned placement: a target rotation state, target anchor
// column, the finalized resting anchor row, and the evaluator's score.
type Move struct {
	Rotation int
	Col      int
	Row      int
	Score    float64
}

// Planner searches every legal final placement of a piece and scores each
// with a fixed linear evaluation. It is a greedy single-piece planner: the
// queued next piece is never considered.
type Planner struct {
	weights config.AIConfig
}

// NewPlanner creates a planner with the given evaluator weights.
func NewPlanner(weights config.AIConfig) *Planner {
	return &Planner{weights: weights}
}

// Evaluate scores settling matrix m at (row, col) on a copy of the board.
// A placement leaving any occupied cell above the board top scores negative
// infinity and is never selectable. Otherwise full rows are cleared on the
// copy and the score is lines*lineClearBonus - aggregateHeight*heightPenalty
// - holes*holePenalty - bumpiness*bumpinessPenalty.
func (pl *Planner) Evaluate(b Board, m Matrix, row, col int) float64 {
	for y := range m {
		for x := range m[y] {
			if m[y][x] != 0 && row+y < 0 {
				return math.Inf(-1)
			}
		}
	}

	settled := b.Settle(m, row, col)
	full := settled.FullRows()
	if len(full) > 0 {
		settled = settled.RemoveRows(full)
	}

	heights := settled.ColumnHeights()
	aggregate := 0
	bumpiness := 0
	for i, h := range heights {
		aggregate += h
		if i > 0 {
			bumpiness += core.Abs(h - heights[i-1])
		}
	}

	score := float64(len(full) * pl.weights.LineClearBonus)
	score -= float64(aggregate * pl.weights.HeightPenalty)
	score -= float64(settled.Holes() * pl.weights.HolePenalty)
	score -= float64(bumpiness * pl.weights.BumpinessPenalty)
	return score
}

// PlanBestMove exhaustively enumerates every rotation state and every
// column keeping the piece's occupied cells inside the board, drops each
// candidate to its resting row, and returns the highest-scoring placement.
// Ties break to the first candidate found (rotation ascending, then column
// ascending). Returns nil when no candidate can enter the board at all.
func (pl *Planner) PlanBestMove(b Board, p *Piece) *Move {
	var best *Move

	for rot := 0; rot < p.RotationCount(); rot++ {
		m := p.MatrixAt(rot)
		minC, maxC, ok := occupiedColumns(m)
		if !ok {
			continue
		}

		for col := -minC; col <= b.Width()-1-maxC; col++ {
			row, ok := entryRow(b, m, col)
			if !ok {
				continue
			}
			for b.CanPlace(m, row+1, col) {
				row++
			}

			score := pl.Evaluate(b, m, row, col)
			if best == nil || score > best.Score {
				best = &Move{Rotation: rot, Col: col, Row: row, Score: score}
			}
		}
	}

	return best
}

// entryRow finds the anchor row where a matrix can enter the board at the
// given column: row 0 first, then the off-board probes -1, -2, -3 for
// pieces that spawn partially above the top.
func entryRow(b Board, m Matrix, col int) (int, bool) {
	for _, row := range []int{0, -1, -2, -3} {
		if b.CanPlace(m, row, col) {
			return row, true
		}
	}
	return 0, false
}

// occupiedColumns returns the leftmost and rightmost occupied matrix
// columns, or ok=false for a matrix with no occupied cells.
func occupiedColumns(m Matrix) (minC, maxC int, ok bool) {
	minC = len(m)
	maxC = -1
	for y := range m {
		for x, v := range m[y] {
			if v == 0 {
				continue
			}
			if x < minC {
				minC = x
			}
			if x > maxC {
				maxC = x
			}
		}
	}
	return minC, maxC, maxC >= 0
}

// autopilotState tracks the driver's per-piece planning cycle.
type autopilotState int

const (
	aiIdle autopilotState = iota
	aiThinking
	aiStepping
)

// autopilot is the execution driver: it waits a deliberation delay, asks
// the planner for a Move, then realizes it one discrete action at a time.
// All pacing is in simulation ticks; the game steps it once per tick.
type autopilot struct {
	enabled bool
	state   autopilotState
	plan    *Move
	delay   int // ticks until the next think/step transition
}

// arm begins a new planning cycle for the current active piece.
func (a *autopilot) arm(thinkTicks int) {
	a.state = aiThinking
	a.plan = nil
	a.delay = thinkTicks
}

// disarm cancels any pending deliberation or step; the single "clear
// pending transition" operation for pause, toggle-off, and phase changes.
func (a *autopilot) disarm() {
	a.state = aiIdle
	a.plan = nil
	a.delay = 0
}
