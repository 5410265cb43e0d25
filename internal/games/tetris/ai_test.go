package tetris

import (
	"math"
	"testing"

	"github.com/sigco3111/Tetris-am3d/internal/config"
)

func testPlanner() *Planner {
	return NewPlanner(config.DefaultTetrisConfig().AI)
}

func TestEvaluateAboveTopIsNeverSelectable(t *testing.T) {
	pl := testPlanner()
	b := NewBoard(10, 20)
	m := Matrix{{2, 2}, {2, 2}}

	score := pl.Evaluate(b, m, -1, 4)
	if !math.IsInf(score, -1) {
		t.Errorf("placement above the top scored %v, want -Inf", score)
	}
}

func TestEvaluateHolePenalty(t *testing.T) {
	pl := testPlanner()
	m := Matrix{{2, 2}, {2, 2}}

	// Same column heights, the only difference is one covered empty cell.
	withHole := NewBoard(10, 20)
	withHole.cells[18][0] = 1

	filled := NewBoard(10, 20)
	filled.cells[18][0] = 1
	filled.cells[19][0] = 1

	holeScore := pl.Evaluate(withHole, m, 18, 7)
	filledScore := pl.Evaluate(filled, m, 18, 7)

	if holeScore >= filledScore {
		t.Errorf("hole score %v should be strictly lower than %v", holeScore, filledScore)
	}
	if diff := filledScore - holeScore; diff != 75 {
		t.Errorf("hole penalty = %v, want exactly 75", diff)
	}
}

func TestEvaluateLineClearBonus(t *testing.T) {
	pl := testPlanner()
	b := NewBoard(10, 20)
	for col := 0; col < 10; col++ {
		if col != 4 && col != 5 {
			b.cells[19][col] = 1
		}
	}

	m := Matrix{{2, 2}, {2, 2}}
	score := pl.Evaluate(b, m, 18, 4)

	// One line clears; the two leftover cells pack to the bottom row:
	// 5000 - aggregate 2*10 - holes 0 - bumpiness 2*3.
	if want := float64(5000 - 20 - 6); score != want {
		t.Errorf("Evaluate = %v, want %v", score, want)
	}
}

func TestPlanBestMoveEmptyBoard(t *testing.T) {
	pl := testPlanner()
	b := NewBoard(10, 20)
	p := NewPiece(KindO, 10)

	plan := pl.PlanBestMove(b, p)
	if plan == nil {
		t.Fatal("PlanBestMove returned nil on an empty board")
	}
	if plan.Row != 18 {
		t.Errorf("final row = %d, want 18", plan.Row)
	}
	// A wall-adjacent O has bumpiness 2 against 4 anywhere else, so the
	// first wall placement wins.
	if plan.Col != 0 {
		t.Errorf("target col = %d, want 0", plan.Col)
	}
	if want := float64(-40 - 6); plan.Score != want {
		t.Errorf("plan score = %v, want %v", plan.Score, want)
	}
}

func TestPlanBestMovePrefersLineClear(t *testing.T) {
	pl := testPlanner()
	b := NewBoard(10, 20)
	for col := 0; col < 10; col++ {
		if col != 4 && col != 5 {
			b.cells[19][col] = 1
		}
	}

	plan := pl.PlanBestMove(b, NewPiece(KindO, 10))
	if plan == nil {
		t.Fatal("PlanBestMove returned nil")
	}
	if plan.Col != 4 || plan.Row != 18 {
		t.Errorf("plan = (rot %d, col %d, row %d), want the gap at col 4 row 18",
			plan.Rotation, plan.Col, plan.Row)
	}
	if plan.Score < 4000 {
		t.Errorf("clearing plan score = %v, want the line bonus to dominate", plan.Score)
	}
}

func TestPlanBestMoveFullBoard(t *testing.T) {
	pl := testPlanner()
	b := NewBoard(10, 20)
	for row := 0; row < 20; row++ {
		for col := 0; col < 10; col++ {
			b.cells[row][col] = 1
		}
	}

	// Every candidate rests above the top; the plan still exists but is
	// never a good one.
	plan := pl.PlanBestMove(b, NewPiece(KindO, 10))
	if plan == nil {
		t.Fatal("PlanBestMove should return a candidate even on a full board")
	}
	if !math.IsInf(plan.Score, -1) {
		t.Errorf("plan score = %v, want -Inf", plan.Score)
	}
}

func TestPlanEnumerationCoversWholeWidth(t *testing.T) {
	pl := testPlanner()
	b := NewBoard(10, 20)
	// A deep well at the right wall; only a vertical I reaches col 9.
	for row := 16; row < 20; row++ {
		for col := 0; col < 9; col++ {
			b.cells[row][col] = 1
		}
	}

	plan := pl.PlanBestMove(b, NewPiece(KindI, 10))
	if plan == nil {
		t.Fatal("PlanBestMove returned nil")
	}
	if plan.Rotation%2 != 1 {
		t.Errorf("plan rotation = %d, want a vertical state", plan.Rotation)
	}
	m := NewPiece(KindI, 10).MatrixAt(plan.Rotation)
	minC, _, _ := occupiedColumns(m)
	if plan.Col+minC != 9 {
		t.Errorf("occupied column = %d, want the well at 9", plan.Col+minC)
	}
}

func TestAutopilotArmDisarm(t *testing.T) {
	var a autopilot
	a.enabled = true

	a.arm(6)
	if a.state != aiThinking || a.delay != 6 || a.plan != nil {
		t.Errorf("after arm: state=%v delay=%d plan=%v", a.state, a.delay, a.plan)
	}

	a.plan = &Move{}
	a.disarm()
	if a.state != aiIdle || a.delay != 0 || a.plan != nil {
		t.Errorf("after disarm: state=%v delay=%d plan=%v", a.state, a.delay, a.plan)
	}
	if !a.enabled {
		t.Error("disarm must not flip the enabled switch")
	}
}
