package tetris

import (
	"testing"

	"github.com/sigco3111/Tetris-am3d/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := NewGame()
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	if g.CurrentPhase() != PhasePlaying {
		t.Fatalf("phase after Reset = %v, want playing", g.CurrentPhase())
	}
	return g
}

func press(a core.Action) core.InputFrame {
	f := core.NewInputFrame()
	f.Set(a)
	return f
}

func stepN(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(core.NewInputFrame())
	}
}

func TestResetStartsFresh(t *testing.T) {
	g := newTestGame(t, 1)

	st := g.State()
	if st.Score != 0 || st.Lines != 0 || st.Level != 1 {
		t.Errorf("fresh state = %+v, want zeroed counters at level 1", st)
	}
	if g.Active() == nil {
		t.Error("Reset should spawn an active piece")
	}
	if g.FallIntervalMs() != 1000 {
		t.Errorf("fall interval = %d, want 1000 at level 1", g.FallIntervalMs())
	}
}

func TestScoreFormula(t *testing.T) {
	tests := []struct {
		lines int
		level int
		want  int
	}{
		{1, 1, 100},
		{2, 1, 400},
		{3, 1, 900},
		{4, 1, 1600},
		{2, 3, 1200},
		{4, 5, 8000},
	}

	for _, tt := range tests {
		g := newTestGame(t, 1)
		g.level = tt.level
		g.applyScore(tt.lines)
		if g.score != tt.want {
			t.Errorf("clearing %d lines at level %d scored %d, want %d",
				tt.lines, tt.level, g.score, tt.want)
		}
	}
}

func TestLevelProgression(t *testing.T) {
	g := newTestGame(t, 1)

	tests := []struct {
		totalLines   int
		wantLevel    int
		wantInterval int
	}{
		{9, 1, 1000},
		{10, 2, 950},
		{19, 2, 950},
		{20, 3, 900},
		{30, 4, 850},
	}

	for _, tt := range tests {
		g.lines = tt.totalLines - 1
		g.applyScore(1)
		if g.level != tt.wantLevel {
			t.Errorf("level at %d lines = %d, want %d", tt.totalLines, g.level, tt.wantLevel)
		}
		if g.fallIntervalMs != tt.wantInterval {
			t.Errorf("interval at %d lines = %d, want %d",
				tt.totalLines, g.fallIntervalMs, tt.wantInterval)
		}
	}
}

func TestFallIntervalFloor(t *testing.T) {
	g := newTestGame(t, 1)
	if got := g.intervalForLevel(19); got != 100 {
		t.Errorf("interval at level 19 = %d, want 100", got)
	}
	if got := g.intervalForLevel(30); got != 100 {
		t.Errorf("interval at level 30 = %d, want floor 100", got)
	}
}

func TestLevelNeverLowered(t *testing.T) {
	g := newTestGame(t, 1)
	g.level = 6
	g.applyScore(1) // 1 line total would earn level 1
	if g.level != 6 {
		t.Errorf("level = %d, a high start level must keep its speed", g.level)
	}
}

func TestHardDropLocksAndSpawns(t *testing.T) {
	g := newTestGame(t, 7)
	kind := g.Active().Kind

	res := g.Step(press(core.ActionHardDrop))
	if !res.Locked {
		t.Error("hard drop should lock on the same tick")
	}

	occupied := 0
	for row := 0; row < g.board.Height(); row++ {
		for col := 0; col < g.board.Width(); col++ {
			if g.board.Cell(row, col) != 0 {
				occupied++
			}
		}
	}
	if occupied != 4 {
		t.Errorf("settled cells = %d, want 4 for kind %v", occupied, kind)
	}
	if g.Active() == nil {
		t.Error("a new piece should spawn after the lock")
	}
}

func TestSoftDropOnFloorLocks(t *testing.T) {
	g := newTestGame(t, 7)
	for g.Active().Descend(g.board) {
	}

	res := g.Step(press(core.ActionSoftDrop))
	if !res.Locked {
		t.Error("soft drop with no room should lock the piece")
	}
}

func TestManualRotationFailureIsNoOp(t *testing.T) {
	g := newTestGame(t, 7)
	// Bury the piece in a position no kick can escape.
	for row := 0; row < g.board.Height(); row++ {
		for col := 0; col < g.board.Width(); col++ {
			g.board.cells[row][col] = 1
		}
	}
	m := g.Active().Matrix()
	for y := range m {
		for x := range m[y] {
			if m[y][x] != 0 {
				g.board.cells[g.Active().Row+y][g.Active().Col+x] = 0
			}
		}
	}

	rot, row, col := g.Active().Rot, g.Active().Row, g.Active().Col
	res := g.Step(press(core.ActionRotate))
	if res.Locked {
		t.Error("a rejected manual rotation must not lock the piece")
	}
	if g.Active() == nil || g.Active().Rot != rot || g.Active().Row != row || g.Active().Col != col {
		t.Error("a rejected manual rotation must leave the piece unchanged")
	}
}

func TestGravityDescends(t *testing.T) {
	g := newTestGame(t, 7)
	rowBefore := g.Active().Row

	// One full fall interval at the default tick rate.
	stepN(g, g.runtime.TicksFor(g.FallIntervalMs()))

	if g.Active().Row != rowBefore+1 {
		t.Errorf("row after one fall interval = %d, want %d", g.Active().Row, rowBefore+1)
	}
}

func TestPauseHaltsGravity(t *testing.T) {
	g := newTestGame(t, 7)
	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause action should enter the paused phase")
	}

	rowBefore := g.Active().Row
	stepN(g, 300)
	if g.Active().Row != rowBefore {
		t.Errorf("piece moved from %d to %d while paused", rowBefore, g.Active().Row)
	}

	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause action should resume")
	}
}

func TestLineClearSequence(t *testing.T) {
	g := newTestGame(t, 7)
	// Bottom row complete except a two-wide gap the O piece fills exactly.
	for col := 0; col < 10; col++ {
		if col != 4 && col != 5 {
			g.board.cells[19][col] = 1
		}
	}
	g.active = NewPiece(KindO, 10)

	g.Step(press(core.ActionHardDrop))
	if len(g.ClearingRows()) != 1 {
		t.Fatalf("clearing rows = %v, want one armed row", g.ClearingRows())
	}
	if g.Active() != nil {
		t.Error("no piece should be active during the clear animation")
	}

	// Input must no-op until the animation finishes.
	res := g.Step(press(core.ActionLeft))
	if res.LinesCleared != 0 {
		t.Error("lines must not be credited before the animation completes")
	}

	for i := 0; i < g.runtime.TicksFor(300)+1; i++ {
		res = g.Step(core.NewInputFrame())
		if res.LinesCleared > 0 {
			break
		}
	}
	if res.LinesCleared != 1 {
		t.Fatalf("LinesCleared = %d, want 1 after the animation", res.LinesCleared)
	}
	if g.State().Lines != 1 || g.State().Score != 100 {
		t.Errorf("state after clear = %+v, want 1 line and 100 points", g.State())
	}
	if g.Active() == nil {
		t.Error("the next piece should spawn after the clear resolves")
	}
}

func TestArmedClearCompletesWhilePaused(t *testing.T) {
	g := newTestGame(t, 7)
	for col := 0; col < 10; col++ {
		g.board.cells[19][col] = 1
	}
	g.clearingRows = []int{19}
	g.clearTicks = g.runtime.TicksFor(300)

	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause should take effect")
	}

	cleared := 0
	for i := 0; i < g.runtime.TicksFor(300)+1; i++ {
		res := g.Step(core.NewInputFrame())
		cleared += res.LinesCleared
	}
	if cleared != 1 {
		t.Errorf("cleared = %d, an armed clear must finish even while paused", cleared)
	}
	if g.board.Cell(19, 0) != 0 {
		t.Error("the armed row should be removed from the board")
	}
}

func TestSpawnOntoFullBoardIsGameOver(t *testing.T) {
	g := newTestGame(t, 7)
	for row := 0; row < g.board.Height(); row++ {
		for col := 0; col < g.board.Width(); col++ {
			g.board.cells[row][col] = 1
		}
	}

	g.spawnNext()

	if !g.State().GameOver {
		t.Error("spawning onto a full board should end the game")
	}
	if len(g.ClearingRows()) != 0 {
		t.Error("the transition must skip the clearing phase")
	}
	if g.Active() != nil {
		t.Error("no piece should remain active after game over")
	}
}

func TestLockAboveTopIsGameOver(t *testing.T) {
	g := newTestGame(t, 7)
	// The stack blocks row 1, forcing the piece to rest straddling the top.
	g.board.cells[1][4] = 1
	g.board.cells[1][5] = 1
	g.active = NewPiece(KindO, 10)
	g.active.Row = -1

	g.Step(press(core.ActionSoftDrop))

	if !g.State().GameOver {
		t.Error("locking with cells above the top should end the game")
	}
	if g.Active() != nil {
		t.Error("no piece should remain active after game over")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t, 7)
	g.score = 500
	g.phase = PhaseGameOver
	g.active = nil

	g.Step(press(core.ActionRestart))

	st := g.State()
	if st.GameOver || st.Score != 0 || st.Lines != 0 {
		t.Errorf("state after restart = %+v, want a fresh session", st)
	}
	if g.Active() == nil {
		t.Error("restart should spawn a piece")
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(t, 7)
	g.score = 500

	g.Step(press(core.ActionRestart))
	if g.score != 500 {
		t.Error("restart must only work after game over")
	}
}

func TestToggleAI(t *testing.T) {
	g := newTestGame(t, 7)
	if g.State().Autopilot {
		t.Fatal("manual game should start with the autopilot off")
	}

	g.Step(press(core.ActionToggleAI))
	if !g.State().Autopilot {
		t.Error("toggle should enable the autopilot")
	}
	if g.ai.state != aiThinking {
		t.Error("enabling should arm a think delay for the active piece")
	}

	g.Step(press(core.ActionToggleAI))
	if g.State().Autopilot {
		t.Error("second toggle should disable the autopilot")
	}
	if g.ai.state != aiIdle {
		t.Error("disabling should disarm pending transitions")
	}
}

func TestManualInputIgnoredWhileAIDrives(t *testing.T) {
	g := newTestGame(t, 7)
	g.Step(press(core.ActionToggleAI))

	colBefore := g.Active().Col
	g.Step(press(core.ActionLeft))
	if g.Active() != nil && g.Active().Col != colBefore {
		t.Error("manual movement must be ignored while the autopilot drives")
	}
}

func TestAutoVariantStartsArmed(t *testing.T) {
	g := NewAutoGame()
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	g.Reset(cfg)

	if !g.State().Autopilot {
		t.Fatal("tetris_auto should start with the autopilot on")
	}
	if g.ai.state != aiThinking {
		t.Error("the first piece should already have a think delay armed")
	}

	// The toggle is fixed on for the autopilot variant.
	g.Step(press(core.ActionToggleAI))
	if !g.State().Autopilot {
		t.Error("tetris_auto must ignore the AI toggle")
	}
}

func TestAutopilotPlaysWithoutInput(t *testing.T) {
	g := NewAutoGame()
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	g.Reset(cfg)

	locks := 0
	for i := 0; i < 20*cfg.TickRate && locks < 5; i++ {
		res := g.Step(core.NewInputFrame())
		if res.Locked {
			locks++
		}
		if res.State.GameOver {
			break
		}
	}
	if locks < 5 {
		t.Errorf("autopilot locked %d pieces in 20 seconds, want at least 5", locks)
	}
}

func TestDeterministicReplay(t *testing.T) {
	run := func() uint64 {
		g := NewGame()
		cfg := core.DefaultConfig()
		cfg.Seed = 99
		g.Reset(cfg)
		g.Step(press(core.ActionToggleAI))
		stepN(g, 10*cfg.TickRate)
		snap := g.Snapshot()
		return snap.Hash()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seed produced different states: %d != %d", a, b)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	g := newTestGame(t, 13)
	g.Step(press(core.ActionToggleAI))
	stepN(g, 5*g.runtime.TickRate)
	snap := g.Snapshot()

	restored := newTestGame(t, 13)
	restored.ApplySnapshot(snap)

	got := restored.Snapshot()
	if got.Hash() != snap.Hash() {
		t.Errorf("round-trip hash mismatch: %d != %d", got.Hash(), snap.Hash())
	}
}

func TestRegistryVariants(t *testing.T) {
	for _, id := range []string{"tetris", "tetris_auto"} {
		g := NewGame()
		if id == "tetris_auto" {
			g = NewAutoGame()
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
		if g.Title() == "" {
			t.Errorf("%s: Title() should not be empty", id)
		}
	}
}
