// Package tetris implements a falling-block puzzle with an optional
// heuristic autopilot. The game is pure logic stepped on a fixed tick:
// gravity, the line-clear animation, and the autopilot's deliberation
// and action pacing are all counted in simulation ticks derived from
// the runtime tick rate.
package tetris

import (
	"github.com/sigco3111/Tetris-am3d/internal/config"
	"github.com/sigco3111/Tetris-am3d/internal/core"
	"github.com/sigco3111/Tetris-am3d/internal/registry"
)

// Phase is the top-level lifecycle state.
type Phase int

const (
	PhaseInitial Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseInitial:
		return "initial"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	startLevel       int
)

// SetConfigPath sets a custom config file path used by the next Reset.
func SetConfigPath(path string) { configPath = path }

// SetDifficultyPreset applies a named preset before the next Reset.
// Unknown names leave the preset unset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	default:
		difficultyPreset = ""
	}
}

// SetStartLevel overrides the starting level (1-based) for the next Reset.
// Values below 1 fall back to the config file.
func SetStartLevel(level int) { startLevel = level }

// GetStartLevel returns the current start level override, 0 if unset.
func GetStartLevel() int { return startLevel }

// Game is the playfield state machine. It owns the board, the active and
// queued pieces, scoring, and the autopilot; Step is the only mutator.
type Game struct {
	id    string
	title string

	cfg     config.TetrisConfig
	runtime core.RuntimeConfig

	gen     *Generator
	planner *Planner
	ai      autopilot

	board  Board
	active *Piece
	next   Kind

	phase        Phase
	clearingRows []int
	clearTicks   int

	score          int
	lines          int
	level          int
	fallIntervalMs int
	gravityTicks   int

	tick            int
	lockedThisTick  bool
	clearedThisTick int

	autostart bool
}

// NewGame creates a manual-play game; the autopilot starts disabled.
func NewGame() *Game {
	return &Game{id: "tetris", title: "Tetris"}
}

// NewAutoGame creates a game with the autopilot engaged from the first
// spawn. Manual movement is rejected while it drives.
func NewAutoGame() *Game {
	return &Game{id: "tetris_auto", title: "Tetris (Autopilot)", autostart: true}
}

func init() {
	registry.Register("tetris", func() registry.Game { return NewGame() })
	registry.Register("tetris_auto", func() registry.Game { return NewAutoGame() })
}

func (g *Game) ID() string    { return g.id }
func (g *Game) Title() string { return g.title }

// Reset loads configuration, reseeds the piece generator, and starts a
// fresh run in the Playing phase.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg

	tc, err := config.LoadTetris(configPath)
	if err != nil {
		tc = config.DefaultTetrisConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTetrisPreset(&tc, difficultyPreset)
	}
	if startLevel >= 1 {
		tc.Difficulty.StartLevel = startLevel
	}
	tc.Normalize()
	g.cfg = tc

	g.gen = NewGenerator(cfg.Seed, tc.Board.Width)
	g.planner = NewPlanner(tc.AI)
	g.ai = autopilot{enabled: g.autostart}

	g.board = NewBoard(tc.Board.Width, tc.Board.Height)
	g.score = 0
	g.lines = 0
	g.level = tc.Difficulty.StartLevel
	g.fallIntervalMs = g.intervalForLevel(g.level)
	g.gravityTicks = 0
	g.tick = 0
	g.clearingRows = nil
	g.clearTicks = 0
	g.phase = PhasePlaying

	g.next = g.gen.Spawn()
	g.spawnNext()
}

// Step advances the simulation by one tick. Order matters: the line-clear
// countdown runs before the pause guard so an armed clear always completes,
// and the autopilot acts before gravity so its lock decisions are not
// preempted by a gravity descent on the same tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	g.lockedThisTick = false
	g.clearedThisTick = 0

	if input.Has(core.ActionRestart) && g.phase == PhaseGameOver {
		g.runtime.Seed = g.gen.Reseed()
		g.Reset(g.runtime)
		return g.result()
	}

	if input.Has(core.ActionPause) {
		g.togglePause()
	}
	if input.Has(core.ActionToggleAI) && !g.autostart {
		g.toggleAI()
	}

	if len(g.clearingRows) > 0 {
		g.clearTicks--
		if g.clearTicks <= 0 {
			g.resolveClear()
		}
		return g.result()
	}

	if g.phase != PhasePlaying || g.active == nil {
		return g.result()
	}

	if g.ai.enabled {
		g.stepAutopilot()
	} else {
		g.applyManual(input)
	}

	if g.active != nil && len(g.clearingRows) == 0 {
		g.applyGravity()
	}

	return g.result()
}

func (g *Game) togglePause() {
	switch g.phase {
	case PhasePlaying:
		g.phase = PhasePaused
		g.ai.disarm()
	case PhasePaused:
		g.phase = PhasePlaying
		if g.ai.enabled && g.active != nil {
			g.armAI()
		}
	}
}

func (g *Game) toggleAI() {
	g.ai.enabled = !g.ai.enabled
	if g.ai.enabled {
		if g.phase == PhasePlaying && g.active != nil {
			g.armAI()
		}
	} else {
		g.ai.disarm()
	}
}

func (g *Game) applyManual(input core.InputFrame) {
	switch {
	case input.Has(core.ActionLeft):
		g.active.Shift(g.board, -1)
	case input.Has(core.ActionRight):
		g.active.Shift(g.board, 1)
	case input.Has(core.ActionRotate):
		// A rejected rotation is a silent no-op in manual play.
		g.active.Rotate(g.board)
	case input.Has(core.ActionSoftDrop):
		if !g.active.Descend(g.board) {
			g.lockActive()
		}
	case input.Has(core.ActionHardDrop):
		for g.active.Descend(g.board) {
		}
		g.lockActive()
	}
}

// stepAutopilot runs one tick of the deliberate-then-execute cycle. The
// driver performs at most one discrete action per step interval; any
// action the board rejects locks the piece where it stands.
func (g *Game) stepAutopilot() {
	switch g.ai.state {
	case aiThinking:
		g.ai.delay--
		if g.ai.delay > 0 {
			return
		}
		g.ai.plan = g.planner.PlanBestMove(g.board, g.active)
		g.ai.state = aiStepping
		g.ai.delay = g.runtime.TicksFor(g.cfg.Timing.AIStepIntervalMs)
	case aiStepping:
		g.ai.delay--
		if g.ai.delay > 0 {
			return
		}
		g.ai.delay = g.runtime.TicksFor(g.cfg.Timing.AIStepIntervalMs)
		g.aiAct()
	}
}

func (g *Game) aiAct() {
	plan := g.ai.plan
	if plan == nil {
		// No reachable placement: force the piece down until it locks.
		if !g.active.Descend(g.board) {
			g.lockActive()
		}
		return
	}

	switch {
	case g.active.Rot != plan.Rotation:
		if !g.active.Rotate(g.board) {
			g.lockActive()
		}
	case g.active.Col != plan.Col:
		dx := 1
		if plan.Col < g.active.Col {
			dx = -1
		}
		if !g.active.Shift(g.board, dx) {
			g.lockActive()
		}
	case g.active.Row < plan.Row:
		if !g.active.Descend(g.board) {
			g.lockActive()
		}
	default:
		g.lockActive()
	}
}

func (g *Game) applyGravity() {
	g.gravityTicks++
	if g.gravityTicks < g.runtime.TicksFor(g.fallIntervalMs) {
		return
	}
	g.gravityTicks = 0
	if !g.active.Descend(g.board) {
		g.lockActive()
	}
}

// lockActive settles the current piece into the board. Any occupied cell
// resting above the top row ends the run; otherwise full rows start the
// clear animation and the next piece spawns.
func (g *Game) lockActive() {
	g.ai.disarm()
	g.lockedThisTick = true

	aboveTop := false
	m := g.active.Matrix()
	for y := range m {
		for x := range m[y] {
			if m[y][x] != 0 && g.active.Row+y < 0 {
				aboveTop = true
			}
		}
	}

	g.board = g.board.Settle(m, g.active.Row, g.active.Col)
	g.active = nil
	g.gravityTicks = 0

	if aboveTop {
		g.phase = PhaseGameOver
		return
	}

	full := g.board.FullRows()
	if len(full) > 0 {
		g.clearingRows = full
		g.clearTicks = g.runtime.TicksFor(g.cfg.Timing.ClearAnimationMs)
		return
	}

	g.spawnNext()
}

// resolveClear removes the flashed rows, applies scoring and leveling,
// and spawns the next piece. Runs exactly once per armed clear.
func (g *Game) resolveClear() {
	n := len(g.clearingRows)
	g.board = g.board.RemoveRows(g.clearingRows)
	g.clearingRows = nil
	g.clearTicks = 0
	g.clearedThisTick = n
	g.applyScore(n)

	if g.phase == PhasePlaying || g.phase == PhasePaused {
		g.spawnNext()
	}
}

// applyScore awards n*base*n*level for an n-line clear and raises the
// level when the cleared-lines total crosses a threshold. The level is
// never lowered, so a high start level keeps its speed.
func (g *Game) applyScore(n int) {
	if n <= 0 {
		return
	}
	g.score += n * g.cfg.Scoring.LineBase * n * g.level
	g.lines += n

	earned := g.lines/g.cfg.Scoring.LinesPerLevel + 1
	if earned > g.level {
		g.level = earned
	}
	g.fallIntervalMs = g.intervalForLevel(g.level)
}

func (g *Game) intervalForLevel(level int) int {
	ms := g.cfg.Speed.InitialIntervalMs - (level-1)*g.cfg.Speed.DecrementPerLevelMs
	return core.Max(g.cfg.Speed.MinIntervalMs, ms)
}

// spawnNext promotes the queued piece to active and draws a fresh queue
// entry. A spawn position already blocked by settled cells ends the run
// immediately, with no piece on the board.
func (g *Game) spawnNext() {
	p := g.gen.NewPiece(g.next)
	g.next = g.gen.Spawn()

	if !g.board.CanPlace(p.Matrix(), p.Row, p.Col) {
		g.active = nil
		g.phase = PhaseGameOver
		return
	}

	g.active = p
	if g.ai.enabled {
		g.armAI()
	}
}

// armAI starts a deliberation delay of half the current fall interval,
// clamped to the configured think window.
func (g *Game) armAI() {
	ms := core.Clamp(g.fallIntervalMs/2, g.cfg.Timing.AIThinkMinMs, g.cfg.Timing.AIThinkMaxMs)
	g.ai.arm(g.runtime.TicksFor(ms))
}

func (g *Game) result() core.StepResult {
	return core.StepResult{
		State:        g.State(),
		Locked:       g.lockedThisTick,
		LinesCleared: g.clearedThisTick,
	}
}

// State reports the current score, progress, and lifecycle flags.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		Lines:     g.lines,
		Level:     g.level,
		GameOver:  g.phase == PhaseGameOver,
		Paused:    g.phase == PhasePaused,
		Autopilot: g.ai.enabled,
	}
}

// BoardView returns the settled grid for rendering and tests.
func (g *Game) BoardView() Board { return g.board }

// Active returns the falling piece, nil while clearing or after game over.
func (g *Game) Active() *Piece { return g.active }

// NextKind returns the queued piece kind.
func (g *Game) NextKind() Kind { return g.next }

// ClearingRows returns the rows currently flashing, empty outside the
// clear animation.
func (g *Game) ClearingRows() []int { return g.clearingRows }

// CurrentPhase returns the lifecycle phase.
func (g *Game) CurrentPhase() Phase { return g.phase }

// FallIntervalMs returns the current gravity interval in milliseconds.
func (g *Game) FallIntervalMs() int { return g.fallIntervalMs }
