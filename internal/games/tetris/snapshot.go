package tetris

// Snapshot contains the complete observable game state for replay/save.
// Uses primitive types only for stable serialization. The generator's
// internal RNG state is not captured; replays restart from the seed.
type Snapshot struct {
	Tick  uint64
	Score int
	Lines int
	Level int
	Phase string

	Width  int
	Height int
	// Settled cells flattened row*width + col, kind tags (0 empty).
	Cells []int

	ActivePresent  int // 1 when a piece is falling
	ActiveKind     int
	ActiveRotation int
	ActiveRow      int
	ActiveCol      int

	NextKind int

	ClearingRows []int
	ClearTicks   int

	AIEnabled      int
	FallIntervalMs int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w, h := g.board.Width(), g.board.Height()
	cells := make([]int, w*h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			cells[row*w+col] = g.board.Cell(row, col)
		}
	}

	snap := Snapshot{
		Tick:  uint64(g.tick), //#nosec G115 -- tick count is always positive
		Score: g.score,
		Lines: g.lines,
		Level: g.level,
		Phase: g.phase.String(),

		Width:  w,
		Height: h,
		Cells:  cells,

		NextKind: int(g.next),

		ClearingRows: append([]int(nil), g.clearingRows...),
		ClearTicks:   g.clearTicks,

		FallIntervalMs: g.fallIntervalMs,
	}

	if g.active != nil {
		snap.ActivePresent = 1
		snap.ActiveKind = int(g.active.Kind)
		snap.ActiveRotation = g.active.Rot
		snap.ActiveRow = g.active.Row
		snap.ActiveCol = g.active.Col
	}
	if g.ai.enabled {
		snap.AIEnabled = 1
	}

	return snap
}

// ApplySnapshot restores observable game state from a snapshot.
// Reset must have run first so the board dimensions and config are set.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tick = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.score = snap.Score
	g.lines = snap.Lines
	g.level = snap.Level
	g.fallIntervalMs = snap.FallIntervalMs

	switch snap.Phase {
	case "paused":
		g.phase = PhasePaused
	case "game_over":
		g.phase = PhaseGameOver
	case "initial":
		g.phase = PhaseInitial
	default:
		g.phase = PhasePlaying
	}

	if snap.Width == g.board.Width() && snap.Height == g.board.Height() &&
		len(snap.Cells) == snap.Width*snap.Height {
		b := NewBoard(snap.Width, snap.Height)
		for row := 0; row < snap.Height; row++ {
			for col := 0; col < snap.Width; col++ {
				b.cells[row][col] = snap.Cells[row*snap.Width+col]
			}
		}
		g.board = b
	}

	if snap.ActivePresent == 1 {
		p := NewPiece(Kind(snap.ActiveKind), g.board.Width())
		p.Rot = snap.ActiveRotation
		p.Row = snap.ActiveRow
		p.Col = snap.ActiveCol
		g.active = p
	} else {
		g.active = nil
	}

	g.next = Kind(snap.NextKind)
	g.clearingRows = append([]int(nil), snap.ClearingRows...)
	g.clearTicks = snap.ClearTicks
	g.ai.enabled = snap.AIEnabled == 1
	g.ai.disarm()
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lines)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextKind)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ActivePresent)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ActiveKind)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ActiveRotation) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ActiveRow+8)    //#nosec G115 -- row can be slightly negative
	h = h*31 + uint64(snap.ActiveCol+8)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ClearTicks)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AIEnabled)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FallIntervalMs) //#nosec G115 -- hash computation

	for _, c := range snap.Phase {
		h = h*31 + uint64(c)
	}
	for _, v := range snap.Cells {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.ClearingRows {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
