// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetris engine.
package config

// TetrisConfig contains all tunable parameters for the tetris engine.
type TetrisConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Speed      SpeedConfig      `yaml:"speed"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Timing     TimingConfig     `yaml:"timing"`
	AI         AIConfig         `yaml:"ai"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playfield dimensions. Dimensions are fixed for
// the lifetime of a session.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines the gravity curve. The fall interval at level k is
// max(min_interval_ms, initial_interval_ms - (k-1)*decrement_per_level_ms).
type SpeedConfig struct {
	InitialIntervalMs   int `yaml:"initial_interval_ms"`
	DecrementPerLevelMs int `yaml:"decrement_per_level_ms"`
	MinIntervalMs       int `yaml:"min_interval_ms"`
}

// ScoringConfig defines score and leveling rules. Clearing n lines at level
// L scores n * line_base * n * L; a new level is reached every
// lines_per_level total lines.
type ScoringConfig struct {
	LineBase      int `yaml:"line_base"`
	LinesPerLevel int `yaml:"lines_per_level"`
}

// TimingConfig defines presentation pacing in milliseconds.
type TimingConfig struct {
	ClearAnimationMs int `yaml:"clear_animation_ms"`
	AIStepIntervalMs int `yaml:"ai_step_interval_ms"`
	AIThinkMinMs     int `yaml:"ai_think_min_ms"`
	AIThinkMaxMs     int `yaml:"ai_think_max_ms"`
}

// AIConfig defines the placement evaluator weights. All weights apply
// linearly; only line clears contribute positively.
type AIConfig struct {
	LineClearBonus   int `yaml:"line_clear_bonus"`
	HeightPenalty    int `yaml:"height_penalty"`
	HolePenalty      int `yaml:"hole_penalty"`
	BumpinessPenalty int `yaml:"bumpiness_penalty"`
}

// DifficultyConfig selects the session's starting level.
type DifficultyConfig struct {
	StartLevel int `yaml:"start_level"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// StartLevelForPreset returns the starting level for a difficulty preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 6
	default:
		return 1
	}
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty.StartLevel = StartLevelForPreset(preset)
}

// Normalize clamps nonsensical values back to the defaults so a partial or
// hand-edited YAML file cannot produce an unplayable engine.
func (c *TetrisConfig) Normalize() {
	def := DefaultTetrisConfig()

	if c.Board.Width < 4 {
		c.Board.Width = def.Board.Width
	}
	if c.Board.Height < 4 {
		c.Board.Height = def.Board.Height
	}
	if c.Speed.InitialIntervalMs <= 0 {
		c.Speed.InitialIntervalMs = def.Speed.InitialIntervalMs
	}
	if c.Speed.DecrementPerLevelMs < 0 {
		c.Speed.DecrementPerLevelMs = def.Speed.DecrementPerLevelMs
	}
	if c.Speed.MinIntervalMs <= 0 {
		c.Speed.MinIntervalMs = def.Speed.MinIntervalMs
	}
	if c.Scoring.LineBase <= 0 {
		c.Scoring.LineBase = def.Scoring.LineBase
	}
	if c.Scoring.LinesPerLevel <= 0 {
		c.Scoring.LinesPerLevel = def.Scoring.LinesPerLevel
	}
	if c.Timing.ClearAnimationMs <= 0 {
		c.Timing.ClearAnimationMs = def.Timing.ClearAnimationMs
	}
	if c.Timing.AIStepIntervalMs <= 0 {
		c.Timing.AIStepIntervalMs = def.Timing.AIStepIntervalMs
	}
	if c.Timing.AIThinkMinMs <= 0 {
		c.Timing.AIThinkMinMs = def.Timing.AIThinkMinMs
	}
	if c.Timing.AIThinkMaxMs < c.Timing.AIThinkMinMs {
		c.Timing.AIThinkMaxMs = def.Timing.AIThinkMaxMs
	}
	// An all-zero evaluator means the section was absent, not that every
	// weight was deliberately disabled.
	if c.AI == (AIConfig{}) {
		c.AI = def.AI
	}
	if c.AI.LineClearBonus < 0 {
		c.AI.LineClearBonus = def.AI.LineClearBonus
	}
	if c.AI.HeightPenalty < 0 {
		c.AI.HeightPenalty = def.AI.HeightPenalty
	}
	if c.AI.HolePenalty < 0 {
		c.AI.HolePenalty = def.AI.HolePenalty
	}
	if c.AI.BumpinessPenalty < 0 {
		c.AI.BumpinessPenalty = def.AI.BumpinessPenalty
	}
	if c.Difficulty.StartLevel < 1 {
		c.Difficulty.StartLevel = def.Difficulty.StartLevel
	}
}
