package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default tetris engine configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Speed: SpeedConfig{
			InitialIntervalMs:   1000,
			DecrementPerLevelMs: 50,
			MinIntervalMs:       100,
		},
		Scoring: ScoringConfig{
			LineBase:      100,
			LinesPerLevel: 10,
		},
		Timing: TimingConfig{
			ClearAnimationMs: 300,
			AIStepIntervalMs: 75,
			AIThinkMinMs:     100,
			AIThinkMaxMs:     200,
		},
		AI: AIConfig{
			LineClearBonus:   5000,
			HeightPenalty:    10,
			HolePenalty:      75,
			BumpinessPenalty: 3,
		},
		Difficulty: DifficultyConfig{
			StartLevel: 1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultTetrisYAML
}
