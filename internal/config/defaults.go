package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Field: FieldConfig{
			Width:  10,
			Height: 20,
		},
		Gravity: GravityConfig{
			BaseMs: 1000,
			StepMs: 50,
			MinMs:  50,
		},
		Scoring: ScoringConfig{
			LineScores:     []int{40, 100, 300, 1200},
			PointsPerLevel: 1000,
		},
		Rules: RulesConfig{
			Compaction: CompactionFull,
		},
		HighScores: HighScoresConfig{
			Limit: 20,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
