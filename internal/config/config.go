// Package config provides YAML-based game configuration loading,
// difficulty presets and environment overrides for the tetris platform.
package config

import (
	"errors"
	"fmt"
)

// Compaction policy names accepted in rules.compaction.
const (
	CompactionFull   = "full"
	CompactionLegacy = "legacy"
)

// TetrisConfig contains all configuration for the tetris game.
type TetrisConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Gravity    GravityConfig    `yaml:"gravity"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Rules      RulesConfig      `yaml:"rules"`
	HighScores HighScoresConfig `yaml:"highscores"`
}

// FieldConfig defines the playfield dimensions.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GravityConfig defines the per-level fall interval:
// max(base_ms - level*step_ms, min_ms).
type GravityConfig struct {
	BaseMs int `yaml:"base_ms"`
	StepMs int `yaml:"step_ms"`
	MinMs  int `yaml:"min_ms"`
}

// ScoringConfig defines line-clear rewards and level thresholds.
type ScoringConfig struct {
	LineScores     []int `yaml:"line_scores"` // Points for 1..4 lines, multiplied by level
	PointsPerLevel int   `yaml:"points_per_level"`
}

// RulesConfig holds rule switches.
type RulesConfig struct {
	Compaction string `yaml:"compaction"` // "full" or "legacy"
}

// HighScoresConfig controls the ranked score list.
type HighScoresConfig struct {
	Limit int `yaml:"limit"`
}

// Validate reports the first unusable value in the config.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Field.Width < 4 {
		errs = append(errs, fmt.Errorf("field.width must be at least 4, got %d", c.Field.Width))
	}
	if c.Field.Height < 4 {
		errs = append(errs, fmt.Errorf("field.height must be at least 4, got %d", c.Field.Height))
	}
	if c.Gravity.MinMs <= 0 {
		errs = append(errs, fmt.Errorf("gravity.min_ms must be positive, got %d", c.Gravity.MinMs))
	}
	if c.Gravity.BaseMs < c.Gravity.MinMs {
		errs = append(errs, fmt.Errorf("gravity.base_ms (%d) below gravity.min_ms (%d)", c.Gravity.BaseMs, c.Gravity.MinMs))
	}
	if len(c.Scoring.LineScores) != 4 {
		errs = append(errs, fmt.Errorf("scoring.line_scores needs 4 entries, got %d", len(c.Scoring.LineScores)))
	}
	if c.Scoring.PointsPerLevel <= 0 {
		errs = append(errs, fmt.Errorf("scoring.points_per_level must be positive, got %d", c.Scoring.PointsPerLevel))
	}
	switch c.Rules.Compaction {
	case CompactionFull, CompactionLegacy:
	default:
		errs = append(errs, fmt.Errorf("rules.compaction must be %q or %q, got %q", CompactionFull, CompactionLegacy, c.Rules.Compaction))
	}
	if c.HighScores.Limit <= 0 {
		errs = append(errs, fmt.Errorf("highscores.limit must be positive, got %d", c.HighScores.Limit))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
