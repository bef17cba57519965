package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/config"
)

// Rules holds the tunable constants of a session.
type Rules struct {
	Width, Height  int
	GravityBaseMs  int
	GravityStepMs  int
	GravityMinMs   int
	LineScores     [4]int // Points for 1..4 lines at level 1
	PointsPerLevel int
	Compaction     Compaction
}

// DefaultRules returns the standard 10x20 rules.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultTetrisConfig())
}

// RulesFromConfig converts a validated config into session rules.
func RulesFromConfig(cfg config.TetrisConfig) Rules {
	r := Rules{
		Width:          cfg.Field.Width,
		Height:         cfg.Field.Height,
		GravityBaseMs:  cfg.Gravity.BaseMs,
		GravityStepMs:  cfg.Gravity.StepMs,
		GravityMinMs:   cfg.Gravity.MinMs,
		PointsPerLevel: cfg.Scoring.PointsPerLevel,
	}
	copy(r.LineScores[:], cfg.Scoring.LineScores)
	if cfg.Rules.Compaction == config.CompactionLegacy {
		r.Compaction = CompactLegacy
	}
	return r
}

// BaseScore returns the level-1 reward for clearing n lines at once.
// Zero or out-of-range counts score nothing.
func (r Rules) BaseScore(n int) int {
	if n < 1 || n > len(r.LineScores) {
		return 0
	}
	return r.LineScores[n-1]
}

// LevelForScore returns score/PointsPerLevel + 1.
func (r Rules) LevelForScore(score int) int {
	if r.PointsPerLevel <= 0 {
		return 1
	}
	return score/r.PointsPerLevel + 1
}

// GravityInterval returns the fall interval in milliseconds for a level:
// max(base - level*step, min).
func (r Rules) GravityInterval(level int) int {
	return max(r.GravityBaseMs-level*r.GravityStepMs, r.GravityMinMs)
}
