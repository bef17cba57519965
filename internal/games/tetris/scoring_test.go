package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

func TestBaseScore(t *testing.T) {
	r := DefaultRules()
	tests := []struct {
		lines int
		want  int
	}{
		{0, 0},
		{1, 40},
		{2, 100},
		{3, 300},
		{4, 1200},
		{5, 0},
		{-1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.BaseScore(tt.lines), "lines=%d", tt.lines)
	}
	assert.Equal(t, 3600, r.BaseScore(4)*3, "tetris at level 3")
}

func TestLevelForScore(t *testing.T) {
	r := DefaultRules()
	assert.Equal(t, 1, r.LevelForScore(0))
	assert.Equal(t, 1, r.LevelForScore(999))
	assert.Equal(t, 2, r.LevelForScore(1000))
	assert.Equal(t, 6, r.LevelForScore(5600))
}

func TestGravityInterval(t *testing.T) {
	r := DefaultRules()
	tests := []struct {
		level int
		want  int
	}{
		{0, 1000},
		{1, 950},
		{10, 500},
		{19, 50},
		{30, 50},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.GravityInterval(tt.level), "level=%d", tt.level)
	}
}

func TestRulesFromConfig(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Field.Width = 12
	cfg.Rules.Compaction = config.CompactionLegacy
	cfg.Scoring.LineScores = []int{1, 2, 3, 4}

	r := RulesFromConfig(cfg)
	assert.Equal(t, 12, r.Width)
	assert.Equal(t, 20, r.Height)
	assert.Equal(t, CompactLegacy, r.Compaction)
	assert.Equal(t, [4]int{1, 2, 3, 4}, r.LineScores)
	assert.Equal(t, CompactFull, DefaultRules().Compaction)
}
