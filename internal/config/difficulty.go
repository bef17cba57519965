package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a flag value to a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyHard:
		return DifficultyHard, true
	default:
		return "", false
	}
}

// ApplyTetrisPreset adjusts gravity for a difficulty preset.
// Normal keeps the configured values.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gravity.BaseMs += cfg.Gravity.BaseMs / 2
		cfg.Gravity.StepMs = max(cfg.Gravity.StepMs*3/4, 1)
	case DifficultyHard:
		cfg.Gravity.BaseMs = max(cfg.Gravity.BaseMs*3/5, cfg.Gravity.MinMs)
	}
}
