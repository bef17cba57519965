package core

import "time"

// ScoreRecorder persists a finished game's score.
// Implementations report failures to the caller, which logs them; a failed
// save never changes game state.
type ScoreRecorder interface {
	RecordScore(gameID string, score int, at time.Time) error
}

// ScoreRecorderFunc adapts a function to ScoreRecorder.
type ScoreRecorderFunc func(gameID string, score int, at time.Time) error

// RecordScore calls f.
func (f ScoreRecorderFunc) RecordScore(gameID string, score int, at time.Time) error {
	return f(gameID, score, at)
}
