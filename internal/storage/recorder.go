package storage

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// saveTimeout bounds one score append.
const saveTimeout = 5 * time.Second

// Recorder adapts a Store to core.ScoreRecorder and logs outcomes.
type Recorder struct {
	store  Store
	logger *log.Logger
}

var _ core.ScoreRecorder = (*Recorder)(nil)

// NewRecorder creates a Recorder. A nil logger uses the default logger.
func NewRecorder(store Store, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.Default()
	}
	return &Recorder{store: store, logger: logger}
}

// RecordScore appends the score. Failures are logged as warnings and returned.
func (r *Recorder) RecordScore(gameID string, score int, at time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := r.store.Append(ctx, gameID, HighScore{Score: score, At: at}); err != nil {
		r.logger.Warn("failed to save score", "game", gameID, "score", score, "err", err)
		return err
	}
	r.logger.Debug("score saved", "game", gameID, "score", score)
	return nil
}
