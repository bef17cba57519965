package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/dependencies/clock"
	"github.com/vovakirdan/tui-tetris/internal/dependencies/random"
)

// Phase is the session's position in the piece lifecycle.
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseLocking
	PhaseLineClearing
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseLineClearing:
		return "line_clearing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Recorder receives the final score when a game ends.
type Recorder interface {
	Record(score int, at time.Time) error
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(score int, at time.Time) error

// Record calls f.
func (f RecorderFunc) Record(score int, at time.Time) error {
	return f(score, at)
}

// Session is one player's game: the playfield, the falling and next
// pieces, and score/level bookkeeping. A Session is owned by a single
// control loop and is not safe for concurrent use.
type Session struct {
	rules    Rules
	rng      random.Random
	clock    clock.Clock
	recorder Recorder

	field   *Playfield
	current Piece
	next    Piece

	score int
	level int
	lines int

	phase         Phase
	paused        bool
	fallMs        int
	scoreRecorded bool
	recordErr     error
}

// Option configures a Session.
type Option func(*Session)

// WithRandom sets the piece randomizer.
func WithRandom(r random.Random) Option {
	return func(s *Session) { s.rng = r }
}

// WithClock sets the clock used to timestamp recorded scores.
func WithClock(c clock.Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithRecorder sets the game-over score recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Session) { s.recorder = r }
}

// NewSession creates a session ready to play.
func NewSession(rules Rules, opts ...Option) *Session {
	s := &Session{
		rules: rules,
		rng:   random.New(time.Now().UnixNano()),
		clock: clock.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.field = NewPlayfield(rules.Width, rules.Height, rules.Compaction)
	s.Reset()
	return s
}

// SetRecorder replaces the score recorder.
func (s *Session) SetRecorder(r Recorder) {
	s.recorder = r
}

// SetRandom replaces the piece randomizer; takes effect on the next draw.
func (s *Session) SetRandom(r random.Random) {
	s.rng = r
}

// Reset starts a new game on the same session.
func (s *Session) Reset() {
	s.field.Reset()
	s.score = 0
	s.level = 1
	s.lines = 0
	s.paused = false
	s.fallMs = 0
	s.scoreRecorded = false
	s.recordErr = nil

	s.current = s.drawPiece()
	s.next = s.drawPiece()
	s.phase = PhaseSpawning
	s.advance()
}

func (s *Session) drawPiece() Piece {
	return NewPiece(Kinds[s.rng.Intn(len(Kinds))], s.rules.Width)
}

// Tick feeds elapsed wall time into gravity and returns the number of
// lines cleared as a result. Paused and finished games ignore ticks.
func (s *Session) Tick(elapsedMs int) int {
	if s.phase != PhaseFalling || s.paused || elapsedMs <= 0 {
		return 0
	}
	s.fallMs += elapsedMs
	if s.fallMs <= s.rules.GravityInterval(s.level) {
		return 0
	}
	s.fallMs = 0
	return s.gravityStep()
}

func (s *Session) gravityStep() int {
	if s.field.CanPlace(s.current, 0, 1) {
		s.current.Move(0, 1)
		return 0
	}
	s.phase = PhaseLocking
	return s.advance()
}

// advance runs the automatic phases until the session is Falling or over.
func (s *Session) advance() int {
	cleared := 0
	for {
		switch s.phase {
		case PhaseSpawning:
			if !s.field.CanPlace(s.current, 0, 0) {
				s.endGame()
				continue
			}
			s.phase = PhaseFalling
		case PhaseLocking:
			s.field.Freeze(s.current)
			s.current = s.next
			s.next = s.drawPiece()
			if !s.field.CanPlace(s.current, 0, 0) {
				s.endGame()
				continue
			}
			s.phase = PhaseLineClearing
		case PhaseLineClearing:
			cleared = s.field.ClearLines()
			s.award(cleared)
			s.phase = PhaseFalling
		default:
			return cleared
		}
	}
}

func (s *Session) award(n int) {
	if n <= 0 {
		return
	}
	s.lines += n
	s.score += s.rules.BaseScore(n) * s.level
	s.level = s.rules.LevelForScore(s.score)
}

func (s *Session) endGame() {
	s.phase = PhaseGameOver
	if s.scoreRecorded {
		return
	}
	s.scoreRecorded = true
	if s.recorder != nil {
		s.recordErr = s.recorder.Record(s.score, s.clock.Now())
	}
}

func (s *Session) acceptsIntents() bool {
	return s.phase == PhaseFalling && !s.paused
}

func (s *Session) shift(dx, dy int) bool {
	if !s.acceptsIntents() || !s.field.CanPlace(s.current, dx, dy) {
		return false
	}
	s.current.Move(dx, dy)
	return true
}

// MoveLeft shifts the falling piece one column left if it fits.
func (s *Session) MoveLeft() bool { return s.shift(-1, 0) }

// MoveRight shifts the falling piece one column right if it fits.
func (s *Session) MoveRight() bool { return s.shift(1, 0) }

// SoftDrop moves the falling piece one row down if it fits.
// It never locks the piece.
func (s *Session) SoftDrop() bool { return s.shift(0, 1) }

// Rotate turns the falling piece to its next rotation if it fits.
func (s *Session) Rotate() bool {
	if !s.acceptsIntents() || !s.field.CanRotate(s.current) {
		return false
	}
	s.current.Rotate()
	return true
}

// HardDrop moves the falling piece down until it rests and returns the
// number of rows travelled. The piece locks on the next gravity step.
func (s *Session) HardDrop() int {
	rows := 0
	for s.shift(0, 1) {
		rows++
	}
	return rows
}

// TogglePause flips the paused flag and returns the new value.
// Finished games cannot be paused.
func (s *Session) TogglePause() bool {
	if s.phase != PhaseGameOver {
		s.paused = !s.paused
	}
	return s.paused
}

// Field returns the playfield for read access.
func (s *Session) Field() *Playfield { return s.field }

// Grid returns a copy of the settled cells, indexed [x][y].
func (s *Session) Grid() [][]core.Color { return s.field.Grid() }

// Cell returns the settled color at (x, y).
func (s *Session) Cell(x, y int) core.Color { return s.field.Cell(x, y) }

// Current returns a copy of the falling piece.
func (s *Session) Current() Piece { return s.current }

// Next returns a copy of the preview piece.
func (s *Session) Next() Piece { return s.next }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Level returns the current level, starting at 1.
func (s *Session) Level() int { return s.level }

// Lines returns the total number of cleared lines.
func (s *Session) Lines() int { return s.lines }

// GameOver reports whether the game has ended.
func (s *Session) GameOver() bool { return s.phase == PhaseGameOver }

// Paused reports whether the game is paused.
func (s *Session) Paused() bool { return s.paused }

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Rules returns the session rules.
func (s *Session) Rules() Rules { return s.rules }

// ScoreRecorded reports whether this game's score was handed to the recorder.
func (s *Session) ScoreRecorded() bool { return s.scoreRecorded }

// RecordErr returns the recorder's error from the last game-over, if any.
func (s *Session) RecordErr() error { return s.recordErr }
