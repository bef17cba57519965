// Package tetris implements the falling-block puzzle: the piece catalog,
// the playfield with its collision and line-clear rules, and the Session
// state machine driven by gravity ticks and player intents.
// Game adapts a Session to the platform's registry.Game interface.
package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/dependencies/random"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Variant selects the line-clear rules of a registered game.
type Variant string

const (
	VariantModern  Variant = "tetris"
	VariantClassic Variant = "tetris_classic"
)

// Package-level settings applied on the next Reset (set by the CLI).
var (
	configPath       string
	difficultyPreset = config.DifficultyNormal
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// LoadRules loads the config for a variant and applies the difficulty preset.
// The classic variant always uses legacy compaction.
func LoadRules(variant Variant) (Rules, error) {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		return Rules{}, err
	}
	config.ApplyTetrisPreset(&cfg, difficultyPreset)
	rules := RulesFromConfig(cfg)
	if variant == VariantClassic {
		rules.Compaction = CompactLegacy
	}
	return rules, nil
}

// Game adapts a Session to registry.Game.
type Game struct {
	variant  Variant
	rules    Rules
	rulesSet bool
	session  *Session
	rng      *random.Seeded
	recorder core.ScoreRecorder

	cfg   core.RuntimeConfig
	clock *core.TickClock
}

// New creates a game with full row compaction.
func New() *Game {
	return &Game{variant: VariantModern}
}

// NewClassic creates a game that keeps the original row-compaction quirk.
func NewClassic() *Game {
	return &Game{variant: VariantClassic}
}

// NewWithRules creates a game with explicit rules, bypassing config loading.
func NewWithRules(variant Variant, rules Rules) *Game {
	return &Game{variant: variant, rules: rules, rulesSet: true}
}

func init() {
	registry.Register(string(VariantModern), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantClassic), func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Tetris (Classic)"
	}
	return "Tetris"
}

// SetScoreRecorder installs the recorder called once per game over.
func (g *Game) SetScoreRecorder(r core.ScoreRecorder) {
	g.recorder = r
	if g.session != nil {
		g.session.SetRecorder(g.sessionRecorder())
	}
}

func (g *Game) sessionRecorder() Recorder {
	if g.recorder == nil {
		return nil
	}
	return RecorderFunc(func(score int, at time.Time) error {
		return g.recorder.RecordScore(g.ID(), score, at)
	})
}

// Reset initializes or restarts the game.
// A config that fails to load falls back to the default rules.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.rulesSet {
		rules, err := LoadRules(g.variant)
		if err != nil {
			rules = DefaultRules()
			if g.variant == VariantClassic {
				rules.Compaction = CompactLegacy
			}
		}
		g.rules = rules
		g.rulesSet = true
	}

	g.rng = random.New(cfg.Seed)
	g.clock = cfg.TickClock()
	g.cfg = cfg

	if g.session == nil {
		g.session = NewSession(g.rules, WithRandom(g.rng), WithRecorder(g.sessionRecorder()))
		return
	}
	g.session.SetRandom(g.rng)
	g.session.Reset()
}

// Step applies this frame's intents and then one tick of gravity.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.session.GameOver() {
		next := g.cfg
		next.Seed = g.rng.Int63()
		g.Reset(next)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.session.TogglePause()
	}
	if in.Has(core.ActionLeft) {
		g.session.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		g.session.MoveRight()
	}
	if in.Has(core.ActionRotate) {
		g.session.Rotate()
	}
	if in.Has(core.ActionSoftDrop) {
		g.session.SoftDrop()
	}
	if in.Has(core.ActionHardDrop) {
		g.session.HardDrop()
	}

	cleared := g.session.Tick(g.clock.Next())
	return core.StepResult{State: g.State(), LinesCleared: cleared}
}

// State returns the platform-level game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Level: 1}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		GameOver: g.session.GameOver(),
		Paused:   g.session.Paused(),
	}
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Snapshot returns the session snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}
