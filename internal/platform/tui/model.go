package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// mode is the modal sub-state of the game model.
type mode int

const (
	modePlaying mode = iota
	modeConfirmQuit
	modeHighScores
)

// Model is the Bubble Tea model for running a game.
// The quit confirmation and the high-score viewer are modes of this model;
// the game is not stepped while either is open.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	mode       mode
	scores     ScoreboardModel
	logger     *log.Logger
	tickGen    uint64 // Generation stamped on this model's ticks
	embedded   bool   // Running inside the SSH session model
	quitting   bool
	done       bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger used for score and screenshot failures.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// embedded makes quitting report through Done instead of tea.Quit.
func embedded() ModelOption {
	return func(m *Model) { m.embedded = true }
}

// NewModel creates a Bubble Tea model for the given game and starts it.
// When a store is given and the game supports it, finished games are recorded.
func NewModel(game registry.Game, store storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		logger:     log.Default(),
		tickGen:    nextTickGen(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	if rec, ok := game.(registry.Recordable); ok && store != nil {
		rec.SetScoreRecorder(storage.NewRecorder(store, m.logger))
	}

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input according to the current mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	switch m.mode {
	case modeConfirmQuit:
		if s := msg.String(); s == "y" || s == "Y" {
			return m.quit()
		}
		m.mode = modePlaying
		return m, nil

	case modeHighScores:
		updated, _ := m.scores.Update(msg)
		m.scores = updated.(ScoreboardModel)
		if m.scores.IsGoingBack() || m.scores.IsQuitting() {
			m.mode = modePlaying
		}
		return m, nil
	}

	switch action := m.keyMapper.MapKey(msg, m.gameState.GameOver); action {
	case core.ActionNone:
	case core.ActionQuit:
		return m.quit()
	case core.ActionBack:
		m.mode = modeConfirmQuit
	case core.ActionScores:
		m.openScores()
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m *Model) openScores() {
	m.scores = NewScoreboardModel(m.store, m.screen.Width(), m.screen.Height(),
		WithStartGame(m.game.ID()),
		WithScoreboardLogger(m.logger),
		asEmbedded(),
	)
	m.mode = modeHighScores
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.done = true
	if m.embedded {
		return m, nil
	}
	return m, tea.Quit
}

// handleResize processes window resize events.
// The game keeps running; a board that no longer fits shows a notice instead.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.mode == modeHighScores {
		updated, _ := m.scores.Update(msg)
		m.scores = updated.(ScoreboardModel)
	}
	return m, nil
}

// handleTick processes simulation ticks.
// Ticks scheduled by another model end their chain here.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if m.done || msg.Gen != m.tickGen {
		return m, nil
	}
	if m.mode != modePlaying {
		return m, m.tick()
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, m.tick()
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot locate home directory for screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".tetris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "dir", dir, "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting && !m.embedded {
		return ""
	}

	if m.mode == modeHighScores {
		return m.scores.View()
	}

	m.game.Render(m.screen)
	if m.mode == modeConfirmQuit {
		drawDialog(m.screen, core.ColorYellow, "Quit the game?", "", "Y  quit", "any key  resume")
	}
	return RenderScreen(m.screen)
}

// Done reports whether the player asked to leave the game.
func (m Model) Done() bool {
	return m.done
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, WithLogger(logger))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
