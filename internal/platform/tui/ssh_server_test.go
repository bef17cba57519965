package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func sessionSend(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	require.True(t, ok)
	return sm, cmd
}

func TestSessionModelFlow(t *testing.T) {
	store := storage.OpenJSONFile(filepath.Join(t.TempDir(), "scores.json"), storage.DefaultLimit)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	m := NewSessionModel(store, cfg, nil)
	assert.Contains(t, m.View(), "T E T R I S")

	// Menu -> game
	m, cmd := sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.game)
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "NEXT")

	// Game -> confirm -> menu
	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = sessionSend(t, m, runeKey("y"))
	assert.Nil(t, m.game)
	assert.False(t, m.quitting)

	// Menu -> scores -> menu
	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, m.scores)
	assert.Contains(t, m.View(), "HIGH SCORES")
	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.scores)

	// Quit
	m, cmd = sessionSend(t, m, runeKey("q"))
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSessionModelIgnoresPreviousGameTicks(t *testing.T) {
	store := storage.OpenJSONFile(filepath.Join(t.TempDir(), "scores.json"), storage.DefaultLimit)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	m := NewSessionModel(store, cfg, nil)

	m, cmd := sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	inFlight, ok := cmd().(TickMsg)
	require.True(t, ok)

	// Leave and start again before the first game's tick arrives
	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = sessionSend(t, m, runeKey("y"))
	require.Nil(t, m.game)
	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.game)

	game := m.game.game.(*tetris.Game)
	m, cmd = sessionSend(t, m, inFlight)
	assert.Nil(t, cmd, "old tick chain ends")
	assert.Equal(t, 0, game.Snapshot().FallMs)

	m, cmd = sessionSend(t, m, tickFor(*m.game))
	assert.NotNil(t, cmd)
	assert.Equal(t, 16, game.Snapshot().FallMs)
}
