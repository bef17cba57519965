package tui

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func TestScoreboardLoadsSelectedGame(t *testing.T) {
	store := storage.OpenJSONFile(filepath.Join(t.TempDir(), "scores.json"), storage.DefaultLimit)
	ctx := context.Background()
	at := time.Date(2024, 3, 1, 12, 30, 0, 0, time.Local)
	require.NoError(t, store.Append(ctx, "tetris", storage.HighScore{Score: 300, At: at}))
	require.NoError(t, store.Append(ctx, "tetris", storage.HighScore{Score: 900, At: at}))
	require.NoError(t, store.Append(ctx, "tetris_classic", storage.HighScore{Score: 50, At: at}))

	sb := NewScoreboardModel(store, 100, 30, WithStartGame("tetris_classic"))
	assert.Equal(t, "tetris_classic", sb.SelectedGame())
	require.Len(t, sb.Scores(), 1)

	next, _ := sb.Update(tea.KeyMsg{Type: tea.KeyTab})
	sb = next.(ScoreboardModel)
	assert.NotEqual(t, "tetris_classic", sb.SelectedGame())

	sb = NewScoreboardModel(store, 100, 30, WithStartGame("tetris"))
	require.Len(t, sb.Scores(), 2)
	assert.Equal(t, 900, sb.Scores()[0].Score)
	assert.Contains(t, sb.View(), "2024-03-01 12:30")
}

func TestScoreboardCorruptStoreWarns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	var buf bytes.Buffer
	logger := log.New(&buf)
	sb := NewScoreboardModel(storage.OpenJSONFile(path, storage.DefaultLimit), 100, 30,
		WithStartGame("tetris"), WithScoreboardLogger(logger))

	assert.Empty(t, sb.Scores())
	assert.Contains(t, sb.View(), "unreadable")
	assert.Contains(t, buf.String(), "high scores unreadable")
}

func TestScoreboardBackStandaloneQuits(t *testing.T) {
	sb := NewScoreboardModel(nil, 60, 20)
	assert.Contains(t, sb.View(), "No score store configured.")

	next, cmd := sb.Update(tea.KeyMsg{Type: tea.KeyEsc})
	sb = next.(ScoreboardModel)
	assert.True(t, sb.IsGoingBack())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestScoreboardBackEmbedded(t *testing.T) {
	sb := NewScoreboardModel(nil, 60, 20, asEmbedded())
	next, cmd := sb.Update(runeKey("q"))
	sb = next.(ScoreboardModel)
	assert.True(t, sb.IsQuitting())
	assert.Nil(t, cmd)
}
