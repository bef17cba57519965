package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFileMissingIsEmpty(t *testing.T) {
	store := OpenJSONFile(filepath.Join(t.TempDir(), "high_scores.json"), 0)

	top, err := store.Top(context.Background(), "tetris", 0)
	require.NoError(t, err)
	assert.NotNil(t, top)
	assert.Empty(t, top)
}

func TestJSONFileReadsOriginalLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "high_scores.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`[[40, "2023-01-02 03:04"], [1200, "2023-01-03 10:00"], [100, "2023-01-01 00:00"]]`), 0o644))

	store := OpenJSONFile(path, 0)
	top, err := store.Top(context.Background(), "tetris", 0)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, 1200, top[0].Score)
	assert.Equal(t, 100, top[1].Score)
	assert.Equal(t, 40, top[2].Score)
	assert.True(t, time.Date(2023, 1, 3, 10, 0, 0, 0, time.Local).Equal(top[0].At))
}

func TestJSONFileAppendWritesOriginalLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores", "high_scores.json")
	store := OpenJSONFile(path, 2)
	ctx := context.Background()
	at := time.Date(2024, 7, 8, 9, 10, 59, 0, time.Local)

	require.NoError(t, store.Append(ctx, "tetris", HighScore{Score: 300, At: at}))
	require.NoError(t, store.Append(ctx, "tetris", HighScore{Score: 100, At: at}))
	require.NoError(t, store.Append(ctx, "tetris", HighScore{Score: 200, At: at}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[[300, "2024-07-08 09:10"], [200, "2024-07-08 09:10"]]`, string(data))
}

func TestJSONFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "high_scores.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))
	store := OpenJSONFile(path, 0)
	ctx := context.Background()

	top, err := store.Top(ctx, "tetris", 0)
	assert.True(t, errors.Is(err, ErrCorrupt))
	assert.Empty(t, top)

	require.NoError(t, store.Append(ctx, "tetris", HighScore{Score: 40, At: time.Now()}))
	top, err = store.Top(ctx, "tetris", 0)
	require.NoError(t, err)
	assert.Len(t, top, 1)
}

func TestJSONFileBadEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "high_scores.json")
	require.NoError(t, os.WriteFile(path, []byte(`[[40, "yesterday"]]`), 0o644))

	_, err := OpenJSONFile(path, 0).Top(context.Background(), "tetris", 0)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestJSONFilePerGamePaths(t *testing.T) {
	dir := t.TempDir()
	store := OpenJSONFile(filepath.Join(dir, "high_scores.json"), 0)
	ctx := context.Background()

	assert.Equal(t, filepath.Join(dir, "high_scores.tetris_classic.json"), store.PathFor("tetris_classic"))

	require.NoError(t, store.Append(ctx, "tetris_classic", HighScore{Score: 5, At: time.Now()}))
	top, err := store.Top(ctx, "tetris", 0)
	require.NoError(t, err)
	assert.Empty(t, top)

	require.NoError(t, store.Clear(ctx, "tetris_classic"))
	require.NoError(t, store.Clear(ctx, "tetris_classic"), "clearing twice is fine")
	_, err = os.Stat(store.PathFor("tetris_classic"))
	assert.True(t, os.IsNotExist(err))
}
