package storage

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scores(list []HighScore) []int {
	out := make([]int, len(list))
	for i, hs := range list {
		out[i] = hs.Score
	}
	return out
}

func TestInsertRanksAndTruncates(t *testing.T) {
	var list []HighScore
	for _, s := range []int{10, 30, 20, 50, 40} {
		list = Insert(list, HighScore{Score: s}, 3)
	}
	assert.Equal(t, []int{50, 40, 30}, scores(list))
}

func TestInsertTiesGoAfter(t *testing.T) {
	old := HighScore{Score: 40, At: time.Unix(1, 0)}
	list := Insert(nil, old, 20)
	list = Insert(list, HighScore{Score: 40, At: time.Unix(2, 0)}, 20)
	assert.Equal(t, old, list[0])
}

func TestInsertDoesNotMutateInput(t *testing.T) {
	list := []HighScore{{Score: 10}, {Score: 5}}
	_ = Insert(list, HighScore{Score: 20}, 20)
	assert.Equal(t, []int{10, 5}, scores(list))
}

func TestOpenDispatch(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(filepath.Join(dir, "scores.json"), 0)
	require.NoError(t, err)
	assert.IsType(t, &JSONFileStore{}, s)
	require.NoError(t, s.Close())

	s, err = Open(filepath.Join(dir, "scores.db"), 0)
	require.NoError(t, err)
	assert.IsType(t, &SQLStore{}, s)
	require.NoError(t, s.Close())

	_, err = Open("mongodb://localhost", 0)
	assert.True(t, errors.Is(err, ErrUnsupportedDSN))

	_, err = Open("", 0)
	assert.True(t, errors.Is(err, ErrUnsupportedDSN))
}

func TestOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s, err := Open("~/.tetris/scores.json", 0)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".tetris", "scores.json"), s.(*JSONFileStore).PathFor("tetris"))
}

type failingStore struct{ JSONFileStore }

func (*failingStore) Append(context.Context, string, HighScore) error {
	return errors.New("disk full")
}

func TestRecorder(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	store := OpenJSONFile(filepath.Join(t.TempDir(), "s.json"), 0)
	rec := NewRecorder(store, logger)
	require.NoError(t, rec.RecordScore("tetris", 120, time.Now()))

	top, err := store.Top(context.Background(), "tetris", 0)
	require.NoError(t, err)
	assert.Equal(t, []int{120}, scores(top))
	assert.Contains(t, buf.String(), "score saved")

	buf.Reset()
	bad := NewRecorder(&failingStore{}, logger)
	assert.EqualError(t, bad.RecordScore("tetris", 1, time.Now()), "disk full")
	assert.Contains(t, buf.String(), "failed to save score")
}
