package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// jsonTimeLayout is the minute-resolution local timestamp of the file format.
const jsonTimeLayout = "2006-01-02 15:04"

// PrimaryGameID is the game whose list lives at the configured path itself.
// Other games use a sibling file named <base>.<gameID><ext>.
const PrimaryGameID = "tetris"

// JSONFileStore keeps each game's list in a JSON file shaped
// [[score, "YYYY-MM-DD HH:MM"], ...], best first.
type JSONFileStore struct {
	path  string
	limit int
	mu    sync.Mutex
}

var _ Store = (*JSONFileStore)(nil)

// OpenJSONFile returns a store rooted at path. Files are created on first append.
func OpenJSONFile(path string, limit int) *JSONFileStore {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &JSONFileStore{path: path, limit: limit}
}

// PathFor returns the file that holds gameID's list.
func (s *JSONFileStore) PathFor(gameID string) string {
	if gameID == PrimaryGameID || gameID == "" {
		return s.path
	}
	ext := filepath.Ext(s.path)
	return strings.TrimSuffix(s.path, ext) + "." + gameID + ext
}

// jsonEntry encodes a HighScore as a two-element array.
type jsonEntry HighScore

func (e jsonEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{e.Score, e.At.Local().Format(jsonTimeLayout)})
}

func (e *jsonEntry) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("entry has %d elements, want 2", len(pair))
	}
	if err := json.Unmarshal(pair[0], &e.Score); err != nil {
		return fmt.Errorf("score: %w", err)
	}
	var stamp string
	if err := json.Unmarshal(pair[1], &stamp); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	at, err := time.ParseInLocation(jsonTimeLayout, stamp, time.Local)
	if err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	e.At = at
	return nil
}

// load reads a game's list. A missing file is an empty list; an unreadable
// one is an empty list plus ErrCorrupt.
func (s *JSONFileStore) load(gameID string) ([]HighScore, error) {
	path := s.PathFor(gameID)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []HighScore{}, nil
	}
	if err != nil {
		return []HighScore{}, fmt.Errorf("storage: cannot read %s: %w", path, err)
	}

	var entries []jsonEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return []HighScore{}, fmt.Errorf("%w: %s: %w", ErrCorrupt, path, err)
	}
	list := make([]HighScore, len(entries))
	for i, e := range entries {
		list[i] = HighScore(e)
	}
	return Rank(list, s.limit), nil
}

// save writes the list through a temp file and rename.
func (s *JSONFileStore) save(gameID string, list []HighScore) error {
	path := s.PathFor(gameID)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory: %w", err)
	}

	entries := make([]jsonEntry, len(list))
	for i, hs := range list {
		entries[i] = jsonEntry(hs)
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("storage: cannot encode scores: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("storage: cannot write scores: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: cannot write scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: cannot write scores: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: cannot replace %s: %w", path, err)
	}
	return nil
}

// Top returns up to limit entries, best first.
func (s *JSONFileStore) Top(_ context.Context, gameID string, limit int) ([]HighScore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(gameID)
	if err != nil {
		return list, err
	}
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

// Append inserts the score. A corrupt file is replaced by a fresh list.
func (s *JSONFileStore) Append(_ context.Context, gameID string, hs HighScore) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(gameID)
	if err != nil && !errors.Is(err, ErrCorrupt) {
		return err
	}
	return s.save(gameID, Insert(list, hs, s.limit))
}

// Clear removes the game's file.
func (s *JSONFileStore) Clear(_ context.Context, gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.PathFor(gameID)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Close is a no-op.
func (s *JSONFileStore) Close() error {
	return nil
}
