// Package storage persists ranked high-score lists.
// Backends are selected by DSN: SQLite (pure-Go modernc driver), PostgreSQL,
// Redis sorted sets, or the original JSON file layout. Every backend keeps
// at most Limit entries per game, highest score first; equal scores keep
// insertion order.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// DefaultLimit is the number of entries kept per game.
const DefaultLimit = 20

var (
	// ErrCorrupt reports unreadable stored data. Callers get an empty list
	// alongside it and should log a warning rather than fail.
	ErrCorrupt = errors.New("storage: corrupt score data")
	// ErrUnsupportedDSN reports a DSN no backend understands.
	ErrUnsupportedDSN = errors.New("storage: unsupported dsn")
)

// HighScore is one ranked entry.
type HighScore struct {
	Score int
	At    time.Time
}

// Store is a ranked high-score list per game ID.
// Implementations are safe for concurrent use.
type Store interface {
	// Top returns up to limit entries, best first. A game without scores
	// yields an empty list and no error.
	Top(ctx context.Context, gameID string, limit int) ([]HighScore, error)
	// Append inserts an entry and truncates the list to the store limit.
	Append(ctx context.Context, gameID string, hs HighScore) error
	// Clear removes every entry for the game.
	Clear(ctx context.Context, gameID string) error
	Close() error
}

// Open selects a backend from the DSN:
//
//	redis://...                 Redis sorted sets
//	postgres://, postgresql://  PostgreSQL
//	*.json                      JSON file in the [[score, "YYYY-MM-DD HH:MM"]] layout
//	anything else               SQLite database path (~ expands to home)
//
// limit <= 0 means DefaultLimit.
func Open(dsn string, limit int) (Store, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	switch {
	case dsn == "":
		return nil, fmt.Errorf("%w: empty", ErrUnsupportedDSN)
	case strings.HasPrefix(dsn, "redis://"), strings.HasPrefix(dsn, "rediss://"):
		s, err := OpenRedis(dsn, limit)
		if err != nil {
			return nil, err
		}
		return s, nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		s, err := OpenPostgres(dsn, limit)
		if err != nil {
			return nil, err
		}
		return s, nil
	case strings.Contains(dsn, "://"):
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDSN, dsn)
	}

	path, err := expandHome(dsn)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return OpenJSONFile(path, limit), nil
	}
	s, err := OpenSQLite(path, limit)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Best returns the top score for a game, or 0 when none exist.
func Best(ctx context.Context, store Store, gameID string) (int, error) {
	top, err := store.Top(ctx, gameID, 1)
	if err != nil || len(top) == 0 {
		return 0, err
	}
	return top[0].Score, nil
}

// Insert adds hs to a ranked list and returns the list truncated to limit.
// Entries with equal scores keep their relative order; hs goes after them.
func Insert(list []HighScore, hs HighScore, limit int) []HighScore {
	out := append(slices.Clone(list), hs)
	return Rank(out, limit)
}

// Rank sorts by descending score, stable, and truncates to limit.
func Rank(list []HighScore, limit int) []HighScore {
	slices.SortStableFunc(list, func(a, b HighScore) int {
		return b.Score - a.Score
	})
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list
}
