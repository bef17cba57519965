package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"  // PostgreSQL driver
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

type dialect int

const (
	dialectSQLite dialect = iota
	dialectPostgres
)

// SQLStore keeps high scores in a SQL table. It serves both SQLite and
// PostgreSQL; queries are written with ? placeholders and rebound per dialect.
type SQLStore struct {
	db      *sql.DB
	dialect dialect
	limit   int
}

var _ Store = (*SQLStore)(nil)

// OpenSQLite creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenSQLite(dbPath string, limit int) (*SQLStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return openSQL("sqlite", dbPath, dialectSQLite, limit)
}

// OpenPostgres connects to PostgreSQL and runs migrations.
func OpenPostgres(dsn string, limit int) (*SQLStore, error) {
	return openSQL("postgres", dsn, dialectPostgres, limit)
}

func openSQL(driver, dsn string, d dialect, limit int) (*SQLStore, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	if d == dialectSQLite {
		// One writer at a time; SSH sessions share this store.
		db.SetMaxOpenConns(1)
	}

	if limit <= 0 {
		limit = DefaultLimit
	}
	store := &SQLStore{db: db, dialect: d, limit: limit}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the schema if it doesn't exist.
func (s *SQLStore) migrate() error {
	id := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if s.dialect == dialectPostgres {
		id = "BIGSERIAL PRIMARY KEY"
	}
	queries := []string{
		`CREATE TABLE IF NOT EXISTS high_scores (
			id ` + id + `,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			played_at BIGINT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_high_scores_top ON high_scores(game_id, score DESC)`,
	}
	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// rebind rewrites ? placeholders as $1, $2... for PostgreSQL.
func (s *SQLStore) rebind(query string) string {
	if s.dialect != dialectPostgres {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Close closes the database connection.
func (s *SQLStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Append records a score and drops entries that fall out of the top list.
func (s *SQLStore) Append(ctx context.Context, gameID string, hs HighScore) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx,
		s.rebind("INSERT INTO high_scores (game_id, score, played_at) VALUES (?, ?, ?)"),
		gameID, hs.Score, hs.At.Unix(),
	); err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		s.rebind(`DELETE FROM high_scores
		 WHERE game_id = ? AND id NOT IN (
			SELECT id FROM high_scores
			WHERE game_id = ?
			ORDER BY score DESC, id ASC
			LIMIT ?
		 )`),
		gameID, gameID, s.limit,
	); err != nil {
		return fmt.Errorf("storage: cannot truncate scores: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit score: %w", err)
	}
	return nil
}

// Top retrieves the best scores for the given game, ordered by score descending.
func (s *SQLStore) Top(ctx context.Context, gameID string, limit int) ([]HighScore, error) {
	if limit <= 0 || limit > s.limit {
		limit = s.limit
	}

	rows, err := s.db.QueryContext(ctx,
		s.rebind(`SELECT score, played_at
		 FROM high_scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`),
		gameID, limit,
	)
	if err != nil {
		return []HighScore{}, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	entries := []HighScore{}
	for rows.Next() {
		var (
			score    int
			playedAt int64
		)
		if err := rows.Scan(&score, &playedAt); err != nil {
			return []HighScore{}, fmt.Errorf("%w: cannot scan row: %w", ErrCorrupt, err)
		}
		entries = append(entries, HighScore{Score: score, At: time.Unix(playedAt, 0)})
	}

	if err := rows.Err(); err != nil {
		return []HighScore{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Clear deletes all scores for the given game.
func (s *SQLStore) Clear(ctx context.Context, gameID string) error {
	_, err := s.db.ExecContext(ctx, s.rebind("DELETE FROM high_scores WHERE game_id = ?"), gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}
