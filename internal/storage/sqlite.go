// Package storage provides SQLite-based persistence for shift results and
// per-player progress. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished session.
type ScoreEntry struct {
	ID        int64
	Player    string
	Score     int
	MaxLevel  int
	SessionID string
	CreatedAt time.Time
}

// Player is what the lobby needs to know about a set of initials.
type Player struct {
	Name      string
	HasPlayed bool // Tutorial finished at least once
	MaxLevel  int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			max_level INTEGER NOT NULL DEFAULT 1,
			session_id TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);
		CREATE INDEX IF NOT EXISTS idx_scores_player ON scores(player);

		CREATE TABLE IF NOT EXISTS players (
			name TEXT PRIMARY KEY,
			has_played INTEGER NOT NULL DEFAULT 0,
			max_level INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished session. Returns the ID of the inserted record.
func (s *Store) SaveScore(player string, score, maxLevel int, sessionID string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (player, score, max_level, session_id) VALUES (?, ?, ?, ?)",
		player, score, maxLevel, sessionID,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the best N sessions across all players, highest
// score first. Ties go to the earlier session.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, score, max_level, session_id, created_at
		 FROM scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanScores(rows)
}

// PlayerScores retrieves every session of one player, newest first.
func (s *Store) PlayerScores(player string) ([]ScoreEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, player, score, max_level, session_id, created_at
		 FROM scores
		 WHERE player = ?
		 ORDER BY id DESC`,
		player,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanScores(rows)
}

func scanScores(rows *sql.Rows) ([]ScoreEntry, error) {
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Player, &e.Score, &e.MaxLevel, &e.SessionID, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the best score of any player, or 0.
func (s *Store) HighScore() (int, error) {
	return s.maxScore("SELECT MAX(score) FROM scores")
}

// PersonalBest returns the best score of one player, or 0.
func (s *Store) PersonalBest(player string) (int, error) {
	return s.maxScore("SELECT MAX(score) FROM scores WHERE player = ?", player)
}

func (s *Store) maxScore(query string, args ...any) (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow(query, args...).Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Player returns the progress of one set of initials. Unknown players come
// back zero-valued.
func (s *Store) Player(name string) (Player, error) {
	p := Player{Name: name}
	var hasPlayed int
	err := s.db.QueryRow(
		"SELECT has_played, max_level FROM players WHERE name = ?",
		name,
	).Scan(&hasPlayed, &p.MaxLevel)

	if errors.Is(err, sql.ErrNoRows) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("storage: cannot query player: %w", err)
	}

	p.HasPlayed = hasPlayed != 0
	return p, nil
}

// MarkPlayed records that the player has finished the tutorial.
func (s *Store) MarkPlayed(name string) error {
	_, err := s.db.Exec(
		`INSERT INTO players (name, has_played) VALUES (?, 1)
		 ON CONFLICT(name) DO UPDATE SET has_played = 1, updated_at = CURRENT_TIMESTAMP`,
		name,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot mark player: %w", err)
	}
	return nil
}

// RecordLevel raises the player's max level reached. Lower levels are ignored.
func (s *Store) RecordLevel(name string, level int) error {
	_, err := s.db.Exec(
		`INSERT INTO players (name, max_level) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   max_level = MAX(max_level, excluded.max_level),
		   updated_at = CURRENT_TIMESTAMP`,
		name, level,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record level: %w", err)
	}
	return nil
}

// ClearScores deletes every score. Player progress is kept.
func (s *Store) ClearScores() error {
	if _, err := s.db.Exec("DELETE FROM scores"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}
