// Package storage provides SQLite-based persistence for finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for round history.
type Store struct {
	db *sql.DB
}

// Round is a finished round as recorded in the scoreboard.
type Round struct {
	ID            string
	Mode          string
	Score         int
	WordsFound    int
	BestWord      string
	LongestStreak int
	CreatedAt     time.Time
}

// RoundWord is one accepted word of a round.
type RoundWord struct {
	Word   string
	Points int
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id TEXT PRIMARY KEY,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			words_found INTEGER NOT NULL DEFAULT 0,
			best_word TEXT NOT NULL DEFAULT '',
			longest_streak INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(mode, score DESC);

		CREATE TABLE IF NOT EXISTS round_words (
			round_id TEXT NOT NULL REFERENCES rounds(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			word TEXT NOT NULL,
			points INTEGER NOT NULL,
			PRIMARY KEY (round_id, seq)
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

// SaveRound records a finished round and its words in one transaction.
// Returns the generated round ID.
func (s *Store) SaveRound(r Round, words []RoundWord) (string, error) {
	id := uuid.NewString()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	_, err = tx.Exec(
		`INSERT INTO rounds (id, mode, score, words_found, best_word, longest_streak)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, r.Mode, r.Score, r.WordsFound, r.BestWord, r.LongestStreak,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round: %w", err)
	}

	for i, w := range words {
		if _, err := tx.Exec(
			"INSERT INTO round_words (round_id, seq, word, points) VALUES (?, ?, ?, ?)",
			id, i, w.Word, w.Points,
		); err != nil {
			return "", fmt.Errorf("storage: cannot save word %q: %w", w.Word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit round: %w", err)
	}
	return id, nil
}

// TopScores retrieves the best N rounds for the given mode.
// Results are ordered by score descending, newest first on ties.
func (s *Store) TopScores(mode string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode, score, words_found, best_word, longest_streak, created_at
		 FROM rounds
		 WHERE mode = ?
		 ORDER BY score DESC, created_at DESC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Mode, &r.Score, &r.WordsFound, &r.BestWord, &r.LongestStreak, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// RoundWords returns the words of a round in the order they were found.
func (s *Store) RoundWords(roundID string) ([]RoundWord, error) {
	rows, err := s.db.Query(
		"SELECT word, points FROM round_words WHERE round_id = ? ORDER BY seq",
		roundID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query words: %w", err)
	}
	defer rows.Close()

	var words []RoundWord
	for rows.Next() {
		var w RoundWord
		if err := rows.Scan(&w.Word, &w.Points); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		words = append(words, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return words, nil
}

// HighScore returns the highest score for the given mode.
// Returns 0 if no rounds exist.
func (s *Store) HighScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM rounds WHERE mode = ?",
		mode,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all rounds for the given mode.
func (s *Store) ClearScores(mode string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.Exec(
		"DELETE FROM round_words WHERE round_id IN (SELECT id FROM rounds WHERE mode = ?)",
		mode,
	); err != nil {
		return fmt.Errorf("storage: cannot clear words: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM rounds WHERE mode = ?", mode); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return tx.Commit()
}

// Stats contains aggregated statistics for a mode.
type Stats struct {
	Mode          string
	Rounds        int
	HighScore     int
	AvgScore      float64
	TotalWords    int
	LongestStreak int
	LongestWord   string
	LastPlayed    time.Time
}

// Stats retrieves aggregated statistics for a mode.
func (s *Store) Stats(mode string) (*Stats, error) {
	stats := &Stats{Mode: mode}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(words_found), 0), COALESCE(MAX(longest_streak), 0)
		 FROM rounds WHERE mode = ?`,
		mode,
	).Scan(&stats.Rounds, &stats.HighScore, &stats.AvgScore, &stats.TotalWords, &stats.LongestStreak)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	err = s.db.QueryRow(
		`SELECT w.word FROM round_words w JOIN rounds r ON r.id = w.round_id
		 WHERE r.mode = ?
		 ORDER BY LENGTH(w.word) DESC, w.points DESC
		 LIMIT 1`,
		mode,
	).Scan(&stats.LongestWord)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get longest word: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM rounds WHERE mode = ? ORDER BY created_at DESC LIMIT 1`,
		mode,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles both driver-decoded time.Time and raw DATETIME strings.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
