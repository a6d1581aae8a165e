// Package storage keeps the session scoreboard of finished rounds.
// Uses the pure-Go modernc.org/sqlite driver with an in-memory database:
// results live as long as the process and are never written to disk.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the in-memory SQLite database of round results.
type Store struct {
	db *sql.DB
}

// RoundResult records one finished round.
type RoundResult struct {
	ID           string
	SessionID    string
	Level        string
	Answer       string
	Won          bool
	LivesLeft    int
	WrongGuesses int
	Timeouts     int
	Duration     time.Duration
	CreatedAt    time.Time
}

// Summary aggregates the rounds of one session (or of every session).
type Summary struct {
	Played     int
	Won        int
	Lost       int
	Streak     int // consecutive wins ending with the latest round
	BestStreak int
}

// NewSessionID returns a fresh identifier for a player session.
func NewSessionID() string {
	return uuid.New().String()
}

// Open creates an empty in-memory scoreboard and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database, so pin the pool
	// to one connection.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
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
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			session_id TEXT NOT NULL,
			level TEXT NOT NULL,
			answer TEXT NOT NULL,
			won INTEGER NOT NULL,
			lives_left INTEGER NOT NULL,
			wrong_guesses INTEGER NOT NULL DEFAULT 0,
			timeouts INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_session ON rounds(session_id, seq);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection, discarding all results.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round. An empty ID is filled with a new UUID.
// Returns the ID of the stored round.
func (s *Store) SaveRound(r RoundResult) (string, error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.SessionID == "" {
		return "", fmt.Errorf("storage: cannot save round: empty session id")
	}

	_, err := s.db.Exec(
		`INSERT INTO rounds
		 (id, session_id, level, answer, won, lives_left, wrong_guesses, timeouts, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.SessionID,
		r.Level,
		r.Answer,
		r.Won,
		r.LivesLeft,
		r.WrongGuesses,
		r.Timeouts,
		r.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round: %w", err)
	}
	return r.ID, nil
}

// RecentRounds returns the latest rounds of a session, newest first.
func (s *Store) RecentRounds(sessionID string, limit int) ([]RoundResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, level, answer, won, lives_left, wrong_guesses, timeouts, duration_ms, created_at
		 FROM rounds
		 WHERE session_id = ?
		 ORDER BY seq DESC
		 LIMIT ?`,
		sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var results []RoundResult
	for rows.Next() {
		var r RoundResult
		var durationMS int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.SessionID,
			&r.Level,
			&r.Answer,
			&r.Won,
			&r.LivesLeft,
			&r.WrongGuesses,
			&r.Timeouts,
			&durationMS,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// SessionSummary aggregates the rounds of one session.
func (s *Store) SessionSummary(sessionID string) (Summary, error) {
	return s.summary(
		`SELECT won FROM rounds WHERE session_id = ? ORDER BY seq`,
		sessionID,
	)
}

// TotalSummary aggregates every round played since the store was opened.
// Streaks are computed over the combined history.
func (s *Store) TotalSummary() (Summary, error) {
	return s.summary(`SELECT won FROM rounds ORDER BY seq`)
}

func (s *Store) summary(query string, args ...any) (Summary, error) {
	var sum Summary

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return sum, fmt.Errorf("storage: cannot query summary: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var won bool
		if err := rows.Scan(&won); err != nil {
			return sum, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sum.Played++
		if won {
			sum.Won++
			sum.Streak++
			if sum.Streak > sum.BestStreak {
				sum.BestStreak = sum.Streak
			}
		} else {
			sum.Lost++
			sum.Streak = 0
		}
	}

	if err := rows.Err(); err != nil {
		return sum, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return sum, nil
}

// parseTime handles both time.Time and string datetime values from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
