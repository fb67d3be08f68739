// Package storage keeps the session leaderboard in an in-memory SQLite
// database. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Nothing is written to disk; results vanish when the
// process exits.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the in-memory leaderboard database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Result is one finished game.
type Result struct {
	ID        string // UUID assigned on save
	Session   string // Player-facing session name
	Score     int
	Level     int
	Lines     int
	CreatedAt time.Time
}

// Stats aggregates every result of the process.
type Stats struct {
	Games      int
	Best       int
	AvgScore   float64
	TotalLines int
	LastPlayed time.Time
}

// Open creates an empty in-memory leaderboard and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id TEXT PRIMARY KEY,
			session TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			lines INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(score DESC, created_at);
		CREATE INDEX IF NOT EXISTS idx_results_session ON results(session);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection, discarding every result.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game and returns it with its ID and
// timestamp filled in.
func (s *Store) SaveResult(session string, score, level, lines int) (Result, error) {
	r := Result{
		ID:        uuid.NewString(),
		Session:   session,
		Score:     score,
		Level:     level,
		Lines:     lines,
		CreatedAt: s.now(),
	}

	_, err := s.db.Exec(
		`INSERT INTO results (id, session, score, level, lines, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Session, r.Score, r.Level, r.Lines, r.CreatedAt.UnixNano(),
	)
	if err != nil {
		return Result{}, fmt.Errorf("storage: cannot save result: %w", err)
	}

	return r, nil
}

// TopResults retrieves the best N results, highest score first. Ties go to
// the earlier game.
func (s *Store) TopResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session, score, level, lines, created_at
		 FROM results
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt int64
		if err := rows.Scan(&r.ID, &r.Session, &r.Score, &r.Level, &r.Lines, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = time.Unix(0, createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Best returns the highest recorded score, or 0 if nothing was recorded.
func (s *Store) Best() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM results").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Count returns how many games were recorded.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM results").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count results: %w", err)
	}
	return n, nil
}

// Stats retrieves aggregated statistics over every result.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	var last sql.NullInt64

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(lines), 0), MAX(created_at)
		 FROM results`,
	).Scan(&stats.Games, &stats.Best, &stats.AvgScore, &stats.TotalLines, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	if last.Valid {
		stats.LastPlayed = time.Unix(0, last.Int64)
	}

	return stats, nil
}
