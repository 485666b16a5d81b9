// Package storage provides SQLite-based persistence for recorded replays.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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

// ErrReplayNotFound is returned when a replay ID does not exist.
var ErrReplayNotFound = errors.New("storage: replay not found")

// Store manages the SQLite database connection for replay persistence.
type Store struct {
	db *sql.DB
}

// Replay is one recorded session.
// Inputs holds the encoded input log; ConfigYAML the effective game config.
type Replay struct {
	ID           int64
	Player       string
	Seed         int64
	Difficulty   string
	ConfigYAML   string
	Inputs       []byte
	Ticks        int
	Runs         int
	Crashes      int
	BestDistance float64
	CreatedAt    time.Time
}

// Stats contains aggregated statistics over all stored replays.
// Distances stay per replay; there is no cross-session best.
type Stats struct {
	Count      int
	TotalTicks int64
	LastPlayed time.Time
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
		CREATE TABLE IF NOT EXISTS replays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL,
			difficulty TEXT NOT NULL DEFAULT '',
			config_yaml TEXT NOT NULL,
			inputs BLOB NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			runs INTEGER NOT NULL DEFAULT 0,
			crashes INTEGER NOT NULL DEFAULT 0,
			best_distance REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_created ON replays(created_at DESC);
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

// SaveReplay stores a replay and returns its ID.
func (s *Store) SaveReplay(r Replay) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO replays
		 (player, seed, difficulty, config_yaml, inputs, ticks, runs, crashes, best_distance)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Player,
		r.Seed,
		r.Difficulty,
		r.ConfigYAML,
		r.Inputs,
		r.Ticks,
		r.Runs,
		r.Crashes,
		r.BestDistance,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// ListReplays returns the most recent replays, newest first.
// Config and inputs are left empty; use LoadReplay for the full record.
func (s *Store) ListReplays(limit int) ([]Replay, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, player, seed, difficulty, ticks, runs, crashes, best_distance, created_at
		 FROM replays
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var replays []Replay
	for rows.Next() {
		var r Replay
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Player,
			&r.Seed,
			&r.Difficulty,
			&r.Ticks,
			&r.Runs,
			&r.Crashes,
			&r.BestDistance,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		replays = append(replays, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return replays, nil
}

// LoadReplay retrieves a full replay by ID.
// Returns ErrReplayNotFound if no such replay exists.
func (s *Store) LoadReplay(id int64) (Replay, error) {
	var r Replay
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, player, seed, difficulty, config_yaml, inputs,
		        ticks, runs, crashes, best_distance, created_at
		 FROM replays
		 WHERE id = ?`,
		id,
	).Scan(
		&r.ID,
		&r.Player,
		&r.Seed,
		&r.Difficulty,
		&r.ConfigYAML,
		&r.Inputs,
		&r.Ticks,
		&r.Runs,
		&r.Crashes,
		&r.BestDistance,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Replay{}, fmt.Errorf("%w: id %d", ErrReplayNotFound, id)
	}
	if err != nil {
		return Replay{}, fmt.Errorf("storage: cannot query replay: %w", err)
	}

	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// DeleteReplay removes a replay.
// Returns ErrReplayNotFound if no such replay exists.
func (s *Store) DeleteReplay(id int64) error {
	res, err := s.db.Exec("DELETE FROM replays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", ErrReplayNotFound, id)
	}
	return nil
}

// Stats aggregates all stored replays.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(ticks), 0), MAX(created_at)
		 FROM replays`,
	).Scan(&st.Count, &st.TotalTicks, &lastPlayed)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get replay stats: %w", err)
	}

	st.LastPlayed = parseTime(lastPlayed)
	return st, nil
}

// parseTime handles the driver returning either time.Time or a string.
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
