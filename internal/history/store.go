package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Entry is one saved per-target benchmark summary.
type Entry struct {
	ID                   int64     `json:"id"`
	SavedAt              time.Time `json:"saved_at"`
	CSVPath              string    `json:"csv_path"`
	TargetID             string    `json:"target_id"`
	Runs                 int       `json:"runs"`
	MeanTimeReductionPct float64   `json:"mean_time_reduction_pct"`
	MeanSpeedupX         float64   `json:"mean_speedup_x"`
	MeanSpeedIncreasePct float64   `json:"mean_speed_increase_pct"`
}

// Store persists benchmark summaries across invocations.
type Store interface {
	Close() error
	SaveEntry(e Entry) error
	List(limit int) ([]Entry, error)
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the store at path and applies
// migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS summaries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		saved_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		csv_path TEXT NOT NULL,
		target_id TEXT NOT NULL,
		runs INTEGER NOT NULL,
		mean_time_reduction_pct REAL NOT NULL,
		mean_speedup_x REAL NOT NULL,
		mean_speed_increase_pct REAL NOT NULL
	);
	`
	_, err := s.db.Exec(query)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveEntry records one target summary. A zero SavedAt defaults to now.
func (s *SQLiteStore) SaveEntry(e Entry) error {
	savedAt := e.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(`
		INSERT INTO summaries
			(saved_at, csv_path, target_id, runs,
			 mean_time_reduction_pct, mean_speedup_x, mean_speed_increase_pct)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		savedAt, e.CSVPath, e.TargetID, e.Runs,
		e.MeanTimeReductionPct, e.MeanSpeedupX, e.MeanSpeedIncreasePct)
	if err != nil {
		return fmt.Errorf("save summary: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first.
func (s *SQLiteStore) List(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT id, saved_at, csv_path, target_id, runs,
		       mean_time_reduction_pct, mean_speedup_x, mean_speed_increase_pct
		FROM summaries
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.SavedAt, &e.CSVPath, &e.TargetID, &e.Runs,
			&e.MeanTimeReductionPct, &e.MeanSpeedupX, &e.MeanSpeedIncreasePct); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
