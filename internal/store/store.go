package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akshathkulkarni/StudyTimeTracker/internal/session"

	_ "modernc.org/sqlite"
)

// Store persists study sessions in a local SQLite file, queryable by
// calendar date. It holds only the file path: every operation opens its
// own connection and closes it before returning, so there is no shared
// handle to coordinate.
type Store struct {
	path string
}

// New creates a store for the given database path. Call Init before the
// first read or write.
func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// Init creates the database directory and schema. It is idempotent and
// safe to run on every startup.
func (s *Store) Init() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	schema := `
	CREATE TABLE IF NOT EXISTS study_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		study_date TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		category TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_study_logs_date ON study_logs(study_date);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

// ReplaceDay deletes every entry stored for the date and inserts the
// given set in one transaction. An empty set still clears the day. The
// date is the unit of replacement: all inserted rows are keyed to it.
func (s *Store) ReplaceDay(date string, entries []session.Entry) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM study_logs WHERE study_date = ?", date); err != nil {
		return fmt.Errorf("clearing entries for %s: %w", date, err)
	}

	if len(entries) > 0 {
		stmt, err := tx.Prepare(`
			INSERT INTO study_logs (study_date, start_time, end_time, category, duration_minutes)
			VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("preparing insert: %w", err)
		}
		defer stmt.Close()

		for _, e := range entries {
			if _, err := stmt.Exec(date, e.Start, e.End, e.Category, e.DurationMinutes); err != nil {
				return fmt.Errorf("inserting entry %s %s: %w", date, e.Start, err)
			}
		}
	}

	return tx.Commit()
}

// FetchDay returns the stored entries for the date ordered by start time
// ascending; a day with no entries yields an empty slice.
func (s *Store) FetchDay(date string) ([]session.Entry, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT study_date, start_time, end_time, category, duration_minutes
		FROM study_logs
		WHERE study_date = ?
		ORDER BY start_time ASC`, date)
	if err != nil {
		return nil, fmt.Errorf("querying entries for %s: %w", date, err)
	}
	defer rows.Close()

	var entries []session.Entry
	for rows.Next() {
		var e session.Entry
		if err := rows.Scan(&e.Date, &e.Start, &e.End, &e.Category, &e.DurationMinutes); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading entries for %s: %w", date, err)
	}
	return entries, nil
}
