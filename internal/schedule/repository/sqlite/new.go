// Package sqlite implements the schedule history repository on an embedded
// SQLite database.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	pkgLog "smart-scheduler/pkg/log"
)

// Repository is a SQLite-backed schedule history store.
type Repository struct {
	l  pkgLog.Logger
	db *sql.DB
}

// New opens or creates the history database at path and prepares the schema.
func New(l pkgLog.Logger, path string) (*Repository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	r := &Repository{l: l, db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

func (r *Repository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS schedules (
		id                 INTEGER PRIMARY KEY AUTOINCREMENT,
		input_text         TEXT,
		schedule_data      TEXT,
		productivity_score REAL,
		total_hours        REAL,
		created_at         TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS activities (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		schedule_id   INTEGER NOT NULL REFERENCES schedules(id),
		activity_name TEXT,
		duration      REAL,
		priority      TEXT,
		completed     BOOLEAN DEFAULT FALSE
	);
	CREATE INDEX IF NOT EXISTS idx_activities_schedule ON activities(schedule_id);
	CREATE INDEX IF NOT EXISTS idx_activities_name ON activities(activity_name);
	`
	_, err := r.db.Exec(schema)
	return err
}

// Close releases the underlying database handle.
func (r *Repository) Close() error {
	return r.db.Close()
}
