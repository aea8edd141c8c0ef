package datastore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"webwatch/internal/models"
)

// HistoryStore records one row per monitoring run in a sqlite database.
// History is a diagnostic aid; callers treat its failures as non-fatal.
type HistoryStore struct {
	db     *sql.DB
	logger zerolog.Logger
}

// RunRecord is one persisted run-history row.
type RunRecord struct {
	ID         int64
	StartedAt  time.Time
	DurationMs int64
	Targets    int
	Changes    int
	Errors     int
}

// NewHistoryStore opens (creating if needed) the run-history database and
// ensures its schema.
func NewHistoryStore(path string, logger zerolog.Logger) (*HistoryStore, error) {
	componentLogger := logger.With().Str("component", "HistoryStore").Logger()

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sql.Open failed for %s: %w", path, err)
	}

	hs := &HistoryStore{db: db, logger: componentLogger}
	if err := hs.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return hs, nil
}

// Close closes the underlying database connection.
func (hs *HistoryStore) Close() error {
	if hs.db != nil {
		return hs.db.Close()
	}
	return nil
}

func (hs *HistoryStore) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS run_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at DATETIME NOT NULL,
		duration_ms INTEGER NOT NULL,
		targets INTEGER NOT NULL,
		changes INTEGER NOT NULL,
		errors INTEGER NOT NULL
	);
	`
	_, err := hs.db.Exec(query)
	return err
}

// RecordRun inserts a row for the completed run.
func (hs *HistoryStore) RecordRun(summary models.RunSummary) error {
	query := `INSERT INTO run_history (started_at, duration_ms, targets, changes, errors) VALUES (?, ?, ?, ?, ?)`
	_, err := hs.db.Exec(query,
		summary.StartedAt.UTC(),
		summary.Duration.Milliseconds(),
		summary.TotalTargets,
		len(summary.Changes),
		len(summary.Errors),
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	hs.logger.Debug().
		Int("targets", summary.TotalTargets).
		Int("changes", len(summary.Changes)).
		Int("errors", len(summary.Errors)).
		Msg("Run recorded in history")
	return nil
}

// RecentRuns returns up to limit runs, newest first.
func (hs *HistoryStore) RecentRuns(limit int) ([]RunRecord, error) {
	query := `SELECT id, started_at, duration_ms, targets, changes, errors FROM run_history ORDER BY started_at DESC, id DESC LIMIT ?`
	rows, err := hs.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query run history: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.DurationMs, &r.Targets, &r.Changes, &r.Errors); err != nil {
			return nil, fmt.Errorf("failed to scan run history row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
