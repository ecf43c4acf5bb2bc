// Package store provides a SQLite-backed history store.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/periodtrack/internal/history"
	"github.com/theirongolddev/periodtrack/internal/logger"
	"github.com/theirongolddev/periodtrack/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// DB stores period start dates in a SQLite file. It satisfies history.Store.
type DB struct {
	db *sql.DB
}

var _ history.Store = (*DB)(nil)

// Open opens or creates the database at the given path.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database.
func (s *DB) Close() error {
	return s.db.Close()
}

// Load returns all stored dates, ascending.
func (s *DB) Load() ([]model.Date, error) {
	rows, err := s.db.Query("SELECT start_date FROM period_starts ORDER BY start_date")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", history.ErrStoreRead, err)
	}
	defer func() { _ = rows.Close() }()

	dates := []model.Date{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%w: %w", history.ErrStoreRead, err)
		}
		d, err := model.ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", history.ErrStoreRead, err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", history.ErrStoreRead, err)
	}

	history.Sort(dates)
	logger.With("store").Debugf("loaded %d dates from sqlite", len(dates))
	return dates, nil
}

// Persist replaces every stored date with dates in one transaction.
func (s *DB) Persist(dates []model.Date) error {
	if err := s.replaceAll(dates); err != nil {
		return fmt.Errorf("%w: %w", history.ErrStoreWrite, err)
	}
	logger.With("store").Debugf("persisted %d dates to sqlite", len(dates))
	return nil
}

func (s *DB) replaceAll(dates []model.Date) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM period_starts"); err != nil {
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO period_starts (start_date) VALUES (?)")
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for _, d := range dates {
		if _, err := stmt.Exec(d.String()); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Count returns the number of stored dates.
func (s *DB) Count() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM period_starts").Scan(&count)
	return count, err
}
