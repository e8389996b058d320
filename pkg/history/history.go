// Package history keeps a local record of compilation runs in a SQLite
// database, so operators can trace which program was generated when and
// with which settings.
package history

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"foamgen/pkg/errors"
)

const schema = `
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		mode TEXT,
		status TEXT,
		paths INTEGER,
		lines INTEGER,
		output_path TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
`

// Entry is one recorded compilation run.
type Entry struct {
	RunID      uuid.UUID
	Mode       string
	Status     string
	Paths      int
	Lines      int
	OutputPath string
	CreatedAt  time.Time
}

// Store is a run-history database handle.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed initializes) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.HistoryOpenError(path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.HistoryOpenError(path, err)
	}
	return &Store{db: db}, nil
}

// Record stores one run.
func (s *Store) Record(e Entry) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, mode, status, paths, lines, output_path) VALUES (?, ?, ?, ?, ?, ?)`,
		e.RunID.String(), e.Mode, e.Status, e.Paths, e.Lines, e.OutputPath,
	)
	if err != nil {
		return errors.HistoryStoreError("record run", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT run_id, mode, status, paths, lines, output_path, created_at
		 FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, errors.HistoryStoreError("query runs", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var id string
		if err := rows.Scan(&id, &e.Mode, &e.Status, &e.Paths, &e.Lines, &e.OutputPath, &e.CreatedAt); err != nil {
			return nil, errors.HistoryStoreError("scan run", err)
		}
		if parsed, err := uuid.Parse(id); err == nil {
			e.RunID = parsed
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.HistoryStoreError("iterate runs", err)
	}
	return entries, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
