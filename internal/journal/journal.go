// Package journal implements an optional append-only audit log of
// mutation operations, backed by SQLite.
//
// The journal is a diagnostic trail, not persistence: it is never read
// back to restore tree state, and the server works identically with it
// disabled. All methods are nil-safe so callers can hold a nil *Journal
// when the subsystem is off.
package journal

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// Journal is the append-only operation log.
type Journal struct {
	db *sql.DB
}

// Entry is one recorded operation.
type Entry struct {
	ID        int64  `json:"id"`
	Op        string `json:"op"`
	NodeID    string `json:"node_id,omitempty"`
	Detail    string `json:"detail,omitempty"`
	CreatedAt string `json:"created_at"`
}

// Open opens (or creates) the journal database at path, applies the
// SQLite pragmas, and runs the schema migration.
func Open(path string) (*Journal, error) {
	db, err := openDB("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("journal: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("journal: pragma %q: %w", p, err)
		}
	}

	j := &Journal{db: db}
	if err := j.migrate(); err != nil {
		return nil, fmt.Errorf("journal: migration: %w", err)
	}
	return j, nil
}

func (j *Journal) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS operations (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			op         TEXT NOT NULL,
			node_id    TEXT,
			detail     TEXT,
			created_at TEXT NOT NULL DEFAULT (datetime('now'))
		);

		CREATE INDEX IF NOT EXISTS idx_ops_created ON operations(created_at DESC);
	`
	_, err := j.db.Exec(schema)
	return err
}

// Record appends one operation entry. Safe to call on a nil Journal.
func (j *Journal) Record(op, nodeID, detail string) error {
	if j == nil {
		return nil
	}
	_, err := j.db.Exec(
		`INSERT INTO operations (op, node_id, detail) VALUES (?, ?, ?)`,
		op, nodeID, detail,
	)
	if err != nil {
		return fmt.Errorf("journal: record %s: %w", op, err)
	}
	return nil
}

// Count returns the number of recorded entries. Zero on a nil Journal.
func (j *Journal) Count() (int, error) {
	if j == nil {
		return 0, nil
	}
	var n int
	if err := j.db.QueryRow(`SELECT COUNT(*) FROM operations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("journal: count: %w", err)
	}
	return n, nil
}

// Recent returns the latest entries, newest first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	if j == nil {
		return nil, nil
	}
	rows, err := j.db.Query(
		`SELECT id, op, COALESCE(node_id, ''), COALESCE(detail, ''), created_at
		 FROM operations ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("journal: recent: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Op, &e.NodeID, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("journal: scan: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the underlying database connection. Nil-safe.
func (j *Journal) Close() error {
	if j == nil {
		return nil
	}
	return j.db.Close()
}
