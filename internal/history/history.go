// Package history persists committed picker selections in a local SQLite
// database so past choices can be listed and reused. The picker core itself
// stays persistence-free; recording happens at the CLI layer after a value
// is emitted.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const dbFile = ".bepick/history.db"

const schema = `
CREATE TABLE IF NOT EXISTS selections (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	canonical TEXT NOT NULL,
	display TEXT NOT NULL,
	with_time INTEGER NOT NULL DEFAULT 0,
	picked_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_selections_picked_at ON selections(picked_at DESC);
`

// Selection is one recorded pick.
type Selection struct {
	ID        int64     `json:"id"`
	Canonical string    `json:"canonical"`
	Display   string    `json:"display"`
	WithTime  bool      `json:"with_time"`
	PickedAt  time.Time `json:"picked_at"`
}

// Store wraps the history database connection.
type Store struct {
	conn    *sql.DB
	baseDir string
}

// Open opens (creating if needed) the history database under baseDir.
func Open(baseDir string) (*Store, error) {
	dbPath := filepath.Join(baseDir, dbFile)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}

	return &Store{conn: conn, baseDir: baseDir}, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Record stores one committed selection.
func (s *Store) Record(canonical, display string, withTime bool, pickedAt time.Time) error {
	_, err := s.conn.Exec(
		`INSERT INTO selections (canonical, display, with_time, picked_at) VALUES (?, ?, ?, ?)`,
		canonical, display, boolToInt(withTime), pickedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record selection: %w", err)
	}
	return nil
}

// List returns the most recent selections, newest first.
func (s *Store) List(limit int) ([]Selection, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.conn.Query(
		`SELECT id, canonical, display, with_time, picked_at
		 FROM selections ORDER BY picked_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list selections: %w", err)
	}
	defer rows.Close()

	var out []Selection
	for rows.Next() {
		var sel Selection
		var withTime int
		var pickedAt string
		if err := rows.Scan(&sel.ID, &sel.Canonical, &sel.Display, &withTime, &pickedAt); err != nil {
			return nil, fmt.Errorf("scan selection: %w", err)
		}
		sel.WithTime = withTime != 0
		if t, err := time.Parse(time.RFC3339, pickedAt); err == nil {
			sel.PickedAt = t
		}
		out = append(out, sel)
	}
	return out, rows.Err()
}

// Clear deletes all recorded selections.
func (s *Store) Clear() error {
	if _, err := s.conn.Exec(`DELETE FROM selections`); err != nil {
		return fmt.Errorf("clear selections: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
