// Package sqlite implements the slot store on an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/DealeGear/synapse/internal/errs"
)

// Store persists JSON-encoded collection snapshots in a single slots table.
type Store struct {
	db *sql.DB
}

// Open creates (if needed) and opens the database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if path == ":memory:" {
		// each pooled connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}
	s := &Store{db: db}
	if err := s.initialize(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// OpenMemory opens a private in-memory database, used by tests.
func OpenMemory() (*Store, error) {
	return Open(":memory:")
}

func (s *Store) initialize() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS slots (
		name       TEXT PRIMARY KEY,
		data       BLOB NOT NULL,
		updated_at DATETIME NOT NULL
	);`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create slots table: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Save serializes v and overwrites the slot in one upsert.
func (s *Store) Save(ctx context.Context, slot string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode slot %q: %w", slot, err)
	}
	const query = `INSERT INTO slots (name, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`
	if _, err := s.db.ExecContext(ctx, query, slot, data, time.Now().UTC()); err != nil {
		return fmt.Errorf("%w: save slot %q: %v", errs.ErrPersistenceUnavailable, slot, err)
	}
	return nil
}

// Load deserializes the slot into v. Missing or malformed data reports
// absent instead of failing, so a corrupt slot loads as an empty collection.
func (s *Store) Load(ctx context.Context, slot string, v any) (bool, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM slots WHERE name = ?`, slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: load slot %q: %v", errs.ErrPersistenceUnavailable, slot, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		// fail closed on corrupt snapshots
		return false, nil
	}
	return true, nil
}

// Delete removes the slot if present.
func (s *Store) Delete(ctx context.Context, slot string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM slots WHERE name = ?`, slot); err != nil {
		return fmt.Errorf("%w: delete slot %q: %v", errs.ErrPersistenceUnavailable, slot, err)
	}
	return nil
}
