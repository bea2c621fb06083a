package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// KV is the persistence collaborator: a key-value store holding serialized
// dataset snapshots. Load reports whether the key was present.
type KV interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, value []byte) error
	Delete(key string) error
}

// SQLiteKV is a SQLite-backed KV implementation. A single snapshots table
// holds one blob per key, mirroring the single-localStorage-key layout the
// dashboard persists to.
type SQLiteKV struct {
	db *sql.DB
}

// OpenKV opens or creates the snapshot database at the given path.
func OpenKV(dbPath string) (*SQLiteKV, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteKV{db: db}, nil
}

// Close closes the snapshot database.
func (k *SQLiteKV) Close() error {
	return k.db.Close()
}

// Load reads the blob stored under key.
func (k *SQLiteKV) Load(key string) ([]byte, bool, error) {
	var value []byte
	err := k.db.QueryRow("SELECT value FROM snapshots WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Save writes the blob under key, replacing any previous value.
func (k *SQLiteKV) Save(key string, value []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := k.db.Exec(
		"INSERT OR REPLACE INTO snapshots (key, value, updated_at) VALUES (?, ?, ?)",
		key, value, now,
	)
	return err
}

// Delete removes the blob under key. Deleting an absent key is not an error.
func (k *SQLiteKV) Delete(key string) error {
	_, err := k.db.Exec("DELETE FROM snapshots WHERE key = ?", key)
	return err
}
