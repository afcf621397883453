package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"installer_crm/internal/usecase/interfaces"
)

var _ interfaces.IKeyValueCache = (*SQLiteCache)(nil)

const slotsSchema = `
CREATE TABLE IF NOT EXISTS cache_slots (
    key TEXT PRIMARY KEY,
    value BLOB NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// SQLiteCache stores slots as rows of a single table.
type SQLiteCache struct {
	db *sql.DB
}

// OpenSQLite creates the parent directory and the slots table if needed.
func OpenSQLite(dbPath string) (*SQLiteCache, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	// One writer at a time keeps SQLite from returning SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(slotsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache schema: %w", err)
	}
	return &SQLiteCache{db: db}, nil
}

func (c *SQLiteCache) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := c.db.QueryRow("SELECT value FROM cache_slots WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache slot %q: %w", key, err)
	}
	return value, true, nil
}

func (c *SQLiteCache) Set(key string, value []byte) error {
	_, err := c.db.Exec(
		`INSERT INTO cache_slots (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to write cache slot %q: %w", key, err)
	}
	return nil
}

func (c *SQLiteCache) Delete(key string) error {
	if _, err := c.db.Exec("DELETE FROM cache_slots WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete cache slot %q: %w", key, err)
	}
	return nil
}

func (c *SQLiteCache) Close() error {
	return c.db.Close()
}
