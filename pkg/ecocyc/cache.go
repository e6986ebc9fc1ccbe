package ecocyc

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Cache stores raw getxml response bodies in a SQLite file so repeated
// runs over the same spreadsheet skip the network.
type Cache struct {
	db *sql.DB
}

// OpenCache opens (or creates) the cache database at path.
func OpenCache(path string) (*Cache, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	if _, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS responses (
		object     TEXT PRIMARY KEY,
		body       TEXT NOT NULL,
		fetched_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize cache: %w", err)
	}
	return &Cache{db: db}, nil
}

// Get returns the cached body for object and whether it was present.
func (c *Cache) Get(object string) (string, bool, error) {
	var body string
	err := c.db.QueryRow(`SELECT body FROM responses WHERE object = ?`, object).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return body, true, nil
}

// Put stores the body for object, replacing any previous response.
func (c *Cache) Put(object, body string) error {
	_, err := c.db.Exec(`INSERT OR REPLACE INTO responses (object, body) VALUES (?, ?)`, object, body)
	return err
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}
