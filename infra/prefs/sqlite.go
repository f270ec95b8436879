// Package prefs persists the user's standing assignment between command
// invocations.
package prefs

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// Assignment is the two-shape stored preference: either a run number, or one
// or two show start times. Saving one shape erases the other.
type Assignment struct {
	Run            string `json:"run,omitempty"`
	ShowTime       string `json:"showTime,omitempty"`
	SecondShowTime string `json:"secondShowTime,omitempty"`
}

// ErrNotSet reports that no assignment has been stored yet.
var ErrNotSet = errors.New("no assignment set")

// Config locates the preference database.
type Config struct {
	Path string `json:"path"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Path == "" {
		c.Path = "operdate.db"
	}
}

// Store reads and replaces the stored assignment.
type Store interface {
	Save(a Assignment) error
	Load() (Assignment, error)
	Close() error
}

// SQLiteStore keeps the assignment as one JSON row in a SQLite table so a
// save atomically replaces whatever shape was stored before.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the database and ensures schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	schema := `CREATE TABLE IF NOT EXISTS preferences (
        key TEXT PRIMARY KEY,
        value TEXT
    );`
	if _, err := db.Exec(schema); err != nil {
		if cerr := db.Close(); cerr != nil {
			return nil, fmt.Errorf("close db: %v (schema err: %w)", cerr, err)
		}
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

const assignmentKey = "assignment"

// Save replaces the stored assignment.
func (s *SQLiteStore) Save(a Assignment) error {
	b, err := json.Marshal(a)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO preferences (key, value) VALUES (?, ?)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		assignmentKey, string(b))
	return err
}

// Load returns the stored assignment, or ErrNotSet.
func (s *SQLiteStore) Load() (Assignment, error) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, assignmentKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return Assignment{}, ErrNotSet
	}
	if err != nil {
		return Assignment{}, err
	}
	var a Assignment
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return Assignment{}, err
	}
	return a, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error { return s.db.Close() }
