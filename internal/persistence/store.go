package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

const (
	dirPermissions  = 0750
	msPerSecond     = 1000
	connMaxIdleTime = 30 * time.Minute
	openTimeout     = 5 * time.Second
)

// Config contains store configuration, the persistence equivalent of
// database.Config.
type Config struct {
	// Path is the filesystem path to the SQLite database file. The
	// directory is created if it doesn't exist.
	Path string

	// WALMode enables Write-Ahead Logging for concurrent access.
	WALMode bool

	// BusyTimeout is the maximum time to wait for a database lock
	// (seconds).
	BusyTimeout int
}

// Store persists the last-written value of any object keyed by id,
// following database.DB's open/pool-configuration/health-check shape
// adapted to a single narrow table instead of a general migration set.
type Store struct {
	db *sql.DB
}

// Open creates (if necessary) and opens the value store, mirroring
// database.Open: directory creation, WAL/busy-timeout pragmas via the
// connection string, a single-writer connection pool, and a ping to
// verify connectivity.
func Open(cfg Config) (*Store, error) {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return nil, fmt.Errorf("creating persistence directory: %w", err)
	}

	connStr := fmt.Sprintf("file:%s?_busy_timeout=%d&_foreign_keys=on",
		cfg.Path, cfg.BusyTimeout*msPerSecond)
	if cfg.WALMode {
		connStr += "&_journal_mode=WAL&_synchronous=NORMAL"
	}

	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening persistence store: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(connMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("verifying persistence store connection: %w", err)
	}

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS object_values (
			id    TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating object_values table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the last-written value for id, and ok=false if nothing has
// been written yet.
func (s *Store) Get(ctx context.Context, id string) (value string, ok bool, err error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM object_values WHERE id = ?`, id)
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading persisted value for %q: %w", id, err)
	}
	return value, true, nil
}

// Set writes (creating or replacing) the value stored for id.
func (s *Store) Set(ctx context.Context, id, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO object_values (id, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, id, value)
	if err != nil {
		return fmt.Errorf("writing persisted value for %q: %w", id, err)
	}
	return nil
}

// HealthCheck verifies the store is accessible.
func (s *Store) HealthCheck(ctx context.Context) error {
	var result int
	if err := s.db.QueryRowContext(ctx, "SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("persistence health check failed: %w", err)
	}
	return nil
}
