// Package sqlite provides SQLite-based storage for the consolidated post
// dataset.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	// Verify connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Set busy timeout to wait 5 seconds before failing on lock contention.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// Enable WAL mode for file-based databases for better write performance.
	// Not supported for in-memory databases.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	db.db = conn

	// Create schema
	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS dataset_posts (
			id TEXT PRIMARY KEY,
			dedupe_key TEXT NOT NULL UNIQUE,
			post_type TEXT NOT NULL,
			date TEXT NOT NULL,
			slug TEXT NOT NULL DEFAULT '',
			author_name TEXT NOT NULL,
			author_headline TEXT NOT NULL DEFAULT '',
			author_slug TEXT NOT NULL DEFAULT '',
			author_pic TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '',
			content_fingerprint TEXT NOT NULL DEFAULT '',
			reposter_comment TEXT NOT NULL DEFAULT '',
			hashtags TEXT NOT NULL DEFAULT '',
			likes INTEGER NOT NULL DEFAULT 0,
			comments INTEGER NOT NULL DEFAULT 0,
			reposts INTEGER NOT NULL DEFAULT 0,
			engagement_score INTEGER NOT NULL DEFAULT 0,
			media_type TEXT NOT NULL DEFAULT 'none',
			media_urls TEXT NOT NULL DEFAULT '',
			media_duration TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started_at TEXT NOT NULL,
			inserted INTEGER NOT NULL DEFAULT 0,
			skipped INTEGER NOT NULL DEFAULT 0
		);

		CREATE INDEX IF NOT EXISTS idx_dataset_posts_author_name ON dataset_posts(author_name);
		CREATE INDEX IF NOT EXISTS idx_dataset_posts_date ON dataset_posts(date);
	`

	_, err := db.db.Exec(schema)
	return err
}
