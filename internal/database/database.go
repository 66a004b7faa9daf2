// Package database is the local device cache: applicant records, the
// active-user pointer, and the swipe log, backed by SQLite.
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

// Initialize creates and opens the SQLite database under ~/.gigster.
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	gigsterDir := filepath.Join(homeDir, ".gigster")
	if err := os.MkdirAll(gigsterDir, 0755); err != nil {
		return fmt.Errorf("failed to create gigster directory: %w", err)
	}

	return InitializeAt(filepath.Join(gigsterDir, "gigster.db"))
}

// InitializeAt opens the database at an explicit path and runs
// migrations. Used directly by tests.
func InitializeAt(dbPath string) error {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	DB = db

	if err := runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// runMigrations creates all necessary tables
func runMigrations() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		resume_url TEXT,
		last_login DATETIME NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS current_user (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		email TEXT NOT NULL,
		FOREIGN KEY (email) REFERENCES users(email) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS swipes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		job_id TEXT NOT NULL,
		decision TEXT NOT NULL CHECK (decision IN ('interested', 'rejected')),
		swiped_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
	CREATE INDEX IF NOT EXISTS idx_swipes_job_id ON swipes(job_id);
	`

	_, err := DB.Exec(schema)
	return err
}
