package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the catalog tables. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS day_slots (
		label       TEXT PRIMARY KEY,
		date        TEXT NOT NULL,
		order_index INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		id          TEXT PRIMARY KEY,
		starts_at   TEXT NOT NULL,
		ends_at     TEXT NOT NULL,
		type        TEXT NOT NULL CHECK(type IN ('graph','rush')),
		order_index INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_starts_at ON sessions(starts_at)`,
}
