package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and re-run on
// every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// In-progress selection, one row per persisted key.
	`CREATE TABLE IF NOT EXISTS selection_state (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS palette (
		label      TEXT PRIMARY KEY,
		hex        TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS checkins (
		id           TEXT PRIMARY KEY,
		core         TEXT NOT NULL,
		middle       TEXT NOT NULL,
		outer_label  TEXT NOT NULL,
		completed_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_checkins_completed ON checkins(completed_at)`,

	// Whether the closing message carried advice.
	`ALTER TABLE checkins ADD COLUMN advised INTEGER NOT NULL DEFAULT 0`,
}
