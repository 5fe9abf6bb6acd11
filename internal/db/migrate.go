package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. The statement list is append-only and
// re-run in full on every open; ALTER TABLE duplicates are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS learning_paths (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS units (
		id          TEXT PRIMARY KEY,
		path_id     TEXT NOT NULL REFERENCES learning_paths(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		order_index INTEGER NOT NULL DEFAULT 0,
		complete_by TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_units_path ON units(path_id)`,

	`CREATE TABLE IF NOT EXISTS sections (
		id           TEXT PRIMARY KEY,
		unit_id      TEXT NOT NULL REFERENCES units(id) ON DELETE CASCADE,
		name         TEXT NOT NULL,
		code         TEXT NOT NULL DEFAULT '',
		deadline     TEXT,
		order_index  INTEGER NOT NULL DEFAULT 0,
		unlocked     INTEGER NOT NULL DEFAULT 0,
		completed    INTEGER NOT NULL DEFAULT 0,
		completed_at TEXT,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sections_unit ON sections(unit_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sections_deadline ON sections(deadline) WHERE deadline IS NOT NULL`,

	`CREATE TABLE IF NOT EXISTS topics (
		id          TEXT PRIMARY KEY,
		section_id  TEXT NOT NULL REFERENCES sections(id) ON DELETE CASCADE,
		content     TEXT NOT NULL,
		order_index INTEGER NOT NULL DEFAULT 0,
		completed   INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_topics_section ON topics(section_id)`,

	`CREATE TABLE IF NOT EXISTS requirements (
		id          TEXT PRIMARY KEY,
		section_id  TEXT NOT NULL REFERENCES sections(id) ON DELETE CASCADE,
		parent_id   TEXT REFERENCES requirements(id) ON DELETE CASCADE,
		content     TEXT NOT NULL,
		order_index INTEGER NOT NULL DEFAULT 0,
		completed   INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_requirements_section ON requirements(section_id)`,
	`CREATE INDEX IF NOT EXISTS idx_requirements_parent ON requirements(parent_id)`,

	`CREATE TABLE IF NOT EXISTS resources (
		id          TEXT PRIMARY KEY,
		section_id  TEXT NOT NULL REFERENCES sections(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		url         TEXT,
		description TEXT,
		order_index INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_resources_section ON resources(section_id)`,

	`CREATE TABLE IF NOT EXISTS log_entries (
		id         TEXT PRIMARY KEY,
		path_id    TEXT NOT NULL,
		path_name  TEXT NOT NULL,
		entry_date TEXT NOT NULL,
		content    TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_log_entries_date ON log_entries(entry_date)`,
}
