package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
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
	`CREATE TABLE IF NOT EXISTS child_profiles (
		id              TEXT PRIMARY KEY,
		name            TEXT NOT NULL,
		date_of_birth   TEXT NOT NULL,
		interests       TEXT NOT NULL DEFAULT '[]',
		parent_priority TEXT NOT NULL,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS daily_tasks (
		id                   TEXT PRIMARY KEY,
		child_id             TEXT NOT NULL REFERENCES child_profiles(id) ON DELETE CASCADE,
		pillar               TEXT NOT NULL
		                     CHECK(pillar IN ('Cognitive','Physical','Language','Character','Creativity')),
		title                TEXT NOT NULL,
		description          TEXT NOT NULL,
		duration_minutes     INTEGER NOT NULL DEFAULT 20 CHECK(duration_minutes > 0),
		difficulty_level     TEXT NOT NULL DEFAULT 'medium'
		                     CHECK(difficulty_level IN ('easy','medium','hard')),
		completed            INTEGER NOT NULL DEFAULT 0,
		completion_timestamp TEXT,
		date_assigned        TEXT NOT NULL,
		created_at           TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_daily_tasks_child ON daily_tasks(child_id)`,
	`CREATE INDEX IF NOT EXISTS idx_daily_tasks_assigned ON daily_tasks(child_id, date_assigned)`,

	`CREATE TABLE IF NOT EXISTS daily_checkins (
		id           TEXT PRIMARY KEY,
		child_id     TEXT NOT NULL REFERENCES child_profiles(id) ON DELETE CASCADE,
		joy_score    INTEGER NOT NULL CHECK(joy_score BETWEEN 1 AND 5),
		parent_notes TEXT NOT NULL DEFAULT '',
		checkin_date TEXT NOT NULL,
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_daily_checkins_child ON daily_checkins(child_id, checkin_date)`,

	`CREATE TABLE IF NOT EXISTS milestones (
		id        TEXT PRIMARY KEY,
		child_id  TEXT NOT NULL REFERENCES child_profiles(id) ON DELETE CASCADE,
		age_phase TEXT NOT NULL,
		title     TEXT NOT NULL,
		achieved  INTEGER NOT NULL DEFAULT 0,
		UNIQUE(child_id, age_phase, title)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_milestones_child ON milestones(child_id)`,
}
