package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies every schema statement. Statements are idempotent and run
// on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := backfillTaskPositions(db); err != nil {
		return fmt.Errorf("backfilling task positions: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plan_settings (
		id                 TEXT PRIMARY KEY DEFAULT 'default',
		project_start      TEXT NOT NULL DEFAULT '2026-03-01',
		project_end        TEXT NOT NULL DEFAULT '2026-05-31',
		sprint_start       TEXT NOT NULL DEFAULT '2026-03-01',
		sprint_weeks       INTEGER NOT NULL DEFAULT 3,
		total_budget       REAL NOT NULL DEFAULT 300,
		monthly_cap        REAL NOT NULL DEFAULT 90,
		sprint_cap_default REAL NOT NULL DEFAULT 80,
		month_shown        TEXT NOT NULL DEFAULT '2026-03-01',
		updated_at         TEXT NOT NULL DEFAULT ''
	)`,

	`INSERT OR IGNORE INTO plan_settings (id) VALUES ('default')`,

	`CREATE TABLE IF NOT EXISTS sprint_caps (
		nr  INTEGER PRIMARY KEY CHECK(nr >= 1),
		cap REAL NOT NULL CHECK(cap >= 0)
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		sprint_nr  INTEGER NOT NULL,
		hours      REAL NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	// Tasks keep the order they were entered in.
	`ALTER TABLE tasks ADD COLUMN position INTEGER NOT NULL DEFAULT -1`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_position ON tasks(position)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_sprint ON tasks(sprint_nr)`,
}

// backfillTaskPositions numbers tasks that predate the position column by
// creation time, after every positioned task.
func backfillTaskPositions(db *sql.DB) error {
	ctx := context.Background()

	var pending int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE position < 0`).Scan(&pending); err != nil {
		return fmt.Errorf("counting unpositioned tasks: %w", err)
	}
	if pending == 0 {
		return nil
	}

	var next int
	if err := db.QueryRowContext(ctx, `SELECT COALESCE(MAX(position), -1) + 1 FROM tasks`).Scan(&next); err != nil {
		return fmt.Errorf("reading max position: %w", err)
	}

	rows, err := db.QueryContext(ctx, `SELECT id FROM tasks WHERE position < 0 ORDER BY created_at, id`)
	if err != nil {
		return fmt.Errorf("listing unpositioned tasks: %w", err)
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("scanning task id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, id := range ids {
		if _, err := db.ExecContext(ctx, `UPDATE tasks SET position = ? WHERE id = ?`, next, id); err != nil {
			return fmt.Errorf("positioning task %s: %w", id, err)
		}
		next++
	}
	return nil
}
