package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/sprintbudget/internal/db"
	"github.com/alexanderramin/sprintbudget/internal/domain"
)

const settingsID = "default"

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	query := `SELECT project_start, project_end, sprint_start, sprint_weeks,
		total_budget, monthly_cap, sprint_cap_default, month_shown, updated_at
		FROM plan_settings WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, settingsID)

	var s domain.Settings
	var updatedAt string
	err := row.Scan(
		&s.ProjectStart,
		&s.ProjectEnd,
		&s.SprintStart,
		&s.SprintWeeks,
		&s.TotalBudget,
		&s.MonthlyCap,
		&s.SprintCapDefault,
		&s.MonthShown,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("plan settings: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan settings: %w", err)
	}
	s.UpdatedAt = parseTimestamp(updatedAt)
	return &s, nil
}

func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, s *domain.Settings) error {
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = nowUTC()
	}
	query := `INSERT OR REPLACE INTO plan_settings (id, project_start, project_end, sprint_start,
		sprint_weeks, total_budget, monthly_cap, sprint_cap_default, month_shown, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		settingsID,
		s.ProjectStart,
		s.ProjectEnd,
		s.SprintStart,
		s.SprintWeeks,
		s.TotalBudget,
		s.MonthlyCap,
		s.SprintCapDefault,
		s.MonthShown,
		formatTimestamp(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting plan settings: %w", err)
	}
	return nil
}
