package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/sprintbudget/internal/db"
	"github.com/alexanderramin/sprintbudget/internal/domain"
)

// SQLiteSprintCapRepo implements SprintCapRepo using a SQLite database.
type SQLiteSprintCapRepo struct {
	db db.DBTX
}

func NewSQLiteSprintCapRepo(conn db.DBTX) *SQLiteSprintCapRepo {
	return &SQLiteSprintCapRepo{db: conn}
}

func (r *SQLiteSprintCapRepo) List(ctx context.Context) ([]domain.SprintCap, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT nr, cap FROM sprint_caps ORDER BY nr`)
	if err != nil {
		return nil, fmt.Errorf("listing sprint caps: %w", err)
	}
	defer rows.Close()

	var caps []domain.SprintCap
	for rows.Next() {
		var c domain.SprintCap
		if err := rows.Scan(&c.Nr, &c.Cap); err != nil {
			return nil, fmt.Errorf("scanning sprint cap: %w", err)
		}
		caps = append(caps, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sprint caps: %w", err)
	}
	return caps, nil
}

func (r *SQLiteSprintCapRepo) Upsert(ctx context.Context, c domain.SprintCap) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sprint_caps (nr, cap) VALUES (?, ?)
		ON CONFLICT(nr) DO UPDATE SET cap = excluded.cap`,
		c.Nr, c.Cap)
	if err != nil {
		return fmt.Errorf("upserting sprint cap %d: %w", c.Nr, err)
	}
	return nil
}

func (r *SQLiteSprintCapRepo) Delete(ctx context.Context, nr int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sprint_caps WHERE nr = ?`, nr)
	if err != nil {
		return fmt.Errorf("deleting sprint cap %d: %w", nr, err)
	}
	return requireOneRow(res, fmt.Sprintf("sprint cap %d", nr))
}

func (r *SQLiteSprintCapRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sprint_caps`); err != nil {
		return fmt.Errorf("clearing sprint caps: %w", err)
	}
	return nil
}
