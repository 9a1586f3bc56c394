package repository

import (
	"context"

	"github.com/alexanderramin/sprintbudget/internal/domain"
)

// SettingsRepo stores the singleton parameter row.
type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Upsert(ctx context.Context, s *domain.Settings) error
}

type SprintCapRepo interface {
	List(ctx context.Context) ([]domain.SprintCap, error)
	Upsert(ctx context.Context, c domain.SprintCap) error
	Delete(ctx context.Context, nr int) error
	DeleteAll(ctx context.Context) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	// List returns tasks in entry order.
	List(ctx context.Context) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	NextPosition(ctx context.Context) (int, error)
}
