package app

import (
	"context"

	"github.com/alexanderramin/sprintbudget/internal/domain"
)

type PlanUseCase interface {
	Compute(ctx context.Context, req PlanRequest) (*PlanResponse, error)
}

type TaskUseCase interface {
	Create(ctx context.Context, in TaskInput) (*domain.Task, error)
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	Update(ctx context.Context, id string, patch TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}

type SettingsUseCase interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, patch domain.SettingsPatch) (*domain.Settings, error)
	ListSprintCaps(ctx context.Context) ([]domain.SprintCap, error)
	SetSprintCap(ctx context.Context, c domain.SprintCap) error
	AddNextSprintCap(ctx context.Context) (domain.SprintCap, error)
	RemoveSprintCap(ctx context.Context, nr int) error
}

type ScenarioUseCase interface {
	Load(ctx context.Context) (domain.Scenario, error)
	Import(ctx context.Context, path string) (*ImportResult, error)
	Export(ctx context.Context, path string) error
	Reset(ctx context.Context) error
}
