package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/sprintbudget/internal/app"
	"github.com/alexanderramin/sprintbudget/internal/domain"
	"github.com/alexanderramin/sprintbudget/internal/repository"
	"github.com/google/uuid"
)

// minPrefixLen is the shortest ID prefix GetByID resolves.
const minPrefixLen = 4

type taskService struct {
	tasks    repository.TaskRepo
	observer UseCaseObserver
}

func NewTaskService(tasks repository.TaskRepo, observers ...UseCaseObserver) TaskService {
	return &taskService{
		tasks:    tasks,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *taskService) Create(ctx context.Context, in app.TaskInput) (task *domain.Task, err error) {
	startedAt := time.Now()
	fields := map[string]any{"sprint": in.SprintNr, "hours": in.Hours}
	defer func() {
		observe(ctx, s.observer, "task.create", startedAt, err, fields)
	}()

	t := &domain.Task{
		ID:       uuid.New().String(),
		Name:     strings.TrimSpace(in.Name),
		SprintNr: in.SprintNr,
		Hours:    in.Hours,
	}
	if err := t.Validate(); err != nil {
		return nil, &app.PlanError{Code: app.PlanErrInvalidTask, Message: err.Error()}
	}

	pos, err := s.tasks.NextPosition(ctx)
	if err != nil {
		return nil, err
	}
	t.Position = pos

	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	fields["task_id"] = t.ID
	return t, nil
}

// GetByID accepts a full ID or a unique prefix of at least four characters,
// which is what the list output shows.
func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err == nil || !errors.Is(err, repository.ErrNotFound) || len(id) < minPrefixLen {
		return t, err
	}

	all, listErr := s.tasks.List(ctx)
	if listErr != nil {
		return nil, listErr
	}
	var match *domain.Task
	for _, candidate := range all {
		if !strings.HasPrefix(candidate.ID, id) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("task id prefix %q is ambiguous", id)
		}
		match = candidate
	}
	if match == nil {
		return nil, err
	}
	return match, nil
}

func (s *taskService) List(ctx context.Context) ([]*domain.Task, error) {
	return s.tasks.List(ctx)
}

func (s *taskService) Update(ctx context.Context, id string, patch app.TaskPatch) (task *domain.Task, err error) {
	startedAt := time.Now()
	fields := map[string]any{"task_id": id}
	defer func() {
		observe(ctx, s.observer, "task.update", startedAt, err, fields)
	}()

	t, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return t, nil
	}

	if patch.Name != nil {
		t.Name = strings.TrimSpace(*patch.Name)
	}
	t.SprintNr = domain.IntFromPtrWithDefault(t.SprintNr, patch.SprintNr)
	t.Hours = domain.Float64FromPtrWithDefault(t.Hours, patch.Hours)
	if err := t.Validate(); err != nil {
		return nil, &app.PlanError{Code: app.PlanErrInvalidTask, Message: err.Error()}
	}

	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) Delete(ctx context.Context, id string) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"task_id": id}
	defer func() {
		observe(ctx, s.observer, "task.delete", startedAt, err, fields)
	}()

	t, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.tasks.Delete(ctx, t.ID)
}
