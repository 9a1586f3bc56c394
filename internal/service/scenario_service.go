package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/sprintbudget/internal/app"
	"github.com/alexanderramin/sprintbudget/internal/db"
	"github.com/alexanderramin/sprintbudget/internal/domain"
	"github.com/alexanderramin/sprintbudget/internal/importer"
	"github.com/alexanderramin/sprintbudget/internal/repository"
	"github.com/google/uuid"
)

type scenarioService struct {
	settings repository.SettingsRepo
	caps     repository.SprintCapRepo
	tasks    repository.TaskRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewScenarioService(
	settings repository.SettingsRepo,
	caps repository.SprintCapRepo,
	tasks repository.TaskRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ScenarioService {
	return &scenarioService{
		settings: settings,
		caps:     caps,
		tasks:    tasks,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *scenarioService) Load(ctx context.Context) (sc domain.Scenario, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		observe(ctx, s.observer, "scenario.load", startedAt, err, fields)
	}()

	sc, err = loadScenario(ctx, s.settings, s.caps, s.tasks)
	fields["task_count"] = len(sc.Tasks)
	return sc, err
}

func (s *scenarioService) Import(ctx context.Context, path string) (result *app.ImportResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"path": path}
	defer func() {
		observe(ctx, s.observer, "scenario.import", startedAt, err, fields)
	}()

	file, err := importer.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading scenario file: %w", err)
	}
	if errs := importer.Validate(file); len(errs) > 0 {
		return nil, &app.PlanError{Code: app.PlanErrInvalidScenario, Message: formatValidationErrors(errs).Error()}
	}

	sc, assigned := importer.Convert(file)
	if err := s.replace(ctx, sc); err != nil {
		return nil, err
	}

	fields["task_count"] = len(sc.Tasks)
	fields["sprint_cap_count"] = len(sc.SprintCaps)
	return &app.ImportResult{
		TaskCount:      len(sc.Tasks),
		SprintCapCount: len(sc.SprintCaps),
		AssignedIDs:    assigned,
	}, nil
}

func (s *scenarioService) Export(ctx context.Context, path string) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"path": path}
	defer func() {
		observe(ctx, s.observer, "scenario.export", startedAt, err, fields)
	}()

	sc, err := loadScenario(ctx, s.settings, s.caps, s.tasks)
	if err != nil {
		return err
	}
	if err := importer.Write(path, importer.FromScenario(sc)); err != nil {
		return fmt.Errorf("writing scenario file: %w", err)
	}
	fields["task_count"] = len(sc.Tasks)
	return nil
}

// Reset replaces the stored scenario with the demo scenario.
func (s *scenarioService) Reset(ctx context.Context) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "scenario.reset", startedAt, err, nil)
	}()

	sc := domain.DefaultScenario()
	for i := range sc.Tasks {
		sc.Tasks[i].ID = uuid.New().String()
	}
	return s.replace(ctx, sc)
}

// replace swaps settings, caps and tasks in one transaction.
func (s *scenarioService) replace(ctx context.Context, sc domain.Scenario) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		settingsRepo := repository.NewSQLiteSettingsRepo(tx)
		capRepo := repository.NewSQLiteSprintCapRepo(tx)
		taskRepo := repository.NewSQLiteTaskRepo(tx)

		settings := sc.Settings
		settings.UpdatedAt = time.Time{}
		if err := settingsRepo.Upsert(ctx, &settings); err != nil {
			return fmt.Errorf("storing settings: %w", err)
		}

		if err := capRepo.DeleteAll(ctx); err != nil {
			return err
		}
		for _, c := range sc.SprintCaps {
			if err := capRepo.Upsert(ctx, c); err != nil {
				return fmt.Errorf("storing cap for sprint %d: %w", c.Nr, err)
			}
		}

		if err := taskRepo.DeleteAll(ctx); err != nil {
			return err
		}
		for i := range sc.Tasks {
			t := sc.Tasks[i]
			if err := taskRepo.Create(ctx, &t); err != nil {
				return fmt.Errorf("creating task %q: %w", t.Name, err)
			}
		}
		return nil
	})
}

// loadScenario reads the stored scenario. A store without a settings row
// plans with the default settings.
func loadScenario(
	ctx context.Context,
	settingsRepo repository.SettingsRepo,
	capRepo repository.SprintCapRepo,
	taskRepo repository.TaskRepo,
) (domain.Scenario, error) {
	settings, err := settingsRepo.Get(ctx)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		def := domain.DefaultSettings()
		settings = &def
	case err != nil:
		return domain.Scenario{}, fmt.Errorf("loading settings: %w", err)
	}

	caps, err := capRepo.List(ctx)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("loading sprint caps: %w", err)
	}

	tasks, err := taskRepo.List(ctx)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("loading tasks: %w", err)
	}

	sc := domain.Scenario{
		Settings:   *settings,
		SprintCaps: caps,
		Tasks:      make([]domain.Task, 0, len(tasks)),
	}
	for _, t := range tasks {
		sc.Tasks = append(sc.Tasks, *t)
	}
	return sc, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("scenario validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
