package service

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alexanderramin/sprintbudget/internal/app"
	"github.com/alexanderramin/sprintbudget/internal/db"
	"github.com/alexanderramin/sprintbudget/internal/repository"
	"github.com/alexanderramin/sprintbudget/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testRepos struct {
	db       *sql.DB
	settings repository.SettingsRepo
	caps     repository.SprintCapRepo
	tasks    repository.TaskRepo
	uow      db.UnitOfWork
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testRepos{
		db:       database,
		settings: repository.NewSQLiteSettingsRepo(database),
		caps:     repository.NewSQLiteSprintCapRepo(database),
		tasks:    repository.NewSQLiteTaskRepo(database),
		uow:      testutil.NewTestUoW(database),
	}
}

func (r testRepos) scenarioService(observers ...UseCaseObserver) ScenarioService {
	return NewScenarioService(r.settings, r.caps, r.tasks, r.uow, observers...)
}

func (r testRepos) planService(observers ...UseCaseObserver) PlanService {
	return NewPlanService(r.settings, r.caps, r.tasks, observers...)
}

// seedDefault stores the demo scenario.
func seedDefault(t *testing.T, r testRepos) {
	t.Helper()
	require.NoError(t, r.scenarioService().Reset(context.Background()))
}

func writeScenario(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func requirePlanError(t *testing.T, err error, code app.PlanErrorCode) *app.PlanError {
	t.Helper()
	require.Error(t, err)
	var pe *app.PlanError
	require.True(t, errors.As(err, &pe), "expected *app.PlanError, got %T: %v", err, err)
	require.Equal(t, code, pe.Code)
	return pe
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) last(t *testing.T) UseCaseEvent {
	t.Helper()
	o.mu.Lock()
	defer o.mu.Unlock()
	require.NotEmpty(t, o.events)
	return o.events[len(o.events)-1]
}

const scenarioYAML = `project:
  start: "2026-03-01"
  end: "2026-05-31"
sprints:
  start: "2026-03-01"
  weeks: 3
budget:
  total: 300
  monthly_cap: 90
  sprint_cap_default: 80
  sprint_caps:
    - nr: 2
      cap: 40
tasks:
  - name: Task A
    sprint: 1
    hours: 80
  - id: fixed-id
    name: Task B
    sprint: 2
    hours: 80
`
