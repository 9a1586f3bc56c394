package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/sprintbudget/internal/cli/formatter"
	"github.com/alexanderramin/sprintbudget/internal/config"
	"github.com/alexanderramin/sprintbudget/internal/repository"
	"github.com/alexanderramin/sprintbudget/internal/service"
	"github.com/alexanderramin/sprintbudget/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	capRepo := repository.NewSQLiteSprintCapRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	uow := testutil.NewTestUoW(database)

	return &App{
		Plan:      service.NewPlanService(settingsRepo, capRepo, taskRepo),
		Tasks:     service.NewTaskService(taskRepo),
		Settings:  service.NewSettingsService(settingsRepo, capRepo),
		Scenarios: service.NewScenarioService(settingsRepo, capRepo, taskRepo, uow),
		Config:    config.Default(),
	}
}

func seedDemo(t *testing.T, app *App) {
	t.Helper()
	require.NoError(t, app.Scenarios.Reset(context.Background()))
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	return executeCmdContext(t, context.Background(), app, args...)
}

func executeCmdContext(t *testing.T, ctx context.Context, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return stripANSI(buf.String()), err
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
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

// --- root and plan views ---

func TestRootCmd_FreshStore(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "PLAN")
	assert.Contains(t, output, "No ceiling is breached")
	assert.Contains(t, output, "March 2026")
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "extra")
	assert.Error(t, err)
}

func TestSummaryCmd_DemoBreach(t *testing.T) {
	app := testApp(t)
	seedDemo(t, app)

	output, err := executeCmd(t, app, "summary")
	require.NoError(t, err)
	assert.Contains(t, output, "First breach: MONTH CAP on Tue 24 Mar")
	assert.Contains(t, output, "2026-03-24")
	assert.Contains(t, output, "240.0h")
}

func TestLedgerCmd_Range(t *testing.T) {
	app := testApp(t)
	seedDemo(t, app)

	output, err := executeCmd(t, app, "ledger", "--from", "2026-03-02", "--to", "2026-03-03")
	require.NoError(t, err)
	assert.Contains(t, output, "DATE")
	assert.Contains(t, output, "2026-03-02")
	assert.Contains(t, output, "2026-03-03")
	assert.NotContains(t, output, "2026-03-04")
	assert.NotContains(t, output, "2026-03-01")
}

func TestLedgerCmd_BreachesOnly(t *testing.T) {
	app := testApp(t)
	seedDemo(t, app)

	output, err := executeCmd(t, app, "ledger", "--breaches")
	require.NoError(t, err)
	assert.Contains(t, output, "2026-03-24")
	assert.NotContains(t, output, "2026-03-02")
}

func TestLedgerCmd_EmptyRange(t *testing.T) {
	app := testApp(t)
	seedDemo(t, app)

	output, err := executeCmd(t, app, "ledger", "--from", "2027-01-01")
	require.NoError(t, err)
	assert.Contains(t, output, "No days in range.")
}

func TestLedgerCmd_InvalidFrom(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "ledger", "--from", "03/02/2026")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--from")
}

func TestCalendarCmd_Month(t *testing.T) {
	app := testApp(t)
	seedDemo(t, app)

	output, err := executeCmd(t, app, "calendar", "--month", "2026-04")
	require.NoError(t, err)
	assert.Contains(t, output, "April 2026")
	assert.Contains(t, output, "Mon")
}

func TestCalendarCmd_UnknownInfo(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "calendar", "--info", "weather")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown --info value "weather"`)
}

func TestCalendarCmd_InvalidMonth(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "calendar", "--month", "April")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid month")
}

func TestTimelineBarsSprintsCmds(t *testing.T) {
	app := testApp(t)
	seedDemo(t, app)

	output, err := executeCmd(t, app, "timeline")
	require.NoError(t, err)
	assert.NotEmpty(t, output)

	output, err = executeCmd(t, app, "bars")
	require.NoError(t, err)
	assert.Contains(t, output, "MONTHS")
	assert.Contains(t, output, "Sprint 1")

	output, err = executeCmd(t, app, "sprints")
	require.NoError(t, err)
	assert.Contains(t, output, "AVG/DAY")
	assert.Contains(t, output, "5.3h")
}

func TestDayCmd(t *testing.T) {
	app := testApp(t)
	seedDemo(t, app)

	output, err := executeCmd(t, app, "day", "2026-03-10")
	require.NoError(t, err)
	assert.Contains(t, output, "DAY 2026-03-10")
	assert.Contains(t, output, "Remaining month budget")
}

func TestDayCmd_OutsideWindow(t *testing.T) {
	app := testApp(t)
	seedDemo(t, app)

	output, err := executeCmd(t, app, "day", "2027-01-01")
	require.NoError(t, err)
	assert.Contains(t, output, "Outside the project window.")
}

func TestDayCmd_InvalidDate(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "day", "tomorrow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_REQUEST")
}

// --- task ---

func TestTaskCmd_AddListUpdateRemove(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	output, err := executeCmd(t, app, "task", "add", "--name", "Design", "--sprint", "2", "--hours", "16")
	require.NoError(t, err)
	assert.Contains(t, output, "Added task Design")
	assert.Contains(t, output, "to sprint 2 (16.0h)")

	output, err = executeCmd(t, app, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "Design")
	assert.Contains(t, output, "1 tasks, 16.0h in total")

	tasks, err := app.Tasks.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	prefix := tasks[0].ID[:8]

	output, err = executeCmd(t, app, "task", "update", prefix, "--hours", "24")
	require.NoError(t, err)
	assert.Contains(t, output, "Updated task Design")
	assert.Contains(t, output, "24.0h")

	output, err = executeCmd(t, app, "task", "rm", prefix)
	require.NoError(t, err)
	assert.Contains(t, output, "Removed task Design")

	output, err = executeCmd(t, app, "task", "ls")
	require.NoError(t, err)
	assert.Contains(t, output, "No tasks.")
}

func TestTaskCmd_AddInvalid(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "add", "--name", "Nothing", "--hours", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_TASK")
}

func TestTaskCmd_AddWithoutFlagsNonInteractive(t *testing.T) {
	app := testApp(t)

	// Without a terminal the form is skipped and the empty name is rejected.
	_, err := executeCmd(t, app, "task", "add")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task name is required")
}

func TestTaskCmd_UpdateNothing(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "update", "abcd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to update")
}

func TestTaskCmd_RemoveUnknown(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "remove", "does-not-exist")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// --- cap ---

func TestCapCmd_SetListAddNextRemove(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "cap", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "No sprint cap overrides")

	output, err = executeCmd(t, app, "cap", "set", "2", "40")
	require.NoError(t, err)
	assert.Contains(t, output, "Sprint 2 cap set to 40.0h")

	output, err = executeCmd(t, app, "cap", "add-next")
	require.NoError(t, err)
	assert.Contains(t, output, "Added sprint 3 cap 80.0h")

	output, err = executeCmd(t, app, "cap", "ls")
	require.NoError(t, err)
	assert.Contains(t, output, "S2")
	assert.Contains(t, output, "S3")

	output, err = executeCmd(t, app, "cap", "remove", "2")
	require.NoError(t, err)
	assert.Contains(t, output, "Removed the cap override of sprint 2")

	caps, err := app.Settings.ListSprintCaps(context.Background())
	require.NoError(t, err)
	require.Len(t, caps, 1)
	assert.Equal(t, 3, caps[0].Nr)
}

func TestCapCmd_InvalidArgs(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "cap", "set", "two", "40")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sprint number")

	_, err = executeCmd(t, app, "cap", "set", "2", "lots")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid cap")

	_, err = executeCmd(t, app, "cap", "set", "0", "40")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_SPRINT_CAP")
}

// --- settings ---

func TestSettingsCmd_Show(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, output, "SETTINGS")
	assert.Contains(t, output, "2026-03-01")
	assert.Contains(t, output, "300.0h")
}

func TestSettingsCmd_Set(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "settings", "set", "--monthly-cap", "120", "--month", "2026-04")
	require.NoError(t, err)
	assert.Contains(t, output, "120.0h")
	assert.Contains(t, output, "2026-04-01")

	s, err := app.Settings.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 120.0, s.MonthlyCap)
	assert.Equal(t, "2026-04-01", s.MonthShown)
	assert.Equal(t, 300.0, s.TotalBudget, "untouched fields keep their value")
}

func TestSettingsCmd_SetInvalid(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "settings", "set", "--sprint-weeks", "13")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_SETTINGS")

	_, err = executeCmd(t, app, "settings", "set")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to change")
}

func TestSettingsCmd_EditNeedsTerminal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "settings", "edit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs a terminal")
}

// --- scenario ---

func TestScenarioCmd_ImportExport(t *testing.T) {
	app := testApp(t)
	path := writeFile(t, "plan.yaml", scenarioYAML)

	output, err := executeCmd(t, app, "scenario", "import", path)
	require.NoError(t, err)
	assert.Contains(t, output, "Imported 2 tasks and 1 sprint caps")
	assert.Contains(t, output, "1 tasks had no id")

	out := filepath.Join(t.TempDir(), "out.json")
	output, err = executeCmd(t, app, "scenario", "export", out)
	require.NoError(t, err)
	assert.Contains(t, output, "Exported scenario to")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fixed-id")
}

func TestScenarioCmd_ImportInvalid(t *testing.T) {
	app := testApp(t)
	path := writeFile(t, "bad.yaml", "project:\n  start: \"2026-13-01\"\n")

	_, err := executeCmd(t, app, "scenario", "import", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_SCENARIO")
}

func TestScenarioCmd_Reset(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "scenario", "reset")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")

	output, err := executeCmd(t, app, "scenario", "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, output, "Loaded the demo scenario.")

	tasks, err := app.Tasks.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, tasks, 3)
}

func TestScenarioCmd_Preview(t *testing.T) {
	app := testApp(t)
	path := writeFile(t, "plan.yaml", scenarioYAML)

	output, err := executeCmd(t, app, "scenario", "preview", path, "--view", "bars")
	require.NoError(t, err)
	assert.Contains(t, output, "160.0h")
	assert.Contains(t, output, "2026-04-01")
	assert.Contains(t, output, "SPRINTS")

	tasks, err := app.Tasks.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks, "preview must not touch the store")
}

func TestScenarioCmd_PreviewInvalidView(t *testing.T) {
	app := testApp(t)
	path := writeFile(t, "plan.yaml", scenarioYAML)

	_, err := executeCmd(t, app, "scenario", "preview", path, "--view", "gantt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid argument "gantt" for "--view" flag`)
}

// --- watch and dash ---

func TestWatchCmd_PrintsInitialPlan(t *testing.T) {
	app := testApp(t)
	path := writeFile(t, "plan.yaml", scenarioYAML)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	output, err := executeCmdContext(t, ctx, app, "watch", path, "--view", "timeline")
	require.NoError(t, err)
	assert.Contains(t, output, "PLAN")
	assert.Contains(t, output, "160.0h")
}

func TestWatchCmd_MissingDirectory(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "nope", "plan.yaml")

	_, err := executeCmd(t, app, "watch", path)
	require.Error(t, err)
}

func TestDashCmd_NeedsTerminal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "dash")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs a terminal")
}

// --- flag helpers ---

func TestParseMonthFlag(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2026-04", want: "2026-04-01"},
		{in: "2026-04-17", want: "2026-04-01"},
		{in: "2026-4", wantErr: true},
		{in: "April", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseMonthFlag(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCardInfo(t *testing.T) {
	c, err := parseCardInfo([]string{"planned", " Total "})
	require.NoError(t, err)
	assert.True(t, c.PlannedToday)
	assert.True(t, c.RestTotal)
	assert.False(t, c.RestSprint)

	c, err = parseCardInfo([]string{"all"})
	require.NoError(t, err)
	assert.Equal(t, formatter.AllCardInfo(), c)

	c, err = parseCardInfo([]string{""})
	require.NoError(t, err)
	assert.False(t, c.PlannedToday || c.RestSprint || c.RestMonth || c.RestTotal || c.SprintAvg)
}
