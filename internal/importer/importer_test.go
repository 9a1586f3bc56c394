package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/sprintbudget/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `project:
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

const sampleJSONC = `{
  // window
  "project": {"start": "2026-03-01", "end": "2026-05-31"},
  "sprints": {"start": "2026-03-01", "weeks": 3},
  "budget": {
    "total": 300,
    "monthly_cap": 90,
    "sprint_cap_default": 80,
    "sprint_caps": [{"nr": 2, "cap": 40},],
  },
  "tasks": [
    {"name": "Task A", "sprint": 1, "hours": 80},
    {"id": "fixed-id", "name": "Task B", "sprint": 2, "hours": 80},
  ],
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_YAMLAndJSONCAgree(t *testing.T) {
	fromYAML, err := Load(writeFile(t, "plan.yaml", sampleYAML))
	require.NoError(t, err)
	fromJSON, err := Load(writeFile(t, "plan.jsonc", sampleJSONC))
	require.NoError(t, err)

	if diff := cmp.Diff(fromYAML, fromJSON); diff != "" {
		t.Errorf("YAML and JSONC decode differently (-yaml +jsonc):\n%s", diff)
	}
	assert.Equal(t, "2026-03-01", fromYAML.Project.Start)
	assert.Equal(t, 3, fromYAML.Sprints.Weeks)
	require.Len(t, fromYAML.Budget.SprintCaps, 1)
	assert.Equal(t, 40.0, fromYAML.Budget.SprintCaps[0].Cap)
}

func TestLoad_RejectsUnknownExtension(t *testing.T) {
	_, err := Load(writeFile(t, "plan.toml", "x = 1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported scenario file extension")
}

func TestLoad_InvalidJSONC(t *testing.T) {
	_, err := Load(writeFile(t, "plan.json", `{"project": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSONC")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestValidate_SampleIsValid(t *testing.T) {
	f, err := Parse([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, Validate(f))
	assert.NoError(t, ValidateErr(f))
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	f := &ScenarioFile{
		Project: ProjectSection{Start: "2026-3-1", End: ""},
		Sprints: SprintSection{Start: "2026-03-01", Weeks: 0},
		Budget: BudgetSection{
			Total:      -1,
			SprintCaps: []SprintCapEntry{{Nr: 1, Cap: 10}, {Nr: 1, Cap: 20}, {Nr: 0, Cap: -2}},
		},
		Tasks: []TaskEntry{
			{ID: "x", Name: "", Sprint: 0, Hours: 0},
			{ID: "x", Name: "dup", Sprint: 1, Hours: 1},
		},
	}

	errs := Validate(f)
	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	joined := strings.Join(msgs, "\n")

	for _, want := range []string{
		"project.start: invalid date format",
		"project.end is required",
		"sprints.weeks must be between 1 and 12",
		"budget.total must be a non-negative number",
		"duplicate sprint 1",
		"budget.sprint_caps[2].nr must be >= 1",
		"budget.sprint_caps[2].cap must be a non-negative number",
		"tasks[0].name is required",
		"tasks[0].sprint must be >= 1",
		"tasks[0].hours must be a positive number",
		`tasks[1]: duplicate id "x"`,
	} {
		assert.Contains(t, joined, want)
	}
	assert.Error(t, ValidateErr(f))
}

func TestConvert(t *testing.T) {
	f, err := Parse([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)

	sc, assigned := Convert(f)

	assert.Equal(t, 1, assigned)
	require.Len(t, sc.Tasks, 2)
	assert.Len(t, sc.Tasks[0].ID, 36)
	assert.Equal(t, "fixed-id", sc.Tasks[1].ID)
	assert.Equal(t, 1, sc.Tasks[1].Position)
	assert.Equal(t, "2026-03-01", sc.Settings.MonthShown, "month defaults to project start")
	assert.Equal(t, 40.0, sc.Ceilings().CapForSprint(2))
	assert.NoError(t, sc.Settings.Validate())
}

func TestWriteThenLoad_PreservesScenario(t *testing.T) {
	sc := domain.DefaultScenario()
	for i := range sc.Tasks {
		sc.Tasks[i].ID = "task-" + sc.Tasks[i].Name
	}

	for _, name := range []string{"out.yaml", "out.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Write(path, FromScenario(sc)))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

			f, err := Load(path)
			require.NoError(t, err)
			require.Empty(t, Validate(f))
			got, assigned := Convert(f)
			assert.Zero(t, assigned)

			opts := cmpopts.IgnoreFields(domain.Task{}, "CreatedAt", "UpdatedAt")
			if diff := cmp.Diff(sc, got, opts); diff != "" {
				t.Errorf("scenario changed through %s (-want +got):\n%s", name, diff)
			}
		})
	}
}

func TestWrite_ReplacesExistingFile(t *testing.T) {
	path := writeFile(t, "plan.yaml", "garbage: [")
	require.NoError(t, Write(path, FromScenario(domain.DefaultScenario())))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Tasks, 3)
}
