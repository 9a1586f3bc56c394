package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/sprintbudget/internal/dates"
	"github.com/alexanderramin/sprintbudget/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindow_SwapsReversedDates(t *testing.T) {
	w := ParseWindow("2026-05-31", "2026-03-01", "2026-03-01")
	assert.Equal(t, projectStart, w.Start)
	assert.Equal(t, projectEnd, w.End)
}

func TestParseWindow_MalformedFallsBackToToday(t *testing.T) {
	w := ParseWindow("nope", "nope", "")
	assert.Equal(t, dates.Today(), w.Start)
	assert.Equal(t, dates.Today(), w.End)
	assert.Equal(t, dates.Today(), w.SprintStart)
}

func TestNormalizeSprintWeeks(t *testing.T) {
	assert.Equal(t, 1, NormalizeSprintWeeks(0))
	assert.Equal(t, 1, NormalizeSprintWeeks(-4))
	assert.Equal(t, 3, NormalizeSprintWeeks(3))
	assert.Equal(t, 12, NormalizeSprintWeeks(52))
}

func TestCompute_DefaultScenario(t *testing.T) {
	res := Compute(domain.DefaultScenario())

	assert.Equal(t, 3, res.SprintWeeks)
	assert.Equal(t, 21, res.SprintDays)
	assert.Equal(t, 1, res.SprintAtProjectStart)
	require.Len(t, res.Sprints(), 5)
	assert.InDelta(t, 240.0, res.Ledger.Burn.TotalPlanned, 1e-9)

	// Task B's first March days push the month over 90h on the second workday.
	require.NotNil(t, res.Ledger.Burn.BudgetBreak)
	assert.Equal(t, dates.New(2026, time.March, 24), *res.Ledger.Burn.BudgetBreak)
	_, kind, _ := res.Ledger.Burn.FirstBreach()
	assert.Equal(t, domain.CeilingMonth, kind)
	assert.Nil(t, res.Ledger.Burn.TotalBreak)

	assert.InDelta(t, 80.0/15.0, res.SprintAvg[1], 1e-9)
	assert.InDelta(t, 80.0/15.0, res.SprintAvg[3], 1e-9)
	assert.Zero(t, res.SprintAvg[4])
}

func TestCompute_WindowBeforeAnchor(t *testing.T) {
	sc := domain.DefaultScenario()
	sc.Settings.ProjectStart = "2025-01-01"
	sc.Settings.ProjectEnd = "2025-06-30"

	res := Compute(sc)

	assert.Equal(t, 0, res.SprintAtProjectStart)
	require.Len(t, res.Sprints(), 1)
	assert.Equal(t, 1, res.Sprints()[0].Nr)
	assert.Zero(t, res.Ledger.Burn.TotalPlanned)
	for _, r := range res.Ledger.Rows {
		assert.False(t, r.HasSprint())
	}
}

func TestCompute_ClampsSprintWeeks(t *testing.T) {
	sc := domain.DefaultScenario()
	sc.Settings.SprintWeeks = 0

	res := Compute(sc)
	assert.Equal(t, 1, res.SprintWeeks)
	assert.Equal(t, 7, res.SprintDays)
}

func TestCompute_IsDeterministic(t *testing.T) {
	a := Compute(domain.DefaultScenario())
	b := Compute(domain.DefaultScenario())
	assert.Equal(t, a, b)
}
