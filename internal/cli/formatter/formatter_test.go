package formatter

import (
	"math"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/sprintbudget/internal/app"
	"github.com/alexanderramin/sprintbudget/internal/dates"
	"github.com/alexanderramin/sprintbudget/internal/domain"
	"github.com/alexanderramin/sprintbudget/internal/projection"
	"github.com/alexanderramin/sprintbudget/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// demoResponse plans the demo scenario the way the plan service does.
func demoResponse(t *testing.T) *app.PlanResponse {
	t.Helper()
	sc := domain.DefaultScenario()
	res := scheduler.Compute(sc)
	at, kind, ok := res.Ledger.Burn.FirstBreach()
	require.True(t, ok)

	return &app.PlanResponse{
		Scenario: sc,
		Result:   res,
		Summary: app.PlanSummary{
			WindowStart:     res.Window.Start,
			WindowEnd:       res.Window.End,
			SprintWeeks:     res.SprintWeeks,
			SprintCount:     len(res.Sprints()),
			TaskCount:       len(sc.Tasks),
			TotalPlanned:    res.Ledger.Burn.TotalPlanned,
			TotalBudget:     res.Ceilings.TotalBudget,
			RemainingBudget: res.Ceilings.TotalBudget - res.Ledger.Burn.TotalPlanned,
			Breach:          &app.BreachInfo{Date: at, Kind: kind},
			MonthBreak:      res.Ledger.Burn.MonthBreak,
		},
		Month:    projection.MonthGrid(res, dates.New(2026, time.March, 1)),
		Timeline: projection.Timeline(res),
		Bars:     projection.Bars(res),
		Warnings: []string{"task \"Late\": sprint 9 has no workdays inside the project window"},
	}
}

func TestHours(t *testing.T) {
	assert.Equal(t, "5.3h", Hours(80.0/15))
	assert.Equal(t, "0.0h", Hours(-1e-12))
	assert.Equal(t, "-27.3h", Hours(-27.333))
	assert.Equal(t, "∞", Hours(math.Inf(1)))
	assert.Equal(t, "--", stripANSI(Remaining(math.Inf(1))))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"NAME", "HOURS"},
		[][]string{{"a", "1.0h"}, {"bbb", "10.0h"}},
		1,
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "NAME  HOURS", lines[0])
	assert.Equal(t, "────  ─────", lines[1])
	assert.Equal(t, "a      1.0h", lines[2])
	assert.Equal(t, "bbb   10.0h", lines[3])
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestRenderGauge(t *testing.T) {
	out := stripANSI(RenderGauge(projection.Gauge{Planned: 240, Cap: 300}, 10))
	assert.Contains(t, out, "[████████░░]")
	assert.Contains(t, out, " 80%")
	assert.Contains(t, out, "240.0h / 300.0h")

	over := stripANSI(RenderGauge(projection.Gauge{Planned: 120, Cap: 90}, 10))
	assert.Contains(t, over, "[██████████]")
	assert.Contains(t, over, "100%")

	zeroCap := stripANSI(RenderGauge(projection.Gauge{}, 4))
	assert.Contains(t, zeroCap, "[░░░░]")
}

func TestFormatSummary(t *testing.T) {
	out := stripANSI(FormatSummary(demoResponse(t)))

	assert.Contains(t, out, "2026-03-01 → 2026-05-31")
	assert.Contains(t, out, "(3-week sprints, 5 sprints)")
	assert.Contains(t, out, "240.0h of 300.0h, 60.0h left")
	assert.Contains(t, out, "MONTH CAP on Tue 24 Mar")
	assert.Contains(t, out, "2026-03-24")
	assert.Contains(t, out, "never")
	assert.Contains(t, out, "WARNING: task \"Late\"")
}

func TestFormatSummary_NoBreach(t *testing.T) {
	resp := demoResponse(t)
	resp.Summary.Breach = nil
	resp.Summary.MonthBreak = nil
	resp.Warnings = nil

	out := stripANSI(FormatSummary(resp))
	assert.Contains(t, out, "No ceiling is breached")
	assert.NotContains(t, out, "WARNING")
}

func TestFormatLedger(t *testing.T) {
	res := demoResponse(t).Result
	out := stripANSI(FormatLedger(res.Ledger.Rows[20:25]))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "REST SPRINT")
	assert.Contains(t, out, "2026-03-23")
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "Warning: month cap")
	assert.Contains(t, out, "S2")

	assert.Contains(t, stripANSI(FormatLedger(nil)), "No days in range")
}

func TestFormatCalendar(t *testing.T) {
	view := demoResponse(t).Month
	out := stripANSI(FormatCalendar(view, AllCardInfo()))

	assert.Contains(t, out, "March 2026")
	assert.Contains(t, out, "Mon")
	assert.Contains(t, out, "S1")
	assert.Contains(t, out, "S2")
	assert.Contains(t, out, "ø 5.3h")
	assert.Contains(t, out, "m -")
	assert.Contains(t, out, "rest sprint")

	bare := stripANSI(FormatCalendar(view, CardInfo{}))
	assert.NotContains(t, bare, "ø ")
	assert.NotContains(t, bare, "5.3h\n")
	assert.Contains(t, bare, "31")
}

func TestFormatTimeline(t *testing.T) {
	weeks := demoResponse(t).Timeline
	out := stripANSI(FormatTimeline(weeks))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, len(weeks)+1)
	assert.Contains(t, out, "March 2026")
	assert.Contains(t, out, "April 2026")
	assert.Contains(t, out, "▸")
	assert.Contains(t, out, "5.3")

	assert.Contains(t, stripANSI(FormatTimeline(nil)), "Empty window")
}

func TestFormatBars(t *testing.T) {
	out := stripANSI(FormatBars(demoResponse(t).Bars))

	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "March 2026")
	assert.Contains(t, out, "Sprint 5")
	assert.Contains(t, out, "over by 27.3h")
}

func TestFormatSprints(t *testing.T) {
	resp := demoResponse(t)
	out := stripANSI(FormatSprints(resp.Result, resp.Bars))

	assert.Contains(t, out, "AVG/DAY")
	assert.Contains(t, out, "2026-03-21")
	assert.Contains(t, out, "S5")
	assert.Contains(t, out, "80.0h")
}

func TestFormatDay(t *testing.T) {
	res := demoResponse(t).Result

	in := stripANSI(FormatDay(projection.SelectDay(res, "2026-03-24")))
	assert.Contains(t, in, "DAY 2026-03-24")
	assert.Contains(t, in, "S2")
	assert.Contains(t, in, "Open task effort")
	assert.Contains(t, in, "more budget")

	out := stripANSI(FormatDay(projection.SelectDay(res, "2027-01-04")))
	assert.Contains(t, out, "Outside the project window")
}

func TestFormatTaskList(t *testing.T) {
	tasks := []*domain.Task{
		{ID: "0123456789abcdef", Name: "Design", SprintNr: 1, Hours: 24},
		{ID: "fedcba9876543210", Name: "Broken", SprintNr: 0, Hours: 8},
	}
	out := stripANSI(FormatTaskList(tasks))

	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "0123456789")
	assert.Contains(t, out, "Broken (skipped)")
	assert.Contains(t, out, "2 tasks, 32.0h in total")
	assert.Contains(t, stripANSI(FormatTaskList(nil)), "No tasks")
}

func TestFormatSettings(t *testing.T) {
	s := domain.DefaultSettings()

	out := stripANSI(FormatSettings(&s, nil))
	assert.Contains(t, out, "SETTINGS")
	assert.Contains(t, out, "2026-05-31")
	assert.Contains(t, out, "300.0h")
	assert.Contains(t, out, "No sprint cap overrides")

	withCaps := stripANSI(FormatSettings(&s, []domain.SprintCap{{Nr: 2, Cap: 40}}))
	assert.Contains(t, withCaps, "S2")
	assert.Contains(t, withCaps, "40.0h")
}
