package scheduler

import (
	"time"

	"github.com/alexanderramin/sprintbudget/internal/dates"
	"github.com/alexanderramin/sprintbudget/internal/domain"
	"github.com/alexanderramin/sprintbudget/internal/sprint"
)

// Window is the normalized project window plus the sprint anchor.
type Window struct {
	Start       time.Time
	End         time.Time
	SprintStart time.Time
}

// ParseWindow parses the boundary strings tolerantly and swaps start and end
// when they arrive reversed.
func ParseWindow(start, end, sprintStart string) Window {
	s := dates.ParseISO(start)
	e := dates.ParseISO(end)
	if s.After(e) {
		s, e = e, s
	}
	return Window{Start: s, End: e, SprintStart: dates.ParseISO(sprintStart)}
}

// NormalizeSprintWeeks clamps n into the accepted range. Zero reads as one.
func NormalizeSprintWeeks(n int) int {
	return dates.ClampInt(n, domain.MinSprintWeeks, domain.MaxSprintWeeks)
}

type Result struct {
	Window      Window
	SprintWeeks int
	SprintDays  int
	// SprintAtProjectStart is 0 when the window opens before sprint 1.
	SprintAtProjectStart int
	Allocation           Allocation
	Ledger               Ledger
	SprintAvg            map[int]float64
	Ceilings             domain.Ceilings
}

// Sprints returns the sprint ranges touched by the window.
func (r Result) Sprints() []sprint.Range {
	return r.Allocation.Sprints
}

// Compute runs the whole pipeline for one scenario. It has no side effects;
// equal scenarios yield equal results.
func Compute(sc domain.Scenario) Result {
	w := ParseWindow(sc.Settings.ProjectStart, sc.Settings.ProjectEnd, sc.Settings.SprintStart)
	weeks := NormalizeSprintWeeks(sc.Settings.SprintWeeks)
	sprintDays := weeks * 7
	ceilings := sc.Ceilings()

	alloc := AllocateDailyHours(AllocationInput{
		ProjectStart: w.Start,
		ProjectEnd:   w.End,
		SprintStart:  w.SprintStart,
		SprintWeeks:  weeks,
		Tasks:        sc.Tasks,
	})
	ledger := BuildLedger(LedgerInput{
		ProjectStart: w.Start,
		ProjectEnd:   w.End,
		SprintStart:  w.SprintStart,
		SprintDays:   sprintDays,
		DayHours:     alloc.DayHours,
		Ceilings:     ceilings,
	})

	atStart, _ := sprint.NrForDate(w.Start, w.SprintStart, sprintDays)

	return Result{
		Window:               w,
		SprintWeeks:          weeks,
		SprintDays:           sprintDays,
		SprintAtProjectStart: atStart,
		Allocation:           alloc,
		Ledger:               ledger,
		SprintAvg:            SprintAverages(ledger.Rows),
		Ceilings:             ceilings,
	}
}
