// Package projection derives the dashboard views from a computed plan.
//
// Every function reads a scheduler.Result and never re-runs the ledger.
package projection

import (
	"time"

	"github.com/alexanderramin/sprintbudget/internal/dates"
	"github.com/alexanderramin/sprintbudget/internal/domain"
	"github.com/alexanderramin/sprintbudget/internal/scheduler"
	"github.com/alexanderramin/sprintbudget/internal/sprint"
)

// Cell is one day as shown in the calendar and timeline grids.
type Cell struct {
	Date            time.Time
	Planned         float64
	RemainingMonth  float64
	RemainingSprint float64
	RemainingTotal  float64
	MonthCap        float64
	Status          domain.Status
	Reason          domain.StatusReason
	Label           string
	InProject       bool
	InMonth         bool
	SprintNr        int
	SprintCap       float64
	SprintStart     bool
	SprintDay       int
	SprintTotalDays int
	Avg             float64
	HasAvg          bool
}

// cellBuilder indexes a result once so that building many cells stays cheap.
type cellBuilder struct {
	res          scheduler.Result
	sprintStarts map[string]bool
}

func newCellBuilder(res scheduler.Result) cellBuilder {
	starts := make(map[string]bool, len(res.Sprints()))
	for _, r := range res.Sprints() {
		starts[dates.ToISO(r.Start)] = true
	}
	return cellBuilder{res: res, sprintStarts: starts}
}

func (b cellBuilder) cell(d time.Time) Cell {
	iso := dates.ToISO(d)
	c := Cell{
		Date:            d,
		RemainingMonth:  b.res.Ceilings.MonthlyCap,
		RemainingSprint: b.res.Ceilings.SprintCapDefault,
		RemainingTotal:  b.res.Ceilings.TotalBudget,
		MonthCap:        b.res.Ceilings.MonthlyCap,
		Status:          domain.StatusOK,
		Reason:          domain.ReasonOK,
	}

	row, ok := b.res.Ledger.RowFor(iso)
	if ok {
		c.Planned = row.Planned
		c.RemainingMonth = row.RemainingMonth
		c.RemainingSprint = row.RemainingSprint
		c.RemainingTotal = row.RemainingTotal
		c.InProject = true
		c.Status = row.Status()
		c.Reason = row.Reason()
		c.SprintStart = b.sprintStarts[iso]

		if row.HasSprint() {
			r := sprint.RangeFor(b.res.Window.SprintStart, b.res.SprintDays, row.SprintNr)
			c.SprintNr = row.SprintNr
			c.SprintCap = row.SprintCap
			c.SprintDay = r.DayOf(d)
			c.SprintTotalDays = b.res.SprintDays
			c.Avg, c.HasAvg = b.res.SprintAvg[row.SprintNr]
		}
	}
	c.Label = scheduler.StatusLabelFor(c.Reason)
	return c
}
