package projection

import (
	"time"

	"github.com/alexanderramin/sprintbudget/internal/dates"
	"github.com/alexanderramin/sprintbudget/internal/scheduler"
)

// GridCells is the fixed size of the month grid: six Monday-start weeks.
const GridCells = 42

type MonthView struct {
	Month        time.Time
	Cells        []Cell
	MonthPlanned float64
}

// MonthGrid lays out the month containing month, starting on the Monday
// on or before its first day.
func MonthGrid(res scheduler.Result, month time.Time) MonthView {
	first := dates.StartOfMonth(dates.Truncate(month))
	gridStart := dates.MondayOnOrBefore(first)
	b := newCellBuilder(res)

	cells := make([]Cell, GridCells)
	for i := range cells {
		c := b.cell(dates.AddDays(gridStart, i))
		c.InMonth = c.Date.Month() == first.Month() && c.Date.Year() == first.Year()
		cells[i] = c
	}

	mk := dates.MonthKey(first)
	var planned float64
	for _, r := range res.Ledger.Rows {
		if r.MonthKey == mk {
			planned += r.Planned
		}
	}

	return MonthView{Month: first, Cells: cells, MonthPlanned: planned}
}
