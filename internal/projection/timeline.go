package projection

import (
	"github.com/alexanderramin/sprintbudget/internal/dates"
	"github.com/alexanderramin/sprintbudget/internal/scheduler"
)

// Week is one Monday-to-Sunday row of the timeline. MonthLabel is set when
// the week contains the first day of a month.
type Week struct {
	Cells      [7]Cell
	MonthLabel string
}

// Timeline covers the whole window in full weeks, from the Monday on or
// before the start to the Sunday on or after the end.
func Timeline(res scheduler.Result) []Week {
	gridStart := dates.MondayOnOrBefore(res.Window.Start)
	gridEnd := dates.SundayOnOrAfter(res.Window.End)
	b := newCellBuilder(res)

	var weeks []Week
	for cur := gridStart; !cur.After(gridEnd); {
		var w Week
		for i := range w.Cells {
			w.Cells[i] = b.cell(cur)
			if cur.Day() == 1 {
				w.MonthLabel = dates.MonthLabel(cur)
			}
			cur = dates.AddDays(cur, 1)
		}
		weeks = append(weeks, w)
	}
	return weeks
}
