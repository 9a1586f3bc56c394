package formatter

import (
	"fmt"

	"github.com/alexanderramin/sprintbudget/internal/dates"
	"github.com/alexanderramin/sprintbudget/internal/projection"
	"github.com/alexanderramin/sprintbudget/internal/scheduler"
)

// FormatSprints lists the sprints that touch the window with their span,
// planned effort, cap and average hours per workday.
func FormatSprints(res scheduler.Result, bars projection.BarData) string {
	ranges := res.Sprints()
	if len(ranges) == 0 {
		return Dim("No sprints in the window.") + "\n"
	}

	planned := make(map[int]float64, len(bars.Sprints))
	for _, s := range bars.Sprints {
		planned[s.Nr] = s.Planned
	}

	headers := []string{"SPRINT", "START", "END", "WORKDAYS", "PLANNED", "CAP", "AVG/DAY"}
	rows := make([][]string, 0, len(ranges))
	for _, r := range ranges {
		from := dates.Max(r.Start, res.Window.Start)
		to := dates.Min(r.End, res.Window.End)
		workdays := len(dates.WorkdaysBetweenInclusive(from, to))

		capH := res.Ceilings.CapForSprint(r.Nr)
		plannedCol := Hours(planned[r.Nr])
		if planned[r.Nr] > capH {
			plannedCol = StyleRed.Render(plannedCol)
		}
		avg := Dim("--")
		if v, ok := res.SprintAvg[r.Nr]; ok {
			avg = Hours(v)
		}
		capCol := Hours(capH)
		if _, ok := res.Ceilings.Overrides[r.Nr]; !ok {
			capCol = Dim(capCol)
		}

		rows = append(rows, []string{
			StylePurple.Render(fmt.Sprintf("S%d", r.Nr)),
			ISODate(r.Start),
			ISODate(r.End),
			fmt.Sprintf("%d", workdays),
			plannedCol,
			capCol,
			avg,
		})
	}
	return RenderTable(headers, rows, 3, 4, 5, 6)
}
