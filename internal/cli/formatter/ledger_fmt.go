package formatter

import (
	"fmt"

	"github.com/alexanderramin/sprintbudget/internal/scheduler"
)

// FormatLedger renders daily rows as a table, one line per day.
func FormatLedger(rows []scheduler.DailyRow) string {
	if len(rows) == 0 {
		return Dim("No days in range.") + "\n"
	}

	headers := []string{"DATE", "DAY", "PLANNED", "SPRINT", "REST MONTH", "REST SPRINT", "REST TOTAL", "STATUS"}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		sprintCol := Dim("--")
		if r.HasSprint() {
			sprintCol = fmt.Sprintf("S%d", r.SprintNr)
		}
		planned := Hours(r.Planned)
		if r.Planned == 0 {
			planned = Dim(planned)
		}
		out = append(out, []string{
			ISODate(r.Date),
			Dim(r.Date.Format("Mon")),
			planned,
			sprintCol,
			Remaining(r.RemainingMonth),
			Remaining(r.RemainingSprint),
			Remaining(r.RemainingTotal),
			ReasonIndicator(r.Reason(), scheduler.StatusLabelFor(r.Reason())),
		})
	}
	return RenderTable(headers, out, 2, 4, 5, 6)
}
