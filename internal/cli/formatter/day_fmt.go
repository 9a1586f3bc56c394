package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprintbudget/internal/projection"
)

// FormatDay renders the budget position on one selected day.
func FormatDay(info projection.DayInfo) string {
	title := "Day " + ISODate(info.Date)
	if !info.InProject {
		return RenderBox(title, Dim("Outside the project window."))
	}

	var b strings.Builder
	if info.SprintNr > 0 {
		fmt.Fprintf(&b, "%s %s\n\n", Dim("Sprint"), StylePurple.Render(fmt.Sprintf("S%d", info.SprintNr)))
	} else {
		b.WriteString(Dim("Before the first sprint") + "\n\n")
	}

	lines := [][2]string{
		{"Remaining month budget", Remaining(info.RemainingMonthBudget)},
		{"Remaining project budget", Remaining(info.RemainingProjectBudget)},
		{"Remaining month effort", Hours(info.RemainingMonthEffort)},
		{"Open task effort", Hours(info.OpenTaskEffort)},
		{"Needed budget", Hours(info.NeededBudget)},
		{"Budget gap", Remaining(info.BudgetGap)},
	}
	for _, l := range lines {
		fmt.Fprintf(&b, "%-26s %s\n", l[0], l[1])
	}

	if info.AdditionalMonthBudgetNeeded > 0 {
		b.WriteString("\n" + StyleRed.Render(fmt.Sprintf("▲ This month needs %s more budget", Hours(info.AdditionalMonthBudgetNeeded))) + "\n")
	} else {
		b.WriteString("\n" + StyleGreen.Render("● The month budget covers the remaining effort") + "\n")
	}
	return RenderBox(title, b.String())
}
