package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprintbudget/internal/dates"
	"github.com/alexanderramin/sprintbudget/internal/projection"
	"github.com/charmbracelet/lipgloss"
)

const calendarCellWidth = 11

var weekdayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// CardInfo selects the figures printed under the day number of a
// calendar cell.
type CardInfo struct {
	PlannedToday bool
	RestSprint   bool
	RestMonth    bool
	RestTotal    bool
	SprintAvg    bool
}

func AllCardInfo() CardInfo {
	return CardInfo{PlannedToday: true, RestSprint: true, RestMonth: true, RestTotal: true, SprintAvg: true}
}

// FormatCalendar renders a month grid as six Monday-start weeks.
func FormatCalendar(view projection.MonthView, info CardInfo) string {
	var b strings.Builder

	monthCap := 0.0
	if len(view.Cells) > 0 {
		monthCap = view.Cells[0].MonthCap
	}
	fmt.Fprintf(&b, "%s  %s\n\n",
		Bold(dates.MonthLabel(view.Month)),
		Dim(fmt.Sprintf("planned %s of %s month cap", Hours(view.MonthPlanned), Hours(monthCap))),
	)

	header := make([]string, len(weekdayNames))
	for i, name := range weekdayNames {
		header[i] = lipgloss.NewStyle().Width(calendarCellWidth).Render(StyleHeader.Render(name))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...) + "\n")

	for start := 0; start+7 <= len(view.Cells); start += 7 {
		row := make([]string, 7)
		for i, c := range view.Cells[start : start+7] {
			row[i] = calendarCell(c, info)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...) + "\n")
	}

	b.WriteString("\n" + calendarLegend(info))
	return b.String()
}

func calendarCell(c projection.Cell, info CardInfo) string {
	day := fmt.Sprintf("%2d", c.Date.Day())
	switch {
	case !c.InMonth:
		day = Dim(day)
	case !c.InProject:
		day = StyleFg.Render(day)
	default:
		day = StatusStyle(c.Status).Bold(true).Render(day)
	}
	if c.SprintStart && c.InMonth {
		day += " " + StylePurple.Render(fmt.Sprintf("S%d", c.SprintNr))
	}

	lines := []string{day}
	if c.InProject && c.InMonth {
		if info.PlannedToday {
			lines = append(lines, Hours(c.Planned))
		}
		if info.RestSprint {
			lines = append(lines, Dim("s ")+Remaining(c.RemainingSprint))
		}
		if info.RestMonth {
			lines = append(lines, Dim("m ")+Remaining(c.RemainingMonth))
		}
		if info.RestTotal {
			lines = append(lines, Dim("t ")+Remaining(c.RemainingTotal))
		}
		if info.SprintAvg && c.HasAvg {
			lines = append(lines, Dim("ø ")+Hours(c.Avg))
		}
	}
	return lipgloss.NewStyle().Width(calendarCellWidth).PaddingBottom(1).Render(strings.Join(lines, "\n"))
}

func calendarLegend(info CardInfo) string {
	var parts []string
	if info.RestSprint {
		parts = append(parts, "s rest sprint")
	}
	if info.RestMonth {
		parts = append(parts, "m rest month")
	}
	if info.RestTotal {
		parts = append(parts, "t rest total")
	}
	if info.SprintAvg {
		parts = append(parts, "ø sprint avg/day")
	}
	parts = append(parts, StyleRed.Render("red")+Dim(" over a ceiling"))
	return Dim(strings.Join(parts, " · ")) + "\n"
}
