package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprintbudget/internal/dates"
	"github.com/alexanderramin/sprintbudget/internal/domain"
	"github.com/alexanderramin/sprintbudget/internal/projection"
	"github.com/charmbracelet/lipgloss"
)

const timelineLabelWidth = 15

// FormatTimeline renders the whole window one week per line. Each day shows
// its number and planned hours; a ▸ marks the first day of a sprint.
func FormatTimeline(weeks []projection.Week) string {
	if len(weeks) == 0 {
		return Dim("Empty window.") + "\n"
	}

	var b strings.Builder
	label := lipgloss.NewStyle().Width(timelineLabelWidth)

	head := make([]string, len(weekdayNames))
	for i, name := range weekdayNames {
		head[i] = fmt.Sprintf("%-9s", name)
	}
	b.WriteString(label.Render("") + StyleHeader.Render(strings.Join(head, "")) + "\n")

	for _, w := range weeks {
		b.WriteString(label.Render(Bold(w.MonthLabel)))
		for _, c := range w.Cells {
			b.WriteString(timelineCell(c))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func timelineCell(c projection.Cell) string {
	marker := " "
	if c.SprintStart {
		marker = StylePurple.Render("▸")
	}
	day := fmt.Sprintf("%2d", c.Date.Day())
	if !c.InProject {
		return marker + Dim(day) + strings.Repeat(" ", 6)
	}

	hours := "·"
	if c.Planned > 0 {
		hours = fmt.Sprintf("%.1f", roundTenth(c.Planned))
	}
	text := fmt.Sprintf("%s %-4s", day, hours)
	switch {
	case c.Status == domain.StatusBad:
		text = StyleRed.Render(text)
	case dates.IsWeekend(c.Date):
		text = Dim(text)
	default:
		text = StyleGreen.Render(text)
	}
	return marker + text + " "
}
