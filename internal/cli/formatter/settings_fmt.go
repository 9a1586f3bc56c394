package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprintbudget/internal/domain"
)

// FormatTaskList renders tasks in entry order.
func FormatTaskList(tasks []*domain.Task) string {
	if len(tasks) == 0 {
		return Dim("No tasks.") + "\n"
	}

	headers := []string{"ID", "NAME", "SPRINT", "HOURS"}
	rows := make([][]string, 0, len(tasks))
	var total float64
	for _, t := range tasks {
		total += t.Hours
		name := Bold(t.Name)
		if !t.Allocatable() {
			name = StyleYellow.Render(t.Name + " (skipped)")
		}
		rows = append(rows, []string{
			TruncID(t.ID),
			name,
			StylePurple.Render(fmt.Sprintf("S%d", t.SprintNr)),
			Hours(t.Hours),
		})
	}
	return RenderTable(headers, rows, 3) + Dim(fmt.Sprintf("%d tasks, %s in total", len(tasks), Hours(total))) + "\n"
}

// FormatSettings renders the parameter set and the sprint cap overrides.
func FormatSettings(s *domain.Settings, caps []domain.SprintCap) string {
	var b strings.Builder

	fields := [][2]string{
		{"Project start", s.ProjectStart},
		{"Project end", s.ProjectEnd},
		{"Sprint start", s.SprintStart},
		{"Sprint weeks", fmt.Sprintf("%d", s.SprintWeeks)},
		{"Total budget", Hours(s.TotalBudget)},
		{"Monthly cap", Hours(s.MonthlyCap)},
		{"Sprint cap default", Hours(s.SprintCapDefault)},
		{"Month shown", s.MonthShown},
	}
	for _, f := range fields {
		fmt.Fprintf(&b, "%-20s %s\n", Dim(f[0]), f[1])
	}

	b.WriteString("\n" + FormatSprintCaps(caps))
	return RenderBox("Settings", b.String())
}

func FormatSprintCaps(caps []domain.SprintCap) string {
	if len(caps) == 0 {
		return Dim("No sprint cap overrides; every sprint uses the default.") + "\n"
	}
	rows := make([][]string, 0, len(caps))
	for _, c := range caps {
		rows = append(rows, []string{StylePurple.Render(fmt.Sprintf("S%d", c.Nr)), Hours(c.Cap)})
	}
	return RenderTable([]string{"SPRINT", "CAP"}, rows, 1)
}
