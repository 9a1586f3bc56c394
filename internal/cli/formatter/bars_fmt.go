package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprintbudget/internal/projection"
	"github.com/charmbracelet/lipgloss"
)

const (
	barsGaugeWidth = 24
	barsLabelWidth = 16
)

// FormatBars renders one gauge for the total budget, one per month and one
// per sprint.
func FormatBars(bars projection.BarData) string {
	var b strings.Builder
	label := lipgloss.NewStyle().Width(barsLabelWidth)

	b.WriteString(Header("Total") + "\n")
	b.WriteString(label.Render("Project") + RenderGauge(bars.Total, barsGaugeWidth) + "\n\n")

	b.WriteString(Header("Months") + "\n")
	if len(bars.Months) == 0 {
		b.WriteString(Dim("No planned months.") + "\n")
	}
	for _, m := range bars.Months {
		b.WriteString(label.Render(m.Label) + RenderGauge(m.Gauge, barsGaugeWidth) + overMark(m.Gauge) + "\n")
	}

	b.WriteString("\n" + Header("Sprints") + "\n")
	if len(bars.Sprints) == 0 {
		b.WriteString(Dim("No sprints in the window.") + "\n")
	}
	for _, s := range bars.Sprints {
		b.WriteString(label.Render(fmt.Sprintf("Sprint %d", s.Nr)) + RenderGauge(s.Gauge, barsGaugeWidth) + overMark(s.Gauge) + "\n")
	}
	return b.String()
}

func overMark(g projection.Gauge) string {
	if !g.Over() {
		return ""
	}
	return " " + StyleRed.Render(fmt.Sprintf("over by %s", Hours(g.Planned-g.Cap)))
}
