package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/sprintbudget/internal/app"
)

const summaryGaugeWidth = 20

// FormatSummary renders the plan headline: window, totals and the first
// breach of each ceiling.
func FormatSummary(resp *app.PlanResponse) string {
	sum := resp.Summary
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s → %s  %s\n",
		Dim("Window"),
		Bold(ISODate(sum.WindowStart)),
		Bold(ISODate(sum.WindowEnd)),
		Dim(fmt.Sprintf("(%d-week sprints, %d sprints)", sum.SprintWeeks, sum.SprintCount)),
	)

	tasks := fmt.Sprintf("%d", sum.TaskCount)
	if sum.SkippedTasks > 0 {
		tasks += StyleYellow.Render(fmt.Sprintf(" (%d skipped)", sum.SkippedTasks))
	}
	fmt.Fprintf(&b, "%s   %s\n", Dim("Tasks"), tasks)
	fmt.Fprintf(&b, "%s  %s of %s, %s left\n",
		Dim("Budget"), Bold(Hours(sum.TotalPlanned)), Hours(sum.TotalBudget), Remaining(sum.RemainingBudget))
	fmt.Fprintf(&b, "        %s\n\n", RenderGauge(resp.Bars.Total, summaryGaugeWidth))

	if sum.Breach == nil {
		b.WriteString(StyleGreen.Render("● No ceiling is breached") + "\n")
	} else {
		fmt.Fprintf(&b, "%s %s on %s\n",
			StyleRed.Render("▲ First breach:"), CeilingBadge(sum.Breach.Kind), Bold(ShortDate(sum.Breach.Date)))
	}

	b.WriteString("\n" + RenderTable(
		[]string{"CEILING", "FIRST BREACH"},
		[][]string{
			{"Month cap", breakDate(sum.MonthBreak)},
			{"Sprint cap", breakDate(sum.SprintBreak)},
			{"Total budget", breakDate(sum.TotalBreak)},
		},
	))

	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range resp.Warnings {
			b.WriteString(StyleYellow.Render("  WARNING: "+w) + "\n")
		}
	}

	return RenderBox("Plan", b.String())
}

func breakDate(t *time.Time) string {
	if t == nil {
		return StyleGreen.Render("never")
	}
	return StyleRed.Render(ISODate(*t))
}
