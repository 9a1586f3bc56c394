package projection

import (
	"time"

	"github.com/alexanderramin/sprintbudget/internal/dates"
	"github.com/alexanderramin/sprintbudget/internal/scheduler"
)

// DayInfo is the drill-down for one selected day.
type DayInfo struct {
	Date      time.Time
	InProject bool
	SprintNr  int

	RemainingMonthBudget   float64
	RemainingProjectBudget float64
	// RemainingMonthEffort is planned from the day to the end of its month.
	RemainingMonthEffort float64
	// OpenTaskEffort is planned from the day to the end of its sprint.
	OpenTaskEffort float64
	NeededBudget   float64
	// BudgetGap is positive when the project budget covers the open effort.
	BudgetGap                   float64
	AdditionalMonthBudgetNeeded float64
}

// SelectDay reports the budget position on iso. Days outside the window
// only carry the date.
func SelectDay(res scheduler.Result, iso string) DayInfo {
	row, ok := res.Ledger.RowFor(iso)
	if !ok {
		return DayInfo{Date: dates.ParseISO(iso)}
	}

	info := DayInfo{
		Date:                   row.Date,
		InProject:              true,
		SprintNr:               row.SprintNr,
		RemainingMonthBudget:   row.RemainingMonth,
		RemainingProjectBudget: row.RemainingTotal,
	}
	for _, r := range res.Ledger.Rows {
		if r.Date.Before(row.Date) {
			continue
		}
		if r.MonthKey == row.MonthKey {
			info.RemainingMonthEffort += r.Planned
		}
		if row.HasSprint() && r.SprintNr == row.SprintNr {
			info.OpenTaskEffort += r.Planned
		}
	}
	info.NeededBudget = info.OpenTaskEffort
	info.BudgetGap = info.RemainingProjectBudget - info.NeededBudget
	info.AdditionalMonthBudgetNeeded = max(0, info.RemainingMonthEffort-info.RemainingMonthBudget)
	return info
}
