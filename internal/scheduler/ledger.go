package scheduler

import (
	"math"
	"time"

	"github.com/alexanderramin/sprintbudget/internal/dates"
	"github.com/alexanderramin/sprintbudget/internal/domain"
	"github.com/alexanderramin/sprintbudget/internal/sprint"
)

type LedgerInput struct {
	ProjectStart time.Time
	ProjectEnd   time.Time
	SprintStart  time.Time
	SprintDays   int
	DayHours     map[string]float64
	Ceilings     domain.Ceilings
}

// DailyRow is the end-of-day budget state for one calendar day.
type DailyRow struct {
	Date     time.Time
	Planned  float64
	MonthKey string
	// SprintNr is 0 for days before sprint 1.
	SprintNr        int
	SprintCap       float64
	RemainingMonth  float64
	RemainingSprint float64
	RemainingTotal  float64
}

func (r DailyRow) HasSprint() bool {
	return r.SprintNr > 0
}

func (r DailyRow) Remaining() Remaining {
	return Remaining{Month: r.RemainingMonth, Sprint: r.RemainingSprint, Total: r.RemainingTotal}
}

func (r DailyRow) Status() domain.Status {
	return StatusFor(r.Remaining())
}

func (r DailyRow) Reason() domain.StatusReason {
	return StatusReasonFor(r.Remaining(), r.HasSprint())
}

// Burn summarizes the window. Each break is the first day the matching
// remainder went negative, or nil if it never did.
type Burn struct {
	TotalPlanned float64
	BudgetBreak  *time.Time
	MonthBreak   *time.Time
	SprintBreak  *time.Time
	TotalBreak   *time.Time
}

// FirstBreach returns the combined breach date and the ceiling that broke
// on it. Ties go month, total, sprint.
func (b Burn) FirstBreach() (time.Time, domain.CeilingKind, bool) {
	if b.BudgetBreak == nil {
		return time.Time{}, "", false
	}
	for _, c := range []struct {
		at   *time.Time
		kind domain.CeilingKind
	}{
		{b.MonthBreak, domain.CeilingMonth},
		{b.TotalBreak, domain.CeilingTotal},
		{b.SprintBreak, domain.CeilingSprint},
	} {
		if c.at != nil && c.at.Equal(*b.BudgetBreak) {
			return *b.BudgetBreak, c.kind, true
		}
	}
	return *b.BudgetBreak, "", true
}

type Ledger struct {
	Rows []DailyRow
	Burn Burn
}

// RowFor finds the row for an ISO date.
func (l Ledger) RowFor(iso string) (DailyRow, bool) {
	if len(l.Rows) == 0 {
		return DailyRow{}, false
	}
	d, err := dates.ParseISOStrict(iso)
	if err != nil {
		return DailyRow{}, false
	}
	i := dates.DaysBetween(l.Rows[0].Date, d)
	if i < 0 || i >= len(l.Rows) {
		return DailyRow{}, false
	}
	return l.Rows[i], true
}

// BuildLedger walks the window one day at a time and keeps running sums per
// month, per sprint and overall.
func BuildLedger(in LedgerInput) Ledger {
	start := dates.Truncate(in.ProjectStart)
	end := dates.Truncate(in.ProjectEnd)
	anchor := dates.Truncate(in.SprintStart)
	sprintDays := max(1, in.SprintDays)

	byMonth := make(map[string]float64)
	bySprint := make(map[int]float64)
	var cumulative float64
	var burn Burn

	rows := make([]DailyRow, 0, max(0, dates.DaysBetween(start, end)+1))
	for cur := start; !cur.After(end); cur = dates.AddDays(cur, 1) {
		planned := in.DayHours[dates.ToISO(cur)]
		cumulative += planned

		mk := dates.MonthKey(cur)
		byMonth[mk] += planned

		row := DailyRow{
			Date:            cur,
			Planned:         planned,
			MonthKey:        mk,
			RemainingMonth:  in.Ceilings.MonthlyCap - byMonth[mk],
			RemainingSprint: math.Inf(1),
			RemainingTotal:  in.Ceilings.TotalBudget - cumulative,
		}
		if nr, ok := sprint.NrForDate(cur, anchor, sprintDays); ok {
			bySprint[nr] += planned
			row.SprintNr = nr
			row.SprintCap = in.Ceilings.CapForSprint(nr)
			row.RemainingSprint = row.SprintCap - bySprint[nr]
		}
		rows = append(rows, row)

		recordBreak(&burn.MonthBreak, cur, row.RemainingMonth)
		recordBreak(&burn.SprintBreak, cur, row.RemainingSprint)
		recordBreak(&burn.TotalBreak, cur, row.RemainingTotal)
		if burn.BudgetBreak == nil && StatusFor(row.Remaining()) == domain.StatusBad {
			d := cur
			burn.BudgetBreak = &d
		}
	}
	burn.TotalPlanned = cumulative

	return Ledger{Rows: rows, Burn: burn}
}

func recordBreak(slot **time.Time, day time.Time, remaining float64) {
	if *slot != nil || remaining >= 0 {
		return
	}
	d := day
	*slot = &d
}
