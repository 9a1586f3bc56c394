package projection

import (
	"sort"

	"github.com/alexanderramin/sprintbudget/internal/dates"
	"github.com/alexanderramin/sprintbudget/internal/scheduler"
)

// Gauge is planned usage against one ceiling.
type Gauge struct {
	Planned float64
	Cap     float64
}

func (g Gauge) Over() bool {
	return g.Planned > g.Cap
}

// Pct is the fill percentage, clamped to [0, 100].
func (g Gauge) Pct() float64 {
	if g.Cap <= 0 {
		if g.Planned > 0 {
			return 100
		}
		return 0
	}
	return dates.Clamp(g.Planned/g.Cap*100, 0, 100)
}

type BarEntry struct {
	Key   string
	Label string
	Gauge
}

type SprintBar struct {
	Nr int
	Gauge
}

type BarData struct {
	Total   Gauge
	Months  []BarEntry
	Sprints []SprintBar
}

// Bars aggregates the ledger per window, per month and per sprint.
func Bars(res scheduler.Result) BarData {
	byMonth := make(map[string]float64)
	bySprint := make(map[int]float64)
	var total float64
	for _, r := range res.Ledger.Rows {
		total += r.Planned
		byMonth[r.MonthKey] += r.Planned
		if r.HasSprint() {
			bySprint[r.SprintNr] += r.Planned
		}
	}

	months := make([]BarEntry, 0, len(byMonth))
	for key, planned := range byMonth {
		months = append(months, BarEntry{
			Key:   key,
			Label: dates.MonthLabel(dates.ParseISO(key + "-01")),
			Gauge: Gauge{Planned: planned, Cap: res.Ceilings.MonthlyCap},
		})
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Key < months[j].Key })

	sprints := make([]SprintBar, 0, len(bySprint))
	for nr, planned := range bySprint {
		sprints = append(sprints, SprintBar{
			Nr:    nr,
			Gauge: Gauge{Planned: planned, Cap: res.Ceilings.CapForSprint(nr)},
		})
	}
	sort.Slice(sprints, func(i, j int) bool { return sprints[i].Nr < sprints[j].Nr })

	return BarData{
		Total:   Gauge{Planned: total, Cap: res.Ceilings.TotalBudget},
		Months:  months,
		Sprints: sprints,
	}
}
