package scheduler

import (
	"time"

	"github.com/alexanderramin/sprintbudget/internal/dates"
	"github.com/alexanderramin/sprintbudget/internal/domain"
	"github.com/alexanderramin/sprintbudget/internal/sprint"
)

type AllocationInput struct {
	ProjectStart time.Time
	ProjectEnd   time.Time
	// SprintStart is the first day of sprint 1.
	SprintStart time.Time
	SprintWeeks int
	Tasks       []domain.Task
}

type Allocation struct {
	// DayHours maps an ISO date to the hours planned on it.
	DayHours map[string]float64
	Sprints  []sprint.Range
}

// Total sums every planned hour in the allocation.
func (a Allocation) Total() float64 {
	var sum float64
	for _, h := range a.DayHours {
		sum += h
	}
	return sum
}

// AllocateDailyHours spreads each task's hours evenly over the workdays its
// sprint shares with the project window. A task whose sprint misses the
// window, or overlaps it only on a weekend, contributes nothing.
func AllocateDailyHours(in AllocationInput) Allocation {
	start := dates.Truncate(in.ProjectStart)
	end := dates.Truncate(in.ProjectEnd)
	anchor := dates.Truncate(in.SprintStart)
	lengthDays := in.SprintWeeks * 7

	dayHours := make(map[string]float64)
	for _, t := range in.Tasks {
		if !t.Allocatable() {
			continue
		}

		r := sprint.RangeFor(anchor, lengthDays, t.SprintNr)
		overlapStart := dates.Max(r.Start, start)
		overlapEnd := dates.Min(r.End, end)
		if overlapStart.After(overlapEnd) {
			continue
		}

		workdays := dates.WorkdaysBetweenInclusive(overlapStart, overlapEnd)
		if len(workdays) == 0 {
			continue
		}

		share := t.Hours / float64(len(workdays))
		for _, d := range workdays {
			if d.Before(start) || d.After(end) {
				continue
			}
			dayHours[dates.ToISO(d)] += share
		}
	}

	return Allocation{
		DayHours: dayHours,
		Sprints:  sprint.Build(start, end, anchor, in.SprintWeeks),
	}
}
