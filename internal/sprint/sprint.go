// Package sprint maps sprint numbers to calendar ranges and back.
//
// Sprints are a pure function of an anchor date (the first day of sprint 1),
// a length in days and a 1-based index. They are never stored.
package sprint

import (
	"time"

	"github.com/alexanderramin/sprintbudget/internal/dates"
)

// Range is the inclusive calendar span of one sprint.
type Range struct {
	Nr    int
	Start time.Time
	End   time.Time
}

// Days returns the length of the range in calendar days.
func (r Range) Days() int {
	return dates.DaysBetween(r.Start, r.End) + 1
}

// Contains reports whether d falls within the range.
func (r Range) Contains(d time.Time) bool {
	d = dates.Truncate(d)
	return !d.Before(r.Start) && !d.After(r.End)
}

// DayOf returns the 1-based position of d inside the range.
func (r Range) DayOf(d time.Time) int {
	return dates.DaysBetween(r.Start, d) + 1
}

// RangeFor returns sprint nr. Callers must pass nr >= 1.
func RangeFor(anchor time.Time, lengthDays, nr int) Range {
	start := dates.AddDays(dates.Truncate(anchor), (nr-1)*lengthDays)
	return Range{
		Nr:    nr,
		Start: start,
		End:   dates.AddDays(start, lengthDays-1),
	}
}

// NrForDate returns the sprint containing d. It reports false when d lies
// before the anchor.
func NrForDate(d, anchor time.Time, lengthDays int) (int, bool) {
	days := dates.DaysBetween(anchor, d)
	if days < 0 {
		return 0, false
	}
	return days/lengthDays + 1, true
}

// Build enumerates every sprint that can overlap [projectStart, projectEnd].
// Sprints before the anchor are never enumerated: a window that starts (or
// lies entirely) before sprint 1 begins its enumeration at sprint 1.
func Build(projectStart, projectEnd, anchor time.Time, weeks int) []Range {
	lengthDays := weeks * 7

	startNr := 1
	if nr, ok := NrForDate(projectStart, anchor, lengthDays); ok {
		startNr = max(1, nr)
	}
	endNr := startNr
	if nr, ok := NrForDate(projectEnd, anchor, lengthDays); ok {
		endNr = max(startNr, nr)
	}

	ranges := make([]Range, 0, endNr-startNr+1)
	for nr := startNr; nr <= endNr; nr++ {
		ranges = append(ranges, RangeFor(anchor, lengthDays, nr))
	}
	return ranges
}
