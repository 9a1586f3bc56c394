// Package dates implements calendar-date arithmetic for the planner.
//
// A calendar date is carried as a time.Time at midnight UTC. Only the
// year/month/day fields are meaningful; UTC is used so that adding days never
// crosses a daylight-saving shift.
package dates

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

// Layout is the ISO calendar date layout used at every boundary.
const Layout = "2006-01-02"

var isoPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// New returns the calendar date y-m-d. Out-of-range months and days
// normalize the way time.Date does.
func New(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Truncate drops the time-of-day of t, keeping its calendar date as seen in
// t's own location.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return New(y, m, d)
}

// Today returns the local calendar date of the current instant.
func Today() time.Time {
	return Truncate(time.Now())
}

// ToISO formats d as YYYY-MM-DD.
func ToISO(d time.Time) string {
	return d.Format(Layout)
}

// ParseISO parses a YYYY-MM-DD string. Anything that does not have that shape
// yields Today(); the planner relies on this to stay total.
func ParseISO(s string) time.Time {
	if !isoPattern.MatchString(s) {
		return Today()
	}
	y, _ := strconv.Atoi(s[0:4])
	m, _ := strconv.Atoi(s[5:7])
	d, _ := strconv.Atoi(s[8:10])
	return New(y, time.Month(m), d)
}

// ParseISOStrict parses a YYYY-MM-DD string and rejects anything that is
// not a real calendar date.
func ParseISOStrict(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

// AddDays returns d shifted by n days. n may be negative.
func AddDays(d time.Time, n int) time.Time {
	return d.AddDate(0, 0, n)
}

// DaysBetween returns the number of whole days from a to b. It is negative
// when b precedes a.
func DaysBetween(a, b time.Time) int {
	diff := Truncate(b).Sub(Truncate(a))
	return int(math.Floor(diff.Hours() / 24))
}

// StartOfMonth returns the first day of d's month.
func StartOfMonth(d time.Time) time.Time {
	return New(d.Year(), d.Month(), 1)
}

// IsWeekend reports whether d falls on a Saturday or Sunday.
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// MonthKey returns YYYY-MM.
func MonthKey(d time.Time) string {
	return d.Format("2006-01")
}

// MonthLabel returns the long English month name and year, e.g. "March 2026".
func MonthLabel(d time.Time) string {
	return d.Format("January 2006")
}

// WorkdaysBetweenInclusive lists every non-weekend date from a to b
// inclusive in ascending order. Both ends are truncated to midnight first.
func WorkdaysBetweenInclusive(a, b time.Time) []time.Time {
	cur := Truncate(a)
	end := Truncate(b)

	var days []time.Time
	for !cur.After(end) {
		if !IsWeekend(cur) {
			days = append(days, cur)
		}
		cur = AddDays(cur, 1)
	}
	return days
}

// MondayOnOrBefore returns the Monday of d's ISO week.
func MondayOnOrBefore(d time.Time) time.Time {
	d = Truncate(d)
	return AddDays(d, -mondayOffset(d))
}

// SundayOnOrAfter returns the Sunday that closes d's ISO week.
func SundayOnOrAfter(d time.Time) time.Time {
	d = Truncate(d)
	return AddDays(d, 6-mondayOffset(d))
}

// mondayOffset is the number of days since Monday (Monday = 0).
func mondayOffset(d time.Time) int {
	return (int(d.Weekday()) + 6) % 7
}

// Clamp limits n to [lo, hi].
func Clamp(n, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, n))
}

// ClampInt limits n to [lo, hi].
func ClampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// Min returns the earlier of a and b.
func Min(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}

// Max returns the later of a and b.
func Max(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}
