package scheduler

import "github.com/alexanderramin/sprintbudget/internal/domain"

// Remaining is the budget left under each ceiling at the end of one day.
// Sprint is +Inf on days outside every sprint.
type Remaining struct {
	Month  float64
	Sprint float64
	Total  float64
}

// StatusFor is bad when any remainder is negative. Exactly zero is ok.
func StatusFor(rem Remaining) domain.Status {
	if rem.Month < 0 || rem.Total < 0 || rem.Sprint < 0 {
		return domain.StatusBad
	}
	return domain.StatusOK
}

// StatusReasonFor names the ceiling to blame, checking month, then total,
// then sprint.
func StatusReasonFor(rem Remaining, hasSprint bool) domain.StatusReason {
	switch {
	case rem.Month < 0:
		return domain.ReasonMonth
	case rem.Total < 0:
		return domain.ReasonTotal
	case hasSprint && rem.Sprint < 0:
		return domain.ReasonSprint
	default:
		return domain.ReasonOK
	}
}

func StatusLabelFor(reason domain.StatusReason) string {
	switch reason {
	case domain.ReasonMonth:
		return "Warning: month cap"
	case domain.ReasonTotal:
		return "Warning: total budget"
	case domain.ReasonSprint:
		return "Warning: sprint cap"
	default:
		return "OK"
	}
}
