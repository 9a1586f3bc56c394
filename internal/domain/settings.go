package domain

import (
	"fmt"
	"math"
	"time"
)

const (
	MinSprintWeeks = 1
	MaxSprintWeeks = 12
)

// Settings is the parameter form: window, sprint cadence and ceilings.
// Dates stay in their YYYY-MM-DD boundary form; the planner parses them.
type Settings struct {
	ProjectStart     string
	ProjectEnd       string
	SprintStart      string
	SprintWeeks      int
	TotalBudget      float64
	MonthlyCap       float64
	SprintCapDefault float64
	MonthShown       string
	UpdatedAt        time.Time
}

// Validate applies the strict form-boundary rules.
func (s Settings) Validate() error {
	for _, f := range []struct {
		name, value string
	}{
		{"project start", s.ProjectStart},
		{"project end", s.ProjectEnd},
		{"sprint start", s.SprintStart},
	} {
		if _, err := time.Parse("2006-01-02", f.value); err != nil {
			return fmt.Errorf("%s: invalid date %q (expected YYYY-MM-DD)", f.name, f.value)
		}
	}
	if s.MonthShown != "" {
		if _, err := time.Parse("2006-01-02", s.MonthShown); err != nil {
			return fmt.Errorf("month shown: invalid date %q (expected YYYY-MM-DD)", s.MonthShown)
		}
	}
	if s.SprintWeeks < MinSprintWeeks || s.SprintWeeks > MaxSprintWeeks {
		return fmt.Errorf("sprint weeks must be between %d and %d, got %d", MinSprintWeeks, MaxSprintWeeks, s.SprintWeeks)
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"total budget", s.TotalBudget},
		{"monthly cap", s.MonthlyCap},
		{"sprint cap default", s.SprintCapDefault},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			return fmt.Errorf("%s must be a non-negative number, got %v", f.name, f.value)
		}
	}
	return nil
}

// SettingsPatch carries optional updates to Settings. Nil fields are kept.
type SettingsPatch struct {
	ProjectStart     *string
	ProjectEnd       *string
	SprintStart      *string
	SprintWeeks      *int
	TotalBudget      *float64
	MonthlyCap       *float64
	SprintCapDefault *float64
	MonthShown       *string
}

// Apply returns s with every non-nil patch field applied.
func (p SettingsPatch) Apply(s Settings) Settings {
	s.ProjectStart = StrFromPtrWithDefault(s.ProjectStart, p.ProjectStart)
	s.ProjectEnd = StrFromPtrWithDefault(s.ProjectEnd, p.ProjectEnd)
	s.SprintStart = StrFromPtrWithDefault(s.SprintStart, p.SprintStart)
	s.SprintWeeks = IntFromPtrWithDefault(s.SprintWeeks, p.SprintWeeks)
	s.TotalBudget = Float64FromPtrWithDefault(s.TotalBudget, p.TotalBudget)
	s.MonthlyCap = Float64FromPtrWithDefault(s.MonthlyCap, p.MonthlyCap)
	s.SprintCapDefault = Float64FromPtrWithDefault(s.SprintCapDefault, p.SprintCapDefault)
	s.MonthShown = StrFromPtrWithDefault(s.MonthShown, p.MonthShown)
	return s
}

// Empty reports whether the patch changes nothing.
func (p SettingsPatch) Empty() bool {
	return p.ProjectStart == nil && p.ProjectEnd == nil && p.SprintStart == nil &&
		p.SprintWeeks == nil && p.TotalBudget == nil && p.MonthlyCap == nil &&
		p.SprintCapDefault == nil && p.MonthShown == nil
}
