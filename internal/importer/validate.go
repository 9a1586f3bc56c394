package importer

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/sprintbudget/internal/domain"
)

const dateLayout = "2006-01-02"

// Validate returns every problem found in f, or nil.
func Validate(f *ScenarioFile) []error {
	var errs []error
	errs = append(errs, validateDates(f)...)
	errs = append(errs, validateBudget(&f.Budget)...)
	errs = append(errs, validateTasks(f.Tasks)...)
	return errs
}

// ValidateErr joins the result of Validate into one error.
func ValidateErr(f *ScenarioFile) error {
	return errors.Join(Validate(f)...)
}

func validateDates(f *ScenarioFile) []error {
	var errs []error
	check := func(field, value string) {
		if value == "" {
			errs = append(errs, fmt.Errorf("%s is required", field))
			return
		}
		if _, err := time.Parse(dateLayout, value); err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, value))
		}
	}
	check("project.start", f.Project.Start)
	check("project.end", f.Project.End)
	check("sprints.start", f.Sprints.Start)
	if f.View != nil && f.View.Month != "" {
		check("view.month", f.View.Month)
	}

	if f.Sprints.Weeks < domain.MinSprintWeeks || f.Sprints.Weeks > domain.MaxSprintWeeks {
		errs = append(errs, fmt.Errorf("sprints.weeks must be between %d and %d, got %d",
			domain.MinSprintWeeks, domain.MaxSprintWeeks, f.Sprints.Weeks))
	}
	return errs
}

func validateBudget(b *BudgetSection) []error {
	var errs []error
	for _, f := range []struct {
		field string
		value float64
	}{
		{"budget.total", b.Total},
		{"budget.monthly_cap", b.MonthlyCap},
		{"budget.sprint_cap_default", b.SprintCapDefault},
	} {
		if !nonNegative(f.value) {
			errs = append(errs, fmt.Errorf("%s must be a non-negative number, got %v", f.field, f.value))
		}
	}

	seen := make(map[int]bool)
	for i, c := range b.SprintCaps {
		if c.Nr < 1 {
			errs = append(errs, fmt.Errorf("budget.sprint_caps[%d].nr must be >= 1, got %d", i, c.Nr))
		} else if seen[c.Nr] {
			errs = append(errs, fmt.Errorf("budget.sprint_caps[%d]: duplicate sprint %d", i, c.Nr))
		}
		seen[c.Nr] = true
		if !nonNegative(c.Cap) {
			errs = append(errs, fmt.Errorf("budget.sprint_caps[%d].cap must be a non-negative number, got %v", i, c.Cap))
		}
	}
	return errs
}

func validateTasks(tasks []TaskEntry) []error {
	var errs []error
	ids := make(map[string]bool)
	for i, t := range tasks {
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("tasks[%d].name is required", i))
		}
		if t.Sprint < 1 {
			errs = append(errs, fmt.Errorf("tasks[%d].sprint must be >= 1, got %d", i, t.Sprint))
		}
		if math.IsNaN(t.Hours) || math.IsInf(t.Hours, 0) || t.Hours <= 0 {
			errs = append(errs, fmt.Errorf("tasks[%d].hours must be a positive number, got %v", i, t.Hours))
		}
		if t.ID != "" {
			if ids[t.ID] {
				errs = append(errs, fmt.Errorf("tasks[%d]: duplicate id %q", i, t.ID))
			}
			ids[t.ID] = true
		}
	}
	return errs
}

func nonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
