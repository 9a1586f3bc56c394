package domain

import (
	"fmt"
	"math"
	"sort"
)

// SprintCap overrides the default sprint ceiling for one sprint number.
type SprintCap struct {
	Nr  int
	Cap float64
}

// Validate checks a single override.
func (c SprintCap) Validate() error {
	if c.Nr < 1 {
		return fmt.Errorf("sprint cap: sprint number must be >= 1, got %d", c.Nr)
	}
	if math.IsNaN(c.Cap) || math.IsInf(c.Cap, 0) || c.Cap < 0 {
		return fmt.Errorf("sprint cap %d: cap must be a non-negative number, got %v", c.Nr, c.Cap)
	}
	return nil
}

// Ceilings are the budget limits one plan is checked against.
type Ceilings struct {
	TotalBudget      float64
	MonthlyCap       float64
	SprintCapDefault float64
	Overrides        map[int]float64
}

// NewCeilings builds the lookup structure from the override list. A later
// entry for the same sprint wins.
func NewCeilings(total, monthly, sprintDefault float64, caps []SprintCap) Ceilings {
	overrides := make(map[int]float64, len(caps))
	for _, c := range caps {
		overrides[c.Nr] = c.Cap
	}
	return Ceilings{
		TotalBudget:      total,
		MonthlyCap:       monthly,
		SprintCapDefault: sprintDefault,
		Overrides:        overrides,
	}
}

// CapForSprint returns the override for nr, or the default.
func (c Ceilings) CapForSprint(nr int) float64 {
	if v, ok := c.Overrides[nr]; ok {
		return v
	}
	return c.SprintCapDefault
}

// SortSprintCaps orders overrides by sprint number.
func SortSprintCaps(caps []SprintCap) {
	sort.Slice(caps, func(i, j int) bool { return caps[i].Nr < caps[j].Nr })
}

// NextSprintCapNr returns the number following the highest override, or 1.
func NextSprintCapNr(caps []SprintCap) int {
	next := 1
	for _, c := range caps {
		if c.Nr >= next {
			next = c.Nr + 1
		}
	}
	return next
}
