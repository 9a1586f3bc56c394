package domain

import (
	"fmt"
	"math"
	"time"
)

// Task is one unit of planned effort, assigned to a sprint by number.
type Task struct {
	ID       string
	Name     string
	SprintNr int
	Hours    float64

	// Position orders tasks the way the user entered them.
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Allocatable reports whether the planner distributes this task's hours.
// Tasks that fail this check are skipped silently, never rejected.
func (t Task) Allocatable() bool {
	if t.Name == "" {
		return false
	}
	if math.IsNaN(t.Hours) || math.IsInf(t.Hours, 0) || t.Hours <= 0 {
		return false
	}
	return t.SprintNr >= 1
}

// Validate is the strict check applied where tasks enter the system.
func (t Task) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("task name is required")
	}
	if math.IsNaN(t.Hours) || math.IsInf(t.Hours, 0) || t.Hours <= 0 {
		return fmt.Errorf("task %q: hours must be a positive number, got %v", t.Name, t.Hours)
	}
	if t.SprintNr < 1 {
		return fmt.Errorf("task %q: sprint must be >= 1, got %d", t.Name, t.SprintNr)
	}
	return nil
}

// DisplayID returns the first 8 characters of an ID.
func DisplayID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
