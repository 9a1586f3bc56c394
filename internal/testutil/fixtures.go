package testutil

import (
	"time"

	"github.com/alexanderramin/sprintbudget/internal/domain"
	"github.com/google/uuid"
)

type TaskOption func(*domain.Task)

func WithSprint(nr int) TaskOption {
	return func(t *domain.Task) {
		t.SprintNr = nr
	}
}

func WithHours(h float64) TaskOption {
	return func(t *domain.Task) {
		t.Hours = h
	}
}

func WithPosition(p int) TaskOption {
	return func(t *domain.Task) {
		t.Position = p
	}
}

// NewTestTask returns an 8h task in sprint 1.
func NewTestTask(name string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC().Truncate(time.Second)
	t := &domain.Task{
		ID:        uuid.New().String(),
		Name:      name,
		SprintNr:  1,
		Hours:     8,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

type SettingsOption func(*domain.Settings)

func WithWindow(start, end string) SettingsOption {
	return func(s *domain.Settings) {
		s.ProjectStart = start
		s.ProjectEnd = end
	}
}

func WithSprintCadence(start string, weeks int) SettingsOption {
	return func(s *domain.Settings) {
		s.SprintStart = start
		s.SprintWeeks = weeks
	}
}

func WithBudgets(total, monthly, sprintDefault float64) SettingsOption {
	return func(s *domain.Settings) {
		s.TotalBudget = total
		s.MonthlyCap = monthly
		s.SprintCapDefault = sprintDefault
	}
}

// NewTestSettings starts from the default parameter set.
func NewTestSettings(opts ...SettingsOption) *domain.Settings {
	s := domain.DefaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return &s
}
