package importer

import (
	"github.com/alexanderramin/sprintbudget/internal/domain"
	"github.com/google/uuid"
)

// Convert turns a validated file into a scenario. Tasks without an ID get a
// fresh UUID; the second result counts them. A missing view month defaults
// to the project start.
func Convert(f *ScenarioFile) (domain.Scenario, int) {
	monthShown := f.Project.Start
	if f.View != nil && f.View.Month != "" {
		monthShown = f.View.Month
	}

	sc := domain.Scenario{
		Settings: domain.Settings{
			ProjectStart:     f.Project.Start,
			ProjectEnd:       f.Project.End,
			SprintStart:      f.Sprints.Start,
			SprintWeeks:      f.Sprints.Weeks,
			TotalBudget:      f.Budget.Total,
			MonthlyCap:       f.Budget.MonthlyCap,
			SprintCapDefault: f.Budget.SprintCapDefault,
			MonthShown:       monthShown,
		},
	}

	for _, c := range f.Budget.SprintCaps {
		sc.SprintCaps = append(sc.SprintCaps, domain.SprintCap{Nr: c.Nr, Cap: c.Cap})
	}
	domain.SortSprintCaps(sc.SprintCaps)

	assigned := 0
	for i, t := range f.Tasks {
		id := t.ID
		if id == "" {
			id = uuid.New().String()
			assigned++
		}
		sc.Tasks = append(sc.Tasks, domain.Task{
			ID:       id,
			Name:     t.Name,
			SprintNr: t.Sprint,
			Hours:    t.Hours,
			Position: i,
		})
	}
	return sc, assigned
}

// FromScenario is the inverse of Convert. Task order is preserved.
func FromScenario(sc domain.Scenario) *ScenarioFile {
	f := &ScenarioFile{
		Project: ProjectSection{Start: sc.Settings.ProjectStart, End: sc.Settings.ProjectEnd},
		Sprints: SprintSection{Start: sc.Settings.SprintStart, Weeks: sc.Settings.SprintWeeks},
		Budget: BudgetSection{
			Total:            sc.Settings.TotalBudget,
			MonthlyCap:       sc.Settings.MonthlyCap,
			SprintCapDefault: sc.Settings.SprintCapDefault,
		},
		Tasks: make([]TaskEntry, 0, len(sc.Tasks)),
	}
	if sc.Settings.MonthShown != "" {
		f.View = &ViewSection{Month: sc.Settings.MonthShown}
	}

	caps := append([]domain.SprintCap(nil), sc.SprintCaps...)
	domain.SortSprintCaps(caps)
	for _, c := range caps {
		f.Budget.SprintCaps = append(f.Budget.SprintCaps, SprintCapEntry{Nr: c.Nr, Cap: c.Cap})
	}
	for _, t := range sc.Tasks {
		f.Tasks = append(f.Tasks, TaskEntry{ID: t.ID, Name: t.Name, Sprint: t.SprintNr, Hours: t.Hours})
	}
	return f
}
