package domain

// Scenario is the complete input of one plan computation.
type Scenario struct {
	Settings   Settings
	SprintCaps []SprintCap
	Tasks      []Task
}

// Ceilings derives the budget lookup from the scenario.
func (s Scenario) Ceilings() Ceilings {
	return NewCeilings(s.Settings.TotalBudget, s.Settings.MonthlyCap, s.Settings.SprintCapDefault, s.SprintCaps)
}

// DefaultSettings is the parameter set a fresh store starts with.
func DefaultSettings() Settings {
	return Settings{
		ProjectStart:     "2026-03-01",
		ProjectEnd:       "2026-05-31",
		SprintStart:      "2026-03-01",
		SprintWeeks:      3,
		TotalBudget:      300,
		MonthlyCap:       90,
		SprintCapDefault: 80,
		MonthShown:       "2026-03-01",
	}
}

// DefaultScenario is the demo plan: three 80h tasks over the first three
// sprints of a quarter, with explicit caps for sprints 1-4.
func DefaultScenario() Scenario {
	return Scenario{
		Settings: DefaultSettings(),
		SprintCaps: []SprintCap{
			{Nr: 1, Cap: 80},
			{Nr: 2, Cap: 80},
			{Nr: 3, Cap: 80},
			{Nr: 4, Cap: 80},
		},
		Tasks: []Task{
			{Name: "Task A", SprintNr: 1, Hours: 80, Position: 0},
			{Name: "Task B", SprintNr: 2, Hours: 80, Position: 1},
			{Name: "Task C", SprintNr: 3, Hours: 80, Position: 2},
		},
	}
}
