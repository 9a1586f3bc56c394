package service

import "github.com/alexanderramin/sprintbudget/internal/app"

type PlanService interface {
	app.PlanUseCase
}

type TaskService interface {
	app.TaskUseCase
}

type SettingsService interface {
	app.SettingsUseCase
}

// ScenarioService replaces or snapshots the whole stored scenario.
type ScenarioService interface {
	app.ScenarioUseCase
}
