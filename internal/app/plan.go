package app

import (
	"time"

	"github.com/alexanderramin/sprintbudget/internal/domain"
	"github.com/alexanderramin/sprintbudget/internal/projection"
	"github.com/alexanderramin/sprintbudget/internal/scheduler"
)

type PlanRequest struct {
	// Month selects the calendar month (YYYY-MM-DD, any day). Empty uses the
	// stored month shown.
	Month string
	// SelectedDay adds a drill-down for that date when set.
	SelectedDay string
}

func NewPlanRequest() PlanRequest {
	return PlanRequest{}
}

// BreachInfo is the first day a ceiling was exceeded.
type BreachInfo struct {
	Date time.Time
	Kind domain.CeilingKind
}

type PlanSummary struct {
	WindowStart     time.Time
	WindowEnd       time.Time
	SprintWeeks     int
	SprintCount     int
	TaskCount       int
	SkippedTasks    int
	TotalPlanned    float64
	TotalBudget     float64
	RemainingBudget float64
	Breach          *BreachInfo
	MonthBreak      *time.Time
	SprintBreak     *time.Time
	TotalBreak      *time.Time
}

type PlanResponse struct {
	GeneratedAt time.Time
	Scenario    domain.Scenario
	Result      scheduler.Result
	Summary     PlanSummary
	Month       projection.MonthView
	Timeline    []projection.Week
	Bars        projection.BarData
	Day         *projection.DayInfo
	Warnings    []string
}

type PlanErrorCode string

const (
	PlanErrInvalidSettings  PlanErrorCode = "INVALID_SETTINGS"
	PlanErrInvalidTask      PlanErrorCode = "INVALID_TASK"
	PlanErrInvalidSprintCap PlanErrorCode = "INVALID_SPRINT_CAP"
	PlanErrInvalidScenario  PlanErrorCode = "INVALID_SCENARIO"
	PlanErrInvalidRequest   PlanErrorCode = "INVALID_REQUEST"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
