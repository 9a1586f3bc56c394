package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/sprintbudget/internal/app"
	"github.com/alexanderramin/sprintbudget/internal/dates"
	"github.com/alexanderramin/sprintbudget/internal/domain"
	"github.com/alexanderramin/sprintbudget/internal/projection"
	"github.com/alexanderramin/sprintbudget/internal/repository"
	"github.com/alexanderramin/sprintbudget/internal/scheduler"
	"github.com/alexanderramin/sprintbudget/internal/sprint"
)

type planService struct {
	settings repository.SettingsRepo
	caps     repository.SprintCapRepo
	tasks    repository.TaskRepo
	observer UseCaseObserver
}

func NewPlanService(
	settings repository.SettingsRepo,
	caps repository.SprintCapRepo,
	tasks repository.TaskRepo,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		settings: settings,
		caps:     caps,
		tasks:    tasks,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Compute(ctx context.Context, req app.PlanRequest) (resp *app.PlanResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		observe(ctx, s.observer, "plan.compute", startedAt, err, fields)
	}()

	if err := validatePlanRequest(req); err != nil {
		return nil, err
	}

	sc, err := loadScenario(ctx, s.settings, s.caps, s.tasks)
	if err != nil {
		return nil, err
	}

	resp = BuildPlan(sc, req)
	fields["task_count"] = resp.Summary.TaskCount
	fields["total_planned"] = resp.Summary.TotalPlanned
	if resp.Summary.Breach != nil {
		fields["breach"] = dates.ToISO(resp.Summary.Breach.Date)
		fields["breach_kind"] = string(resp.Summary.Breach.Kind)
	}
	return resp, nil
}

func validatePlanRequest(req app.PlanRequest) error {
	if req.Month != "" {
		if _, err := dates.ParseISOStrict(req.Month); err != nil {
			return &app.PlanError{Code: app.PlanErrInvalidRequest, Message: "month: " + err.Error()}
		}
	}
	if req.SelectedDay != "" {
		if _, err := dates.ParseISOStrict(req.SelectedDay); err != nil {
			return &app.PlanError{Code: app.PlanErrInvalidRequest, Message: "day: " + err.Error()}
		}
	}
	return nil
}

// BuildPlan runs the planner on sc and derives every view from the one
// result. It never touches the store.
func BuildPlan(sc domain.Scenario, req app.PlanRequest) *app.PlanResponse {
	res := scheduler.Compute(sc)

	monthISO := req.Month
	if monthISO == "" {
		monthISO = sc.Settings.MonthShown
	}
	month := res.Window.Start
	if monthISO != "" {
		month = dates.ParseISO(monthISO)
	}

	resp := &app.PlanResponse{
		GeneratedAt: time.Now().UTC(),
		Scenario:    sc,
		Result:      res,
		Summary:     summarize(sc, res),
		Month:       projection.MonthGrid(res, dates.StartOfMonth(month)),
		Timeline:    projection.Timeline(res),
		Bars:        projection.Bars(res),
		Warnings:    planWarnings(sc, res),
	}
	if req.SelectedDay != "" {
		day := projection.SelectDay(res, req.SelectedDay)
		resp.Day = &day
	}
	return resp
}

func summarize(sc domain.Scenario, res scheduler.Result) app.PlanSummary {
	burn := res.Ledger.Burn
	sum := app.PlanSummary{
		WindowStart:     res.Window.Start,
		WindowEnd:       res.Window.End,
		SprintWeeks:     res.SprintWeeks,
		SprintCount:     len(res.Sprints()),
		TaskCount:       len(sc.Tasks),
		TotalPlanned:    burn.TotalPlanned,
		TotalBudget:     res.Ceilings.TotalBudget,
		RemainingBudget: res.Ceilings.TotalBudget - burn.TotalPlanned,
		MonthBreak:      burn.MonthBreak,
		SprintBreak:     burn.SprintBreak,
		TotalBreak:      burn.TotalBreak,
	}
	for _, t := range sc.Tasks {
		if !t.Allocatable() {
			sum.SkippedTasks++
		}
	}
	if at, kind, ok := burn.FirstBreach(); ok {
		sum.Breach = &app.BreachInfo{Date: at, Kind: kind}
	}
	return sum
}

// planWarnings explains inputs that the planner accepted but could not use.
func planWarnings(sc domain.Scenario, res scheduler.Result) []string {
	var warnings []string

	if dates.ParseISO(sc.Settings.ProjectStart).After(dates.ParseISO(sc.Settings.ProjectEnd)) {
		warnings = append(warnings, "project start is after project end; the window was swapped")
	}

	for _, t := range sc.Tasks {
		if !t.Allocatable() {
			warnings = append(warnings, fmt.Sprintf("task %s skipped: it needs a name, positive hours and a sprint >= 1", taskLabel(t)))
			continue
		}
		r := sprint.RangeFor(res.Window.SprintStart, res.SprintDays, t.SprintNr)
		from := dates.Max(r.Start, res.Window.Start)
		to := dates.Min(r.End, res.Window.End)
		if len(dates.WorkdaysBetweenInclusive(from, to)) == 0 {
			warnings = append(warnings, fmt.Sprintf("task %s: sprint %d has no workdays inside the project window; its %.1fh are not planned",
				taskLabel(t), t.SprintNr, t.Hours))
		}
	}
	return warnings
}

func taskLabel(t domain.Task) string {
	if t.Name != "" {
		return fmt.Sprintf("%q", t.Name)
	}
	if t.ID != "" {
		return domain.DisplayID(t.ID)
	}
	return fmt.Sprintf("#%d", t.Position+1)
}
