package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/sprintbudget/internal/app"
	"github.com/alexanderramin/sprintbudget/internal/cli/formatter"
	"github.com/alexanderramin/sprintbudget/internal/dates"
	"github.com/alexanderramin/sprintbudget/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// huhTheme matches the formatter palette.
func huhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// taskFormValues holds the raw text of the task form.
type taskFormValues struct {
	Name   string
	Sprint string
	Hours  string
}

func (v taskFormValues) input() (app.TaskInput, error) {
	sprintNr, err := strconv.Atoi(strings.TrimSpace(v.Sprint))
	if err != nil {
		return app.TaskInput{}, fmt.Errorf("sprint: enter a whole number")
	}
	hours, err := strconv.ParseFloat(strings.TrimSpace(v.Hours), 64)
	if err != nil {
		return app.TaskInput{}, fmt.Errorf("hours: enter a number")
	}
	return app.TaskInput{Name: strings.TrimSpace(v.Name), SprintNr: sprintNr, Hours: hours}, nil
}

func taskForm(v *taskFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Task name").Value(&v.Name).Validate(validateRequired),
			huh.NewInput().Title("Sprint").Placeholder("1").Value(&v.Sprint).Validate(validatePositiveInt),
			huh.NewInput().Title("Hours").Placeholder("8").Value(&v.Hours).Validate(validatePositiveFloat),
		),
	).WithTheme(huhTheme()).WithShowHelp(false)
}

// settingsFormValues holds the raw text of the parameter form.
type settingsFormValues struct {
	ProjectStart     string
	ProjectEnd       string
	SprintStart      string
	SprintWeeks      string
	TotalBudget      string
	MonthlyCap       string
	SprintCapDefault string
}

func newSettingsFormValues(s *domain.Settings) settingsFormValues {
	return settingsFormValues{
		ProjectStart:     s.ProjectStart,
		ProjectEnd:       s.ProjectEnd,
		SprintStart:      s.SprintStart,
		SprintWeeks:      strconv.Itoa(s.SprintWeeks),
		TotalBudget:      formatFloat(s.TotalBudget),
		MonthlyCap:       formatFloat(s.MonthlyCap),
		SprintCapDefault: formatFloat(s.SprintCapDefault),
	}
}

// patch converts the form into a full settings patch.
func (v settingsFormValues) patch() (domain.SettingsPatch, error) {
	weeks, err := strconv.Atoi(strings.TrimSpace(v.SprintWeeks))
	if err != nil {
		return domain.SettingsPatch{}, fmt.Errorf("sprint weeks: enter a whole number")
	}
	total, err := strconv.ParseFloat(strings.TrimSpace(v.TotalBudget), 64)
	if err != nil {
		return domain.SettingsPatch{}, fmt.Errorf("total budget: enter a number")
	}
	monthly, err := strconv.ParseFloat(strings.TrimSpace(v.MonthlyCap), 64)
	if err != nil {
		return domain.SettingsPatch{}, fmt.Errorf("monthly cap: enter a number")
	}
	sprintCap, err := strconv.ParseFloat(strings.TrimSpace(v.SprintCapDefault), 64)
	if err != nil {
		return domain.SettingsPatch{}, fmt.Errorf("sprint cap default: enter a number")
	}
	start, end, sprintStart := strings.TrimSpace(v.ProjectStart), strings.TrimSpace(v.ProjectEnd), strings.TrimSpace(v.SprintStart)
	return domain.SettingsPatch{
		ProjectStart:     &start,
		ProjectEnd:       &end,
		SprintStart:      &sprintStart,
		SprintWeeks:      &weeks,
		TotalBudget:      &total,
		MonthlyCap:       &monthly,
		SprintCapDefault: &sprintCap,
	}, nil
}

func settingsForm(v *settingsFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Project start").Value(&v.ProjectStart).Validate(validateDate),
			huh.NewInput().Title("Project end").Value(&v.ProjectEnd).Validate(validateDate),
			huh.NewInput().Title("Sprint 1 starts").Value(&v.SprintStart).Validate(validateDate),
			huh.NewInput().Title("Sprint length (weeks)").Value(&v.SprintWeeks).Validate(validateSprintWeeks),
		).Title("Window"),
		huh.NewGroup(
			huh.NewInput().Title("Total budget (h)").Value(&v.TotalBudget).Validate(validateNonNegativeFloat),
			huh.NewInput().Title("Monthly cap (h)").Value(&v.MonthlyCap).Validate(validateNonNegativeFloat),
			huh.NewInput().Title("Default sprint cap (h)").Value(&v.SprintCapDefault).Validate(validateNonNegativeFloat),
		).Title("Ceilings"),
	).WithTheme(huhTheme()).WithShowHelp(false)
}

func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().Title(title).Affirmative("Yes").Negative("No").Value(result),
		),
	).WithTheme(huhTheme()).WithShowHelp(false)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := dates.ParseISOStrict(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a whole number of at least 1")
	}
	return nil
}

func validateSprintWeeks(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < domain.MinSprintWeeks || v > domain.MaxSprintWeeks {
		return fmt.Errorf("enter %d to %d", domain.MinSprintWeeks, domain.MaxSprintWeeks)
	}
	return nil
}

func validatePositiveFloat(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validateNonNegativeFloat(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a number of 0 or more")
	}
	return nil
}
