package cli

import (
	"fmt"

	"github.com/alexanderramin/sprintbudget/internal/cli/formatter"
	"github.com/alexanderramin/sprintbudget/internal/domain"
	"github.com/spf13/cobra"
)

func newSettingsCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the project window, cadence and ceilings",
	}

	cmd.AddCommand(
		newSettingsShowCmd(a),
		newSettingsSetCmd(a),
		newSettingsEditCmd(a),
	)
	return cmd
}

func newSettingsShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printSettings(cmd, a)
		},
	}
}

func printSettings(cmd *cobra.Command, a *App) error {
	s, err := a.Settings.Get(cmd.Context())
	if err != nil {
		return err
	}
	caps, err := a.Settings.ListSprintCaps(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSettings(s, caps))
	return nil
}

func newSettingsSetCmd(a *App) *cobra.Command {
	var (
		projectStart, projectEnd, sprintStart, month string
		weeks                                        int
		total, monthly, sprintCap                    float64
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change individual settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.SettingsPatch
			flags := cmd.Flags()
			if flags.Changed("project-start") {
				patch.ProjectStart = &projectStart
			}
			if flags.Changed("project-end") {
				patch.ProjectEnd = &projectEnd
			}
			if flags.Changed("sprint-start") {
				patch.SprintStart = &sprintStart
			}
			if flags.Changed("sprint-weeks") {
				patch.SprintWeeks = &weeks
			}
			if flags.Changed("total-budget") {
				patch.TotalBudget = &total
			}
			if flags.Changed("monthly-cap") {
				patch.MonthlyCap = &monthly
			}
			if flags.Changed("sprint-cap") {
				patch.SprintCapDefault = &sprintCap
			}
			if flags.Changed("month") {
				m, err := parseMonthFlag(month)
				if err != nil {
					return err
				}
				patch.MonthShown = &m
			}
			if patch.Empty() {
				return fmt.Errorf("nothing to change; see --help for the settings flags")
			}

			if _, err := a.Settings.Update(cmd.Context(), patch); err != nil {
				return err
			}
			return printSettings(cmd, a)
		},
	}

	cmd.Flags().StringVar(&projectStart, "project-start", "", "First day of the project (YYYY-MM-DD)")
	cmd.Flags().StringVar(&projectEnd, "project-end", "", "Last day of the project (YYYY-MM-DD)")
	cmd.Flags().StringVar(&sprintStart, "sprint-start", "", "First day of sprint 1 (YYYY-MM-DD)")
	cmd.Flags().IntVar(&weeks, "sprint-weeks", 0, "Sprint length in weeks (1-12)")
	cmd.Flags().Float64Var(&total, "total-budget", 0, "Total budget in hours")
	cmd.Flags().Float64Var(&monthly, "monthly-cap", 0, "Monthly cap in hours")
	cmd.Flags().Float64Var(&sprintCap, "sprint-cap", 0, "Default sprint cap in hours")
	cmd.Flags().StringVar(&month, "month", "", "Month the calendar opens on (YYYY-MM)")
	return cmd
}

func newSettingsEditCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit all settings in a form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.interactive() {
				return fmt.Errorf("settings edit needs a terminal; use settings set instead")
			}
			current, err := a.Settings.Get(cmd.Context())
			if err != nil {
				return err
			}

			values := newSettingsFormValues(current)
			if err := settingsForm(&values).Run(); err != nil {
				return err
			}
			patch, err := values.patch()
			if err != nil {
				return err
			}
			if _, err := a.Settings.Update(cmd.Context(), patch); err != nil {
				return err
			}
			return printSettings(cmd, a)
		},
	}
}
