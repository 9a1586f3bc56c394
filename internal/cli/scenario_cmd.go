package cli

import (
	"fmt"

	"github.com/alexanderramin/sprintbudget/internal/app"
	"github.com/alexanderramin/sprintbudget/internal/cli/formatter"
	"github.com/alexanderramin/sprintbudget/internal/domain"
	"github.com/alexanderramin/sprintbudget/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newScenarioCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Import, export, reset or preview a whole scenario",
	}

	cmd.AddCommand(
		newScenarioImportCmd(a),
		newScenarioExportCmd(a),
		newScenarioResetCmd(a),
		newScenarioPreviewCmd(a),
	)
	return cmd
}

func newScenarioImportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the stored scenario with a YAML or JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.Scenarios.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d tasks and %d sprint caps from %s\n", res.TaskCount, res.SprintCapCount, args[0])
			if res.AssignedIDs > 0 {
				fmt.Fprintf(out, "%s\n", formatter.Dim(fmt.Sprintf("%d tasks had no id; new ids were assigned", res.AssignedIDs)))
			}
			return nil
		},
	}
}

func newScenarioExportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write the stored scenario to a file (.json for JSON, otherwise YAML)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Scenarios.Export(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported scenario to %s\n", args[0])
			return nil
		},
	}
}

func newScenarioResetCmd(a *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace the stored scenario with the demo scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				if !a.interactive() {
					return fmt.Errorf("reset discards every task and cap; pass --yes to confirm")
				}
				if err := confirmForm("Discard all tasks and caps and load the demo scenario?", &yes).Run(); err != nil {
					return err
				}
				if !yes {
					fmt.Fprintln(cmd.OutOrStdout(), "Reset cancelled.")
					return nil
				}
			}

			if err := a.Scenarios.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Loaded the demo scenario.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation")
	return cmd
}

func newScenarioPreviewCmd(a *App) *cobra.Command {
	mode := domain.ViewMode(a.Config.Display.ViewMode)

	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Plan a scenario file without storing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := service.PlanFile(args[0], app.NewPlanRequest())
			if err != nil {
				return err
			}
			printPlan(cmd, a, resp, mode)
			return nil
		},
	}

	addViewFlag(cmd.Flags(), &mode)
	return cmd
}

// viewModeValue is a --view flag restricted to the known view modes.
type viewModeValue struct{ mode *domain.ViewMode }

var _ pflag.Value = viewModeValue{}

func (v viewModeValue) String() string {
	if v.mode == nil {
		return ""
	}
	return string(*v.mode)
}

func (v viewModeValue) Set(s string) error {
	if !domain.ValidViewModes[s] {
		return fmt.Errorf("expected month, timeline or bars")
	}
	*v.mode = domain.ViewMode(s)
	return nil
}

func (v viewModeValue) Type() string { return "view" }

func addViewFlag(fs *pflag.FlagSet, mode *domain.ViewMode) {
	fs.Var(viewModeValue{mode: mode}, "view", "View to print after the summary: month, timeline or bars")
}

func printPlan(cmd *cobra.Command, a *App, resp *app.PlanResponse, mode domain.ViewMode) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, formatter.FormatSummary(resp))
	fmt.Fprintln(out)
	fmt.Fprint(out, renderView(resp, mode, cardInfoFrom(a.Config.Display.CardInfo)))
}
