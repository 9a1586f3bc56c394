package cli

import (
	"fmt"

	"github.com/alexanderramin/sprintbudget/internal/app"
	"github.com/alexanderramin/sprintbudget/internal/cli/formatter"
	"github.com/alexanderramin/sprintbudget/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(a),
		newTaskListCmd(a),
		newTaskUpdateCmd(a),
		newTaskRemoveCmd(a),
	)
	return cmd
}

func newTaskAddCmd(a *App) *cobra.Command {
	var name string
	var sprintNr int
	var hours float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task (prompts on a terminal when no flags are given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := app.TaskInput{Name: name, SprintNr: sprintNr, Hours: hours}

			if cmd.Flags().NFlag() == 0 && a.interactive() {
				values := taskFormValues{Sprint: "1"}
				if err := taskForm(&values).Run(); err != nil {
					return err
				}
				var err error
				if in, err = values.input(); err != nil {
					return err
				}
			}

			t, err := a.Tasks.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added task %s [%s] to sprint %d (%s)\n",
				t.Name, domain.DisplayID(t.ID), t.SprintNr, formatter.Hours(t.Hours))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().IntVar(&sprintNr, "sprint", 1, "Sprint number (1-based)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Effort in hours")
	return cmd
}

func newTaskListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks in entry order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := a.Tasks.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskList(tasks))
			return nil
		},
	}
}

func newTaskUpdateCmd(a *App) *cobra.Command {
	var name string
	var sprintNr int
	var hours float64

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change a task's name, sprint or hours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch app.TaskPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("sprint") {
				patch.SprintNr = &sprintNr
			}
			if cmd.Flags().Changed("hours") {
				patch.Hours = &hours
			}
			if patch.Empty() {
				return fmt.Errorf("nothing to update: pass --name, --sprint or --hours")
			}

			t, err := a.Tasks.Update(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s [%s]: sprint %d, %s\n",
				t.Name, domain.DisplayID(t.ID), t.SprintNr, formatter.Hours(t.Hours))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().IntVar(&sprintNr, "sprint", 0, "New sprint number")
	cmd.Flags().Float64Var(&hours, "hours", 0, "New effort in hours")
	return cmd
}

func newTaskRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.Tasks.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := a.Tasks.Delete(cmd.Context(), t.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed task %s [%s]\n", t.Name, domain.DisplayID(t.ID))
			return nil
		},
	}
}
