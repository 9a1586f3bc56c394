package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/sprintbudget/internal/cli/formatter"
	"github.com/alexanderramin/sprintbudget/internal/domain"
	"github.com/spf13/cobra"
)

func newCapCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cap",
		Short: "Manage per-sprint cap overrides",
	}

	cmd.AddCommand(
		newCapListCmd(a),
		newCapSetCmd(a),
		newCapAddNextCmd(a),
		newCapRemoveCmd(a),
	)
	return cmd
}

func newCapListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List sprint cap overrides",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			caps, err := a.Settings.ListSprintCaps(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSprintCaps(caps))
			return nil
		},
	}
}

func newCapSetCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set SPRINT HOURS",
		Short: "Override the cap of one sprint",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nr, err := parseSprintArg(args[0])
			if err != nil {
				return err
			}
			capH, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid cap %q: %w", args[1], err)
			}

			c := domain.SprintCap{Nr: nr, Cap: capH}
			if err := a.Settings.SetSprintCap(cmd.Context(), c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sprint %d cap set to %s\n", c.Nr, formatter.Hours(c.Cap))
			return nil
		},
	}
}

func newCapAddNextCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add-next",
		Short: "Add an override after the highest one, using the default cap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.Settings.AddNextSprintCap(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added sprint %d cap %s\n", c.Nr, formatter.Hours(c.Cap))
			return nil
		},
	}
}

func newCapRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove SPRINT",
		Aliases: []string{"rm"},
		Short:   "Drop an override so the sprint uses the default cap",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nr, err := parseSprintArg(args[0])
			if err != nil {
				return err
			}
			if err := a.Settings.RemoveSprintCap(cmd.Context(), nr); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed the cap override of sprint %d\n", nr)
			return nil
		},
	}
}

func parseSprintArg(s string) (int, error) {
	nr, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid sprint number %q", s)
	}
	return nr, nil
}
