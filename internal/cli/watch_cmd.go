package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexanderramin/sprintbudget/internal/app"
	"github.com/alexanderramin/sprintbudget/internal/cli/formatter"
	"github.com/alexanderramin/sprintbudget/internal/domain"
	"github.com/alexanderramin/sprintbudget/internal/service"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *App) *cobra.Command {
	var (
		month    string
		debounce time.Duration
	)
	mode := domain.ViewMode(a.Config.Display.ViewMode)

	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Re-plan a scenario file every time it is saved",
		Long: `Watch plans FILE once, then again after every save, printing the
summary and the chosen view each time. The stored scenario is not touched.
Stop with Ctrl+C.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.NewPlanRequest()
			if month != "" {
				m, err := parseMonthFlag(month)
				if err != nil {
					return err
				}
				req.Month = m
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			w := service.NewWatcher(args[0],
				func(resp *app.PlanResponse) {
					fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("── %s  %s ──", args[0], resp.GeneratedAt.Local().Format("15:04:05"))))
					printPlan(cmd, a, resp, mode)
					fmt.Fprintln(out)
				},
				service.WithDebounce(debounce),
				service.WithPlanRequest(req),
				service.WithWatchLogger(a.logger()),
				service.WithErrorHandler(func(err error) {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				}),
			)
			return w.Run(ctx)
		},
	}

	addViewFlag(cmd.Flags(), &mode)
	cmd.Flags().StringVar(&month, "month", "", "Calendar month (YYYY-MM); defaults to the file's month")
	cmd.Flags().DurationVar(&debounce, "debounce", service.DefaultWatchDebounce, "Quiet period before a reload")
	return cmd
}
