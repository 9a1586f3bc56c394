package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/sprintbudget/internal/app"
	"github.com/alexanderramin/sprintbudget/internal/cli/formatter"
	"github.com/alexanderramin/sprintbudget/internal/config"
	"github.com/alexanderramin/sprintbudget/internal/dates"
	"github.com/alexanderramin/sprintbudget/internal/domain"
	"github.com/alexanderramin/sprintbudget/internal/scheduler"
	"github.com/spf13/cobra"
)

func computePlan(cmd *cobra.Command, a *App, req app.PlanRequest) (*app.PlanResponse, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return a.Plan.Compute(ctx, req)
}

func runOverview(cmd *cobra.Command, a *App) error {
	resp, err := computePlan(cmd, a, app.NewPlanRequest())
	if err != nil {
		return err
	}
	printPlan(cmd, a, resp, domain.ViewMode(a.Config.Display.ViewMode))
	return nil
}

// renderView renders one of the three dashboard projections.
func renderView(resp *app.PlanResponse, mode domain.ViewMode, info formatter.CardInfo) string {
	switch mode {
	case domain.ViewTimeline:
		return formatter.FormatTimeline(resp.Timeline)
	case domain.ViewBars:
		return formatter.FormatBars(resp.Bars)
	default:
		return formatter.FormatCalendar(resp.Month, info)
	}
}

func cardInfoFrom(c config.CardInfo) formatter.CardInfo {
	return formatter.CardInfo{
		PlannedToday: c.PlannedToday,
		RestSprint:   c.RestSprint,
		RestMonth:    c.RestMonth,
		RestTotal:    c.RestTotal,
		SprintAvg:    c.SprintAvg,
	}
}

// parseMonthFlag accepts YYYY-MM or any YYYY-MM-DD inside the month.
func parseMonthFlag(s string) (string, error) {
	if len(s) == len("2006-01") {
		s += "-01"
	}
	d, err := dates.ParseISOStrict(s)
	if err != nil {
		return "", fmt.Errorf("invalid month %q (expected YYYY-MM)", strings.TrimSuffix(s, "-01"))
	}
	return dates.ToISO(dates.StartOfMonth(d)), nil
}

func newSummaryCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show totals and the first breach of each ceiling",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := computePlan(cmd, a, app.NewPlanRequest())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSummary(resp))
			return nil
		},
	}
}

func newLedgerCmd(a *App) *cobra.Command {
	var from, to string
	var workdaysOnly, breachesOnly bool

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Show the day-by-day remaining budgets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var lo, hi time.Time
			if from != "" {
				d, err := dates.ParseISOStrict(from)
				if err != nil {
					return fmt.Errorf("--from: %w", err)
				}
				lo = d
			}
			if to != "" {
				d, err := dates.ParseISOStrict(to)
				if err != nil {
					return fmt.Errorf("--to: %w", err)
				}
				hi = d
			}

			resp, err := computePlan(cmd, a, app.NewPlanRequest())
			if err != nil {
				return err
			}
			rows := filterRows(resp.Result.Ledger.Rows, lo, hi, workdaysOnly, breachesOnly)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLedger(rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First day to show (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Last day to show (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&workdaysOnly, "workdays", false, "Hide weekends")
	cmd.Flags().BoolVar(&breachesOnly, "breaches", false, "Only show days over a ceiling")
	return cmd
}

// filterRows keeps rows inside [lo, hi]; a zero bound is open.
func filterRows(rows []scheduler.DailyRow, lo, hi time.Time, workdaysOnly, breachesOnly bool) []scheduler.DailyRow {
	var out []scheduler.DailyRow
	for _, r := range rows {
		if !lo.IsZero() && r.Date.Before(lo) {
			continue
		}
		if !hi.IsZero() && r.Date.After(hi) {
			continue
		}
		if workdaysOnly && dates.IsWeekend(r.Date) {
			continue
		}
		if breachesOnly && r.Status() == domain.StatusOK {
			continue
		}
		out = append(out, r)
	}
	return out
}

func newCalendarCmd(a *App) *cobra.Command {
	var month string
	var info []string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show one month as a calendar grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.NewPlanRequest()
			if month != "" {
				m, err := parseMonthFlag(month)
				if err != nil {
					return err
				}
				req.Month = m
			}

			cards := cardInfoFrom(a.Config.Display.CardInfo)
			if cmd.Flags().Changed("info") {
				var err error
				if cards, err = parseCardInfo(info); err != nil {
					return err
				}
			}

			resp, err := computePlan(cmd, a, req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCalendar(resp.Month, cards))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to show (YYYY-MM); defaults to the stored month")
	cmd.Flags().StringSliceVar(&info, "info", nil, "Cell figures: planned,sprint,month,total,avg (empty for none)")
	return cmd
}

func parseCardInfo(names []string) (formatter.CardInfo, error) {
	var c formatter.CardInfo
	for _, n := range names {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "":
		case "planned":
			c.PlannedToday = true
		case "sprint":
			c.RestSprint = true
		case "month":
			c.RestMonth = true
		case "total":
			c.RestTotal = true
		case "avg":
			c.SprintAvg = true
		case "all":
			c = formatter.AllCardInfo()
		default:
			return formatter.CardInfo{}, fmt.Errorf("unknown --info value %q", n)
		}
	}
	return c, nil
}

func newTimelineCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "timeline",
		Short: "Show the whole window week by week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := computePlan(cmd, a, app.NewPlanRequest())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTimeline(resp.Timeline))
			return nil
		},
	}
}

func newBarsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "bars",
		Short: "Show planned effort against each ceiling",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := computePlan(cmd, a, app.NewPlanRequest())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBars(resp.Bars))
			return nil
		},
	}
}

func newSprintsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sprints",
		Short: "List the sprints that touch the project window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := computePlan(cmd, a, app.NewPlanRequest())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSprints(resp.Result, resp.Bars))
			return nil
		},
	}
}

func newDayCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "day DATE",
		Short: "Show the budget position on one day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := computePlan(cmd, a, app.PlanRequest{SelectedDay: args[0]})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDay(*resp.Day))
			return nil
		},
	}
}
