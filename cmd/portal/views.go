package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/cmlabs-hris/attendance-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-portal/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-portal/internal/domain/report"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/aggregate"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/civil"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/portalclient"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/validator"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newEmployeesCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "employees",
		Short: "List employees shown in attendance views",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				list []employee.EmployeeResponse
				err  error
			)
			if all {
				list, err = a.client.ListAllEmployees(cmd.Context())
			} else {
				list, err = listActiveEmployees(cmd.Context(), a.client)
			}
			if err != nil {
				return err
			}
			return renderEmployees(cmd.OutOrStdout(), list)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Include employees excluded from attendance")
	return cmd
}

func newDayCmd(a *app) *cobra.Command {
	var (
		date   string
		server bool
		watch  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show every active employee for one date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := report.DayViewRequest{Date: date}
			if err := req.Validate(); err != nil {
				return err
			}

			fetch := func(ctx context.Context) (report.DayViewResponse, error) {
				if server {
					return a.client.DayView(ctx, date)
				}
				d := civil.DateOf(a.now())
				if !validator.IsEmpty(date) {
					d, _ = civil.ParseDate(date)
				}
				return localDayView(ctx, a.client, d)
			}

			if watch <= 0 {
				resp, err := fetch(cmd.Context())
				if err != nil {
					return err
				}
				return renderDayView(cmd.OutOrStdout(), resp)
			}
			return watchDayView(cmd, watch, fetch)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date as YYYY-MM-DD (default today)")
	cmd.Flags().BoolVar(&server, "server", false, "Use the server-side day view instead of aggregating locally")
	cmd.Flags().DurationVar(&watch, "watch", 0, "Refresh at this interval until interrupted")
	return cmd
}

// watchDayView refreshes on a ticker. A refresh that is overtaken by the next one is dropped.
func watchDayView(cmd *cobra.Command, every time.Duration, fetch func(context.Context) (report.DayViewResponse, error)) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var latest portalclient.Latest[report.DayViewResponse]
	applied := make(chan struct{}, 1)
	refresh := func() {
		go func() {
			if _, err := latest.Fetch(ctx, fetch); err != nil {
				slog.Debug("day view refresh not applied", "error", err)
				return
			}
			select {
			case applied <- struct{}{}:
			default:
			}
		}()
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()
	refresh()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			refresh()
		case <-applied:
			resp, _ := latest.Get()
			if err := renderDayView(cmd.OutOrStdout(), resp); err != nil {
				return err
			}
		}
	}
}

func newEmployeeCmd(a *app) *cobra.Command {
	var (
		req    report.EmployeeViewRequest
		server bool
	)
	cmd := &cobra.Command{
		Use:   "employee <id>",
		Short: "Show one employee over a month, preset or date range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid employee id %q", args[0])
			}
			req.EmployeeID = id

			var resp report.EmployeeViewResponse
			if server {
				resp, err = a.client.EmployeeView(cmd.Context(), req)
			} else {
				resp, err = localEmployeeView(cmd.Context(), a.client, req, civil.DateOf(a.now()))
			}
			if err != nil {
				return err
			}
			return renderEmployeeView(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVar(&req.Month, "month", "", "Month as YYYY-MM (default current month)")
	cmd.Flags().StringVar(&req.Preset, "preset", "", "One of last_7_days, last_30_days, this_cycle, last_cycle")
	cmd.Flags().StringVar(&req.StartDate, "from", "", "Range start as YYYY-MM-DD")
	cmd.Flags().StringVar(&req.EndDate, "to", "", "Range end as YYYY-MM-DD")
	cmd.Flags().BoolVar(&req.MarkSundays, "mark-sundays", false, "Show absent Sundays as sunday")
	cmd.Flags().BoolVar(&server, "server", false, "Use the server-side view instead of aggregating locally")
	cmd.MarkFlagsMutuallyExclusive("month", "preset", "from")
	cmd.MarkFlagsMutuallyExclusive("month", "preset", "to")
	cmd.MarkFlagsRequiredTogether("from", "to")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var month, format, output string
	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Download a monthly report as xlsx or pdf",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid employee id %q", args[0])
			}
			file, err := a.client.ExportMonthlyReport(cmd.Context(), id, month, format)
			if err != nil {
				return err
			}
			if output == "" {
				output = file.Filename
			}
			if output == "" {
				output = fmt.Sprintf("employee_%d.%s", id, format)
			}
			if err := os.WriteFile(output, file.Content, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%d bytes)\n", output, len(file.Content))
			return nil
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "Month as YYYY-MM (default current month)")
	cmd.Flags().StringVar(&format, "format", report.FormatXLSX, "xlsx or pdf")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path (default server-suggested filename)")
	return cmd
}

// listActiveEmployees drops exception employees even when the server already has.
func listActiveEmployees(ctx context.Context, c *portalclient.Client) ([]employee.EmployeeResponse, error) {
	rows, err := c.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	return employee.NewEmployeeResponses(employee.FilterActive(employee.ToEmployees(rows))), nil
}

// localDayView builds the day view from raw rows, as the server does.
func localDayView(ctx context.Context, c *portalclient.Client, date civil.Date) (report.DayViewResponse, error) {
	var (
		employees []employee.EmployeeResponse
		rows      []attendance.RecordResponse
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = listActiveEmployees(gctx, c)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = c.ListAttendanceRange(gctx, date, date, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return report.DayViewResponse{}, err
	}

	snapshot := aggregate.DaySnapshot(employee.ToEmployees(employees), attendance.ToRecords(rows), date)
	entries := make([]report.DayViewEntry, 0, len(snapshot))
	for _, e := range snapshot {
		entries = append(entries, report.NewDayViewEntry(e))
	}
	return report.DayViewResponse{
		Date:        date,
		DisplayDate: aggregate.DisplayDate(date),
		Entries:     entries,
		Stats:       aggregate.SummarizeDay(snapshot),
	}, nil
}

// localEmployeeView reconciles one employee's raw rows against the calendar.
func localEmployeeView(ctx context.Context, c *portalclient.Client, req report.EmployeeViewRequest, today civil.Date) (report.EmployeeViewResponse, error) {
	if err := req.Validate(); err != nil {
		return report.EmployeeViewResponse{}, err
	}
	rng, label, err := req.ResolveRange(today)
	if err != nil {
		return report.EmployeeViewResponse{}, err
	}

	employees, err := listActiveEmployees(ctx, c)
	if err != nil {
		return report.EmployeeViewResponse{}, err
	}
	var (
		emp   employee.EmployeeResponse
		found bool
	)
	for _, e := range employees {
		if e.ID == req.EmployeeID {
			emp, found = e, true
			break
		}
	}
	if !found {
		return report.EmployeeViewResponse{}, fmt.Errorf("employee %d: %w", req.EmployeeID, employee.ErrEmployeeNotFound)
	}

	rows, err := c.ListAttendanceRange(ctx, rng.Start, rng.End, &req.EmployeeID)
	if err != nil {
		return report.EmployeeViewResponse{}, err
	}

	merged, skipped := aggregate.MergeByKey(aggregate.ForEmployee(attendance.ToRecords(rows), req.EmployeeID))
	if skipped > 0 {
		slog.Warn("skipped malformed attendance rows", "emp_id", req.EmployeeID, "count", skipped)
	}
	entries, err := aggregate.Reconcile(merged, rng)
	if err != nil {
		return report.EmployeeViewResponse{}, err
	}

	stats := aggregate.Summarize(entries)
	if req.MarkSundays {
		entries = aggregate.MarkSundays(entries)
	}
	return report.EmployeeViewResponse{
		Employee:       emp,
		Range:          rng,
		Label:          label,
		Days:           report.NewDayRows(entries),
		Stats:          stats,
		SkippedRecords: skipped,
	}, nil
}
