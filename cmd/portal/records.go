package main

import (
	"fmt"
	"strconv"

	"github.com/cmlabs-hris/attendance-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/civil"
	"github.com/spf13/cobra"
)

func newRecordsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Manage raw attendance records",
	}
	cmd.AddCommand(
		newRecordsListCmd(a),
		newRecordsCreateCmd(a),
		newRecordsUpdateCmd(a),
		newRecordsDeleteCmd(a),
	)
	return cmd
}

func newRecordsListCmd(a *app) *cobra.Command {
	var date, employeeID string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List raw records, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := attendance.ParseRecordFilter(date, employeeID)
			if err != nil {
				return err
			}
			rows, err := a.client.ListRecords(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return renderRecords(cmd.OutOrStdout(), rows)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Only this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&employeeID, "employee", "", "Only this employee id")
	return cmd
}

// recordFlags binds the fields of a create or update body.
func recordFlags(cmd *cobra.Command, req *attendance.RecordRequest, overtime *string) {
	cmd.Flags().Int64Var(&req.EmployeeID, "employee", 0, "Employee id")
	cmd.Flags().StringVar(&req.AttendanceDate, "date", "", "Attendance date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.CheckIn, "in", "", "Check-in time (HH:MM[:SS])")
	cmd.Flags().StringVar(&req.CheckOut, "out", "", "Check-out time (HH:MM[:SS])")
	cmd.Flags().StringVar(overtime, "overtime", "", "Overtime in minutes")
	_ = cmd.MarkFlagRequired("employee")
	_ = cmd.MarkFlagRequired("date")
}

func parseOvertime(s string) (civil.NullMinutes, error) {
	m, err := civil.ParseMinutes(s)
	if err != nil {
		return civil.NullMinutes{}, fmt.Errorf("invalid --overtime: %w", err)
	}
	return m, nil
}

func newRecordsCreateCmd(a *app) *cobra.Command {
	var (
		req      attendance.RecordRequest
		overtime string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if req.Overtime, err = parseOvertime(overtime); err != nil {
				return err
			}
			if err := req.Validate(); err != nil {
				return err
			}
			rec, err := a.client.CreateRecord(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created record %d\n", rec.ID)
			return nil
		},
	}
	recordFlags(cmd, &req, &overtime)
	return cmd
}

func newRecordsUpdateCmd(a *app) *cobra.Command {
	var (
		req      attendance.RecordRequest
		overtime string
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid record id %q", args[0])
			}
			if req.Overtime, err = parseOvertime(overtime); err != nil {
				return err
			}
			if err := req.Validate(); err != nil {
				return err
			}
			rec, err := a.client.UpdateRecord(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated record %d\n", rec.ID)
			return nil
		},
	}
	recordFlags(cmd, &req, &overtime)
	return cmd
}

func newRecordsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid record id %q", args[0])
			}
			if err := a.client.DeleteRecord(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted record %d\n", id)
			return nil
		},
	}
}
