package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/cmlabs-hris/attendance-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-portal/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-portal/internal/domain/report"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/aggregate"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/civil"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func renderEmployees(w io.Writer, list []employee.EmployeeResponse) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tPHONE\tEXCEPTION")
	for _, e := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.ID, e.Name, e.PhoneNumber, e.AttendanceException)
	}
	return tw.Flush()
}

func renderDayView(w io.Writer, v report.DayViewResponse) error {
	fmt.Fprintf(w, "Attendance for %s (%s)\n\n", displayOr(v.DisplayDate, v.Date), v.Date.Weekday())

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tCHECK IN\tCHECK OUT\tWORKED\tOVERTIME\tSTATUS")
	for _, e := range v.Entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.EmployeeID, e.Name, e.CheckInDisplay, e.CheckOutDisplay, e.Worked, e.OvertimeDisplay, e.Status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nTotal %d  Present %d  Absent %d\n", v.Stats.Total, v.Stats.Present, v.Stats.Absent)
	return err
}

func renderEmployeeView(w io.Writer, v report.EmployeeViewResponse) error {
	fmt.Fprintf(w, "%s (#%d)  %s  [%s .. %s]\n\n",
		v.Employee.Name, v.Employee.ID, v.Label, aggregate.DisplayDate(v.Range.Start), aggregate.DisplayDate(v.Range.End))

	tw := newTable(w)
	fmt.Fprintln(tw, "DATE\tDAY\tCHECK IN\tCHECK OUT\tWORKED\tOVERTIME\tSTATUS")
	for _, d := range v.Days {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			d.DisplayDate, d.Weekday, d.CheckInDisplay, d.CheckOutDisplay, d.Worked, d.OvertimeDisplay, d.Status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := v.Stats
	fmt.Fprintf(w, "\nPresent %d  Absent %d  Worked %s (%s h)  Overtime %s\n",
		s.TotalPresent, s.TotalAbsent,
		aggregate.FormatHoursMinutes(s.TotalWorkedMinutes),
		strconv.FormatFloat(s.TotalHours, 'f', 2, 64),
		aggregate.FormatOvertime(civil.MinutesOf(s.TotalOvertimeMinutes)))
	if v.SkippedRecords > 0 {
		fmt.Fprintf(w, "%d malformed record(s) skipped\n", v.SkippedRecords)
	}
	return nil
}

func renderRecords(w io.Writer, rows []attendance.RecordResponse) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tEMPLOYEE\tNAME\tDATE\tCHECK IN\tCHECK OUT\tOVERTIME")
	for _, r := range rows {
		name := "-"
		if r.Name != nil {
			name = *r.Name
		}
		overtime := "-"
		if r.Overtime.Valid {
			overtime = strconv.Itoa(r.Overtime.Minutes)
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.EmployeeID, name, r.AttendanceDate, r.CheckIn.OrSentinel(), r.CheckOut.OrSentinel(), overtime)
	}
	return tw.Flush()
}

func displayOr(display string, d civil.Date) string {
	if display != "" {
		return display
	}
	return aggregate.DisplayDate(d)
}
