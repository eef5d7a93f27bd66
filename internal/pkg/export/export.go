// Package export renders monthly attendance reports as spreadsheet or PDF downloads.
package export

import (
	"fmt"
	"strings"

	"github.com/cmlabs-hris/attendance-portal/internal/domain/report"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

var columns = []string{"Date", "Day", "Check In", "Check Out", "Worked", "Overtime", "Status"}

// Render dispatches on format.
func Render(rep report.MonthlyReportResponse, format string) (report.ExportFile, error) {
	var (
		content     []byte
		contentType string
		err         error
	)

	switch format {
	case report.FormatXLSX:
		content, err = MonthlyReportXLSX(rep)
		contentType = ContentTypeXLSX
	case report.FormatPDF:
		content, err = MonthlyReportPDF(rep)
		contentType = ContentTypePDF
	default:
		return report.ExportFile{}, fmt.Errorf("%w: %q", report.ErrUnsupportedFormat, format)
	}
	if err != nil {
		return report.ExportFile{}, err
	}

	return report.ExportFile{
		Filename:    Filename(rep, format),
		ContentType: contentType,
		Content:     content,
	}, nil
}

// Filename is attendance_<employee>_<month>.<format>, with the employee name slugged.
func Filename(rep report.MonthlyReportResponse, format string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return '_'
	}, strings.TrimSpace(rep.Employee.Name))
	if name == "" {
		name = fmt.Sprintf("employee_%d", rep.Employee.ID)
	}
	return fmt.Sprintf("attendance_%s_%s.%s", name, rep.Month, format)
}

func row(d report.DayRow) []string {
	return []string{
		d.DisplayDate,
		d.Weekday,
		d.CheckInDisplay,
		d.CheckOutDisplay,
		d.Worked,
		d.OvertimeDisplay,
		string(d.Status),
	}
}

func summary(rep report.MonthlyReportResponse) [][2]string {
	s := rep.Stats
	return [][2]string{
		{"Present", fmt.Sprintf("%d days", s.TotalPresent)},
		{"Absent", fmt.Sprintf("%d days", s.TotalAbsent)},
		{"Total Hours", fmt.Sprintf("%.2f", s.TotalHours)},
		{"Total Overtime", fmt.Sprintf("%d minutes", s.TotalOvertimeMinutes)},
	}
}
