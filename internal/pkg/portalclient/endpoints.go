package portalclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/cmlabs-hris/attendance-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-portal/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-portal/internal/domain/report"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/civil"
)

// ListEmployees returns the active employees.
func (c *Client) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	var out []employee.EmployeeResponse
	if err := c.call(ctx, http.MethodGet, "/api/employees", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAllEmployees includes attendance-exception employees.
func (c *Client) ListAllEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	var out []employee.EmployeeResponse
	if err := c.call(ctx, http.MethodGet, "/api/employees/crud", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetEmployee(ctx context.Context, id int64) (employee.EmployeeWithAttendanceResponse, error) {
	var out employee.EmployeeWithAttendanceResponse
	err := c.call(ctx, http.MethodGet, idPath("/api/employees", id), nil, nil, &out)
	return out, err
}

// MonthlyReport fetches a month of reconciled days. An empty month means the server's current month.
func (c *Client) MonthlyReport(ctx context.Context, id int64, month string) (report.MonthlyReportResponse, error) {
	query := url.Values{}
	if month != "" {
		query.Set("month", month)
	}
	var out report.MonthlyReportResponse
	err := c.call(ctx, http.MethodGet, idPath("/api/employees", id)+"/monthly-report", query, nil, &out)
	return out, err
}

func (c *Client) ExportMonthlyReport(ctx context.Context, id int64, month, format string) (report.ExportFile, error) {
	query := url.Values{}
	if month != "" {
		query.Set("month", month)
	}
	if format != "" {
		query.Set("format", format)
	}
	content, contentType, filename, err := c.download(ctx, idPath("/api/employees", id)+"/monthly-report/export", query)
	if err != nil {
		return report.ExportFile{}, err
	}
	return report.ExportFile{Filename: filename, ContentType: contentType, Content: content}, nil
}

// ListAttendance returns every raw row.
func (c *Client) ListAttendance(ctx context.Context) ([]attendance.RecordResponse, error) {
	var out []attendance.RecordResponse
	if err := c.call(ctx, http.MethodGet, "/api/attendance", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAttendanceRange returns raw rows with start <= date <= end, optionally for one employee.
func (c *Client) ListAttendanceRange(ctx context.Context, start, end civil.Date, employeeID *int64) ([]attendance.RecordResponse, error) {
	query := url.Values{}
	query.Set("start_date", start.String())
	query.Set("end_date", end.String())
	if employeeID != nil {
		query.Set("employee_id", strconv.FormatInt(*employeeID, 10))
	}

	var out []attendance.RecordResponse
	if err := c.call(ctx, http.MethodGet, "/api/attendance/range", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListRecords(ctx context.Context, filter attendance.RecordFilter) ([]attendance.RecordResponse, error) {
	query := url.Values{}
	if filter.Date != nil {
		query.Set("date", filter.Date.String())
	}
	if filter.EmployeeID != nil {
		query.Set("employee_id", strconv.FormatInt(*filter.EmployeeID, 10))
	}

	var out []attendance.RecordResponse
	if err := c.call(ctx, http.MethodGet, "/api/attendance/crud", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetRecord(ctx context.Context, id int64) (attendance.RecordResponse, error) {
	var out attendance.RecordResponse
	err := c.call(ctx, http.MethodGet, idPath("/api/attendance/crud", id), nil, nil, &out)
	return out, err
}

func (c *Client) CreateRecord(ctx context.Context, req attendance.RecordRequest) (attendance.RecordResponse, error) {
	var out attendance.RecordResponse
	err := c.call(ctx, http.MethodPost, "/api/attendance/crud", nil, req, &out)
	return out, err
}

func (c *Client) UpdateRecord(ctx context.Context, id int64, req attendance.RecordRequest) (attendance.RecordResponse, error) {
	var out attendance.RecordResponse
	err := c.call(ctx, http.MethodPut, idPath("/api/attendance/crud", id), nil, req, &out)
	return out, err
}

func (c *Client) DeleteRecord(ctx context.Context, id int64) error {
	return c.call(ctx, http.MethodDelete, idPath("/api/attendance/crud", id), nil, nil, nil)
}

// DayView fetches the server-side day snapshot. An empty date means today.
func (c *Client) DayView(ctx context.Context, date string) (report.DayViewResponse, error) {
	query := url.Values{}
	if date != "" {
		query.Set("date", date)
	}
	var out report.DayViewResponse
	err := c.call(ctx, http.MethodGet, "/api/views/day", query, nil, &out)
	return out, err
}

func (c *Client) EmployeeView(ctx context.Context, req report.EmployeeViewRequest) (report.EmployeeViewResponse, error) {
	query := url.Values{}
	for key, value := range map[string]string{
		"month":      req.Month,
		"preset":     req.Preset,
		"start_date": req.StartDate,
		"end_date":   req.EndDate,
	} {
		if value != "" {
			query.Set(key, value)
		}
	}
	if req.MarkSundays {
		query.Set("mark_sundays", "true")
	}

	var out report.EmployeeViewResponse
	err := c.call(ctx, http.MethodGet, "/api/views/employees/"+strconv.FormatInt(req.EmployeeID, 10), query, nil, &out)
	return out, err
}
