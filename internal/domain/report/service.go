package report

import "context"

// ReportService builds the aggregated attendance views.
type ReportService interface {
	// DayView returns one entry per active employee for a single date
	DayView(ctx context.Context, req DayViewRequest) (DayViewResponse, error)

	// EmployeeView returns a calendar-complete range for one employee
	EmployeeView(ctx context.Context, req EmployeeViewRequest) (EmployeeViewResponse, error)

	// MonthlyReport returns a month of reconciled days plus totals
	MonthlyReport(ctx context.Context, req MonthlyReportRequest) (MonthlyReportResponse, error)

	// ExportMonthlyReport renders MonthlyReport as a downloadable file
	ExportMonthlyReport(ctx context.Context, req ExportRequest) (ExportFile, error)
}
