package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-portal/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-portal/internal/domain/report"
)

// CacheJobs keeps the read paths hit by the portal's landing screens warm.
type CacheJobs struct {
	employeeService employee.EmployeeService
	reportService   report.ReportService
}

func NewCacheJobs(employeeService employee.EmployeeService, reportService report.ReportService) *CacheJobs {
	return &CacheJobs{
		employeeService: employeeService,
		reportService:   reportService,
	}
}

func (j *CacheJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) error {
	if err := scheduler.AddJob("warm_active_employees", interval, j.WarmActiveEmployees); err != nil {
		return err
	}
	return scheduler.AddJob("warm_today_day_view", interval, j.WarmTodayDayView)
}

// WarmActiveEmployees drops the cached list and reloads it from the database.
func (j *CacheJobs) WarmActiveEmployees(ctx context.Context) error {
	j.employeeService.InvalidateCache(ctx)
	if _, err := j.employeeService.ListActive(ctx); err != nil {
		return fmt.Errorf("failed to warm active employees: %w", err)
	}
	return nil
}

func (j *CacheJobs) WarmTodayDayView(ctx context.Context) error {
	if _, err := j.reportService.DayView(ctx, report.DayViewRequest{}); err != nil {
		return fmt.Errorf("failed to warm day view: %w", err)
	}
	return nil
}
