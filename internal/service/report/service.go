package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-portal/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-portal/internal/domain/report"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/aggregate"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/cache"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/civil"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/export"
	"golang.org/x/sync/errgroup"
)

const DefaultDayViewTTL = time.Minute

type ReportServiceImpl struct {
	employeeService employee.EmployeeService
	employeeRepo    employee.EmployeeRepository
	attendanceRepo  attendance.AttendanceRepository
	cache           cache.Cache
	cacheTTL        time.Duration
	now             func() time.Time
}

// NewReportService wires the view builders. now supplies "today" and should already be in
// the portal's time zone.
func NewReportService(
	employeeService employee.EmployeeService,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	c cache.Cache,
	cacheTTL time.Duration,
	now func() time.Time,
) report.ReportService {
	if c == nil {
		c = cache.Noop{}
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultDayViewTTL
	}
	if now == nil {
		now = time.Now
	}
	return &ReportServiceImpl{
		employeeService: employeeService,
		employeeRepo:    employeeRepo,
		attendanceRepo:  attendanceRepo,
		cache:           c,
		cacheTTL:        cacheTTL,
		now:             now,
	}
}

func (s *ReportServiceImpl) today() civil.Date {
	return civil.DateOf(s.now())
}

// DayView implements report.ReportService.
func (s *ReportServiceImpl) DayView(ctx context.Context, req report.DayViewRequest) (report.DayViewResponse, error) {
	if err := req.Validate(); err != nil {
		return report.DayViewResponse{}, err
	}

	date := s.today()
	if req.Date != "" {
		date, _ = civil.ParseDate(req.Date)
	}

	key := report.DayViewCacheKey(date)
	var cached report.DayViewResponse
	if hit, err := s.cache.Get(ctx, key, &cached); err != nil {
		slog.Warn("day view cache read failed", "date", date.String(), "error", err)
	} else if hit {
		return cached, nil
	}

	var (
		employees []employee.Employee
		records   []attendance.Record
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.employeeService.ListActive(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		// Ascending id order, so the most recently written row is last.
		records, err = s.attendanceRepo.ListRange(gctx, date, date, nil)
		if err != nil {
			return fmt.Errorf("failed to list attendance for %s: %w", date, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return report.DayViewResponse{}, err
	}

	snapshot := aggregate.DaySnapshot(employees, records, date)
	entries := make([]report.DayViewEntry, 0, len(snapshot))
	for _, e := range snapshot {
		entries = append(entries, report.NewDayViewEntry(e))
	}

	resp := report.DayViewResponse{
		Date:        date,
		DisplayDate: aggregate.DisplayDate(date),
		Entries:     entries,
		Stats:       aggregate.SummarizeDay(snapshot),
	}

	if err := s.cache.Set(ctx, key, resp, s.cacheTTL); err != nil {
		slog.Warn("day view cache write failed", "date", date.String(), "error", err)
	}
	return resp, nil
}

// EmployeeView implements report.ReportService.
func (s *ReportServiceImpl) EmployeeView(ctx context.Context, req report.EmployeeViewRequest) (report.EmployeeViewResponse, error) {
	if err := req.Validate(); err != nil {
		return report.EmployeeViewResponse{}, err
	}

	r, label, err := req.ResolveRange(s.today())
	if err != nil {
		return report.EmployeeViewResponse{}, err
	}

	emp, err := s.activeEmployee(ctx, req.EmployeeID)
	if err != nil {
		return report.EmployeeViewResponse{}, err
	}

	entries, skipped, err := s.reconcile(ctx, emp.ID, r)
	if err != nil {
		return report.EmployeeViewResponse{}, err
	}

	stats := aggregate.Summarize(entries)
	if req.MarkSundays {
		entries = aggregate.MarkSundays(entries)
	}

	return report.EmployeeViewResponse{
		Employee:       employee.NewEmployeeResponse(emp),
		Range:          r,
		Label:          label,
		Days:           report.NewDayRows(entries),
		Stats:          stats,
		SkippedRecords: skipped,
	}, nil
}

// MonthlyReport implements report.ReportService.
func (s *ReportServiceImpl) MonthlyReport(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReportResponse{}, err
	}

	today := s.today()
	month := civil.MonthOf(today)
	if req.Month != "" {
		month, _ = civil.ParseMonth(req.Month)
	}

	r, err := aggregate.MonthRange(month, today)
	if err != nil {
		return report.MonthlyReportResponse{}, err
	}

	emp, err := s.activeEmployee(ctx, req.EmployeeID)
	if err != nil {
		return report.MonthlyReportResponse{}, err
	}

	entries, _, err := s.reconcile(ctx, emp.ID, r)
	if err != nil {
		return report.MonthlyReportResponse{}, err
	}

	return report.MonthlyReportResponse{
		Employee:     employee.NewEmployeeResponse(emp),
		Month:        month.String(),
		DisplayMonth: aggregate.DisplayMonth(month),
		Attendance:   report.NewDayRows(entries),
		Stats:        aggregate.Summarize(entries),
	}, nil
}

// ExportMonthlyReport implements report.ReportService.
func (s *ReportServiceImpl) ExportMonthlyReport(ctx context.Context, req report.ExportRequest) (report.ExportFile, error) {
	if err := req.Validate(); err != nil {
		return report.ExportFile{}, err
	}

	rep, err := s.MonthlyReport(ctx, req.MonthlyReportRequest)
	if err != nil {
		return report.ExportFile{}, err
	}

	file, err := export.Render(rep, req.Format)
	if err != nil {
		return report.ExportFile{}, fmt.Errorf("%w: %w", report.ErrReportGenerationFailed, err)
	}

	slog.Info("monthly report exported", "emp_id", rep.Employee.ID, "month", rep.Month, "format", req.Format, "bytes", len(file.Content))
	return file, nil
}

// activeEmployee hides exception employees from every view.
func (s *ReportServiceImpl) activeEmployee(ctx context.Context, id int64) (employee.Employee, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}
	if emp.IsAttendanceException() {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (s *ReportServiceImpl) reconcile(ctx context.Context, employeeID int64, r aggregate.Range) ([]aggregate.DayEntry, int, error) {
	records, err := s.attendanceRepo.ListRange(ctx, r.Start, r.End, &employeeID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance for employee %d: %w", employeeID, err)
	}

	merged, skipped := aggregate.MergeByKey(records)
	if skipped > 0 {
		slog.Warn("skipped malformed attendance rows", "emp_id", employeeID, "count", skipped)
	}

	entries, err := aggregate.Reconcile(merged, r)
	if err != nil {
		return nil, 0, err
	}
	return entries, skipped, nil
}
