package employee

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-portal/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/cache"
)

const (
	ActiveEmployeesKey = "employees:active"
	DefaultCacheTTL    = 5 * time.Minute
)

type EmployeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	cache          cache.Cache
	cacheTTL       time.Duration
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	c cache.Cache,
	cacheTTL time.Duration,
) employee.EmployeeService {
	if c == nil {
		c = cache.Noop{}
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		cache:          c,
		cacheTTL:       cacheTTL,
	}
}

// ListActive implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListActive(ctx context.Context) ([]employee.Employee, error) {
	var cached []employee.Employee
	hit, err := s.cache.Get(ctx, ActiveEmployeesKey, &cached)
	if err != nil {
		slog.Warn("active employee cache read failed", "error", err)
	}
	if hit {
		return cached, nil
	}

	all, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	active := employee.FilterActive(all)
	if err := s.cache.Set(ctx, ActiveEmployeesKey, active, s.cacheTTL); err != nil {
		slog.Warn("active employee cache write failed", "error", err)
	}

	return active, nil
}

// ListAll implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListAll(ctx context.Context) ([]employee.Employee, error) {
	all, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return all, nil
}

// GetWithAttendance implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetWithAttendance(ctx context.Context, id int64) (employee.EmployeeWithAttendanceResponse, error) {
	if id <= 0 {
		return employee.EmployeeWithAttendanceResponse{}, employee.ErrInvalidEmployeeID
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeWithAttendanceResponse{}, err
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, id)
	if err != nil {
		return employee.EmployeeWithAttendanceResponse{}, fmt.Errorf("failed to list attendance for employee %d: %w", id, err)
	}

	return employee.EmployeeWithAttendanceResponse{
		EmployeeResponse: employee.NewEmployeeResponse(emp),
		Attendance:       attendance.NewRecordResponses(records),
	}, nil
}

// InvalidateCache implements employee.EmployeeService.
func (s *EmployeeServiceImpl) InvalidateCache(ctx context.Context) {
	if err := s.cache.Delete(ctx, ActiveEmployeesKey); err != nil {
		slog.Warn("active employee cache invalidation failed", "error", err)
	}
}
