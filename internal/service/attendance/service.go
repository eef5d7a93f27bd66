package attendance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-portal/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-portal/internal/domain/report"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/cache"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/civil"
)

// TxRunner runs fn in a transaction; repositories called with the ctx passed to fn join it.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

// NoTx runs fn directly.
func NoTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	cache          cache.Cache
	withTx         TxRunner
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	c cache.Cache,
	withTx TxRunner,
) attendance.AttendanceService {
	if c == nil {
		c = cache.Noop{}
	}
	if withTx == nil {
		withTx = NoTx
	}
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		cache:          c,
		withTx:         withTx,
	}
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.RecordResponse, error) {
	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return attendance.NewRecordResponses(records), nil
}

// ListRange implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListRange(ctx context.Context, filter attendance.RangeFilter) ([]attendance.RecordResponse, error) {
	records, err := s.attendanceRepo.ListRange(ctx, filter.StartDate, filter.EndDate, filter.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance range: %w", err)
	}
	return attendance.NewRecordResponses(records), nil
}

// Get implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Get(ctx context.Context, id int64) (attendance.RecordResponse, error) {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	return attendance.NewRecordResponse(record), nil
}

// Create implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.RecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	var created attendance.Record
	err := s.withTx(ctx, func(ctx context.Context) error {
		if err := s.ensureEmployee(ctx, req.EmployeeID); err != nil {
			return err
		}

		var err error
		created, err = s.attendanceRepo.Create(ctx, req.ToRecord())
		return err
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	slog.Info("attendance record created", "id", created.ID, "emp_id", created.EmployeeID, "date", created.Date.String())
	s.invalidateDays(ctx, created.Date)
	return s.Get(ctx, created.ID)
}

// Update implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.RecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	var previous attendance.Record
	err := s.withTx(ctx, func(ctx context.Context) error {
		var err error
		previous, err = s.attendanceRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		if err := s.ensureEmployee(ctx, req.EmployeeID); err != nil {
			return err
		}

		_, err = s.attendanceRepo.Update(ctx, req.ToRecord())
		return err
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	slog.Info("attendance record updated", "id", req.ID, "emp_id", req.EmployeeID)
	s.invalidateDays(ctx, previous.Date, req.ToRecord().Date)
	return s.Get(ctx, req.ID)
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id int64) error {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.attendanceRepo.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("attendance record deleted", "id", id)
	s.invalidateDays(ctx, record.Date)
	return nil
}

// invalidateDays drops cached day views touched by a write.
func (s *AttendanceServiceImpl) invalidateDays(ctx context.Context, dates ...civil.Date) {
	keys := make([]string, 0, len(dates))
	for _, d := range dates {
		keys = append(keys, report.DayViewCacheKey(d))
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		slog.Warn("day view cache invalidation failed", "error", err)
	}
}

func (s *AttendanceServiceImpl) ensureEmployee(ctx context.Context, id int64) error {
	exists, err := s.employeeRepo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check employee: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %d", attendance.ErrEmployeeNotFound, id)
	}
	return nil
}
