package mocks

import (
	"context"

	"github.com/cmlabs-hris/attendance-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-portal/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-portal/internal/domain/report"
	"github.com/stretchr/testify/mock"
)

type EmployeeService struct {
	mock.Mock
}

var _ employee.EmployeeService = (*EmployeeService)(nil)

func (m *EmployeeService) ListActive(ctx context.Context) ([]employee.Employee, error) {
	args := m.Called(ctx)
	employees, _ := args.Get(0).([]employee.Employee)
	return employees, args.Error(1)
}

func (m *EmployeeService) ListAll(ctx context.Context) ([]employee.Employee, error) {
	args := m.Called(ctx)
	employees, _ := args.Get(0).([]employee.Employee)
	return employees, args.Error(1)
}

func (m *EmployeeService) GetWithAttendance(ctx context.Context, id int64) (employee.EmployeeWithAttendanceResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(employee.EmployeeWithAttendanceResponse), args.Error(1)
}

func (m *EmployeeService) InvalidateCache(ctx context.Context) {
	m.Called(ctx)
}

type AttendanceService struct {
	mock.Mock
}

var _ attendance.AttendanceService = (*AttendanceService)(nil)

func (m *AttendanceService) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.RecordResponse, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]attendance.RecordResponse)
	return rows, args.Error(1)
}

func (m *AttendanceService) ListRange(ctx context.Context, filter attendance.RangeFilter) ([]attendance.RecordResponse, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]attendance.RecordResponse)
	return rows, args.Error(1)
}

func (m *AttendanceService) Get(ctx context.Context, id int64) (attendance.RecordResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(attendance.RecordResponse), args.Error(1)
}

func (m *AttendanceService) Create(ctx context.Context, req attendance.RecordRequest) (attendance.RecordResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(attendance.RecordResponse), args.Error(1)
}

func (m *AttendanceService) Update(ctx context.Context, req attendance.RecordRequest) (attendance.RecordResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(attendance.RecordResponse), args.Error(1)
}

func (m *AttendanceService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type ReportService struct {
	mock.Mock
}

var _ report.ReportService = (*ReportService)(nil)

func (m *ReportService) DayView(ctx context.Context, req report.DayViewRequest) (report.DayViewResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(report.DayViewResponse), args.Error(1)
}

func (m *ReportService) EmployeeView(ctx context.Context, req report.EmployeeViewRequest) (report.EmployeeViewResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(report.EmployeeViewResponse), args.Error(1)
}

func (m *ReportService) MonthlyReport(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReportResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(report.MonthlyReportResponse), args.Error(1)
}

func (m *ReportService) ExportMonthlyReport(ctx context.Context, req report.ExportRequest) (report.ExportFile, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(report.ExportFile), args.Error(1)
}
