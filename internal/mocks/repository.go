// Package mocks holds testify mocks for the repository, service and cache interfaces.
package mocks

import (
	"context"

	"github.com/cmlabs-hris/attendance-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-portal/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/civil"
	"github.com/stretchr/testify/mock"
)

type AttendanceRepository struct {
	mock.Mock
}

var _ attendance.AttendanceRepository = (*AttendanceRepository)(nil)

func (m *AttendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(attendance.Record), args.Error(1)
}

func (m *AttendanceRepository) GetByID(ctx context.Context, id int64) (attendance.Record, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(attendance.Record), args.Error(1)
}

func (m *AttendanceRepository) Update(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(attendance.Record), args.Error(1)
}

func (m *AttendanceRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *AttendanceRepository) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Record, error) {
	args := m.Called(ctx, filter)
	records, _ := args.Get(0).([]attendance.Record)
	return records, args.Error(1)
}

func (m *AttendanceRepository) ListRange(ctx context.Context, start, end civil.Date, employeeID *int64) ([]attendance.Record, error) {
	args := m.Called(ctx, start, end, employeeID)
	records, _ := args.Get(0).([]attendance.Record)
	return records, args.Error(1)
}

func (m *AttendanceRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]attendance.Record, error) {
	args := m.Called(ctx, employeeID)
	records, _ := args.Get(0).([]attendance.Record)
	return records, args.Error(1)
}

type EmployeeRepository struct {
	mock.Mock
}

var _ employee.EmployeeRepository = (*EmployeeRepository)(nil)

func (m *EmployeeRepository) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	args := m.Called(ctx)
	employees, _ := args.Get(0).([]employee.Employee)
	return employees, args.Error(1)
}

func (m *EmployeeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
