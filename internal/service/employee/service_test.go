package employee

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/attendance-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-portal/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-portal/internal/mocks"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleEmployees() []employee.Employee {
	return []employee.Employee{
		{ID: 1, Name: "Ayu", AttendanceException: "no"},
		{ID: 2, Name: "Budi", AttendanceException: " Yes "},
		{ID: 3, Name: "Citra"},
	}
}

func names(employees []employee.Employee) []string {
	out := make([]string, 0, len(employees))
	for _, e := range employees {
		out = append(out, e.Name)
	}
	return out
}

func TestEmployeeService_ListActive_FiltersAndCaches(t *testing.T) {
	ctx := context.Background()
	employeeRepo := new(mocks.EmployeeRepository)
	attendanceRepo := new(mocks.AttendanceRepository)
	c := mocks.NewMemoryCache()

	employeeRepo.On("List", mock.Anything).Return(sampleEmployees(), nil).Once()

	svc := NewEmployeeService(employeeRepo, attendanceRepo, c, 0)

	first, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ayu", "Citra"}, names(first))
	assert.True(t, c.Has(ActiveEmployeesKey))

	second, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, names(first), names(second))

	employeeRepo.AssertExpectations(t)
}

func TestEmployeeService_InvalidateCache(t *testing.T) {
	ctx := context.Background()
	employeeRepo := new(mocks.EmployeeRepository)
	c := mocks.NewMemoryCache()

	employeeRepo.On("List", mock.Anything).Return(sampleEmployees(), nil).Twice()

	svc := NewEmployeeService(employeeRepo, new(mocks.AttendanceRepository), c, 0)

	_, err := svc.ListActive(ctx)
	require.NoError(t, err)
	svc.InvalidateCache(ctx)
	assert.False(t, c.Has(ActiveEmployeesKey))

	_, err = svc.ListActive(ctx)
	require.NoError(t, err)
	employeeRepo.AssertExpectations(t)
}

func TestEmployeeService_ListAll_KeepsExceptions(t *testing.T) {
	employeeRepo := new(mocks.EmployeeRepository)
	employeeRepo.On("List", mock.Anything).Return(sampleEmployees(), nil)

	svc := NewEmployeeService(employeeRepo, new(mocks.AttendanceRepository), nil, 0)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestEmployeeService_ListActive_RepositoryError(t *testing.T) {
	employeeRepo := new(mocks.EmployeeRepository)
	employeeRepo.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

	svc := NewEmployeeService(employeeRepo, new(mocks.AttendanceRepository), nil, 0)

	_, err := svc.ListActive(context.Background())
	assert.ErrorContains(t, err, "connection refused")
}

func TestEmployeeService_GetWithAttendance(t *testing.T) {
	ctx := context.Background()
	employeeRepo := new(mocks.EmployeeRepository)
	attendanceRepo := new(mocks.AttendanceRepository)

	employeeRepo.On("GetByID", mock.Anything, int64(1)).Return(sampleEmployees()[0], nil)
	attendanceRepo.On("ListByEmployee", mock.Anything, int64(1)).Return([]attendance.Record{
		{ID: 10, EmployeeID: 1, Date: civil.Date{Year: 2025, Month: 8, Day: 1}, CheckIn: civil.NewTimeOfDay(9, 0, 0)},
	}, nil)
	employeeRepo.On("GetByID", mock.Anything, int64(404)).Return(employee.Employee{}, employee.ErrEmployeeNotFound)

	svc := NewEmployeeService(employeeRepo, attendanceRepo, nil, 0)

	got, err := svc.GetWithAttendance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ayu", got.Name)
	require.Len(t, got.Attendance, 1)
	assert.Equal(t, int64(10), got.Attendance[0].ID)

	_, err = svc.GetWithAttendance(ctx, 404)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = svc.GetWithAttendance(ctx, 0)
	assert.ErrorIs(t, err, employee.ErrInvalidEmployeeID)
}
