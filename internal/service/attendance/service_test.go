package attendance

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/attendance-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-portal/internal/mocks"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/civil"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var aug1 = civil.Date{Year: 2025, Month: 8, Day: 1}

func newService(t *testing.T) (*mocks.AttendanceRepository, *mocks.EmployeeRepository, *mocks.MemoryCache, attendance.AttendanceService) {
	t.Helper()
	attendanceRepo := new(mocks.AttendanceRepository)
	employeeRepo := new(mocks.EmployeeRepository)
	c := mocks.NewMemoryCache()
	return attendanceRepo, employeeRepo, c, NewAttendanceService(attendanceRepo, employeeRepo, c, nil)
}

func TestAttendanceService_Create(t *testing.T) {
	attendanceRepo, employeeRepo, c, svc := newService(t)
	ctx := context.Background()

	employeeRepo.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	attendanceRepo.On("Create", mock.Anything, mock.MatchedBy(func(r attendance.Record) bool {
		return r.EmployeeID == 1 && r.Date == aug1 && r.CheckIn.String() == "09:00:00" && !r.CheckOut.Valid && r.Overtime.OrZero() == 30
	})).Return(attendance.Record{ID: 5, EmployeeID: 1, Date: aug1}, nil)
	attendanceRepo.On("GetByID", mock.Anything, int64(5)).Return(attendance.Record{
		ID: 5, EmployeeID: 1, Date: aug1, CheckIn: civil.NewTimeOfDay(9, 0, 0), Overtime: civil.MinutesOf(30),
	}, nil)

	got, err := svc.Create(ctx, attendance.RecordRequest{
		EmployeeID:     1,
		AttendanceDate: "2025-08-01",
		CheckIn:        "09:00",
		CheckOut:       "",
		Overtime:       civil.MinutesOf(30),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
	assert.Contains(t, c.Deleted, "views:day:2025-08-01")

	attendanceRepo.AssertExpectations(t)
	employeeRepo.AssertExpectations(t)
}

func TestAttendanceService_Create_Invalid(t *testing.T) {
	attendanceRepo, employeeRepo, _, svc := newService(t)

	_, err := svc.Create(context.Background(), attendance.RecordRequest{
		EmployeeID:     0,
		AttendanceDate: "01/08/2025",
		CheckIn:        "9am",
		Overtime:       civil.MinutesOf(-5),
	})

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	fields := verrs.ToMap()
	assert.Contains(t, fields, "emp_id")
	assert.Contains(t, fields, "attendance_date")
	assert.Contains(t, fields, "check_in")
	assert.Contains(t, fields, "overtime")
	assert.NotContains(t, fields, "check_out")

	attendanceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	employeeRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestAttendanceService_Create_UnknownEmployee(t *testing.T) {
	attendanceRepo, employeeRepo, _, svc := newService(t)

	employeeRepo.On("Exists", mock.Anything, int64(9)).Return(false, nil)

	_, err := svc.Create(context.Background(), attendance.RecordRequest{EmployeeID: 9, AttendanceDate: "2025-08-01"})
	assert.ErrorIs(t, err, attendance.ErrEmployeeNotFound)
	attendanceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAttendanceService_Update_InvalidatesBothDays(t *testing.T) {
	attendanceRepo, employeeRepo, c, svc := newService(t)
	ctx := context.Background()

	previous := attendance.Record{ID: 7, EmployeeID: 1, Date: aug1}
	attendanceRepo.On("GetByID", mock.Anything, int64(7)).Return(previous, nil)
	employeeRepo.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	attendanceRepo.On("Update", mock.Anything, mock.MatchedBy(func(r attendance.Record) bool {
		return r.ID == 7 && r.Date.String() == "2025-08-02"
	})).Return(attendance.Record{ID: 7}, nil)

	_, err := svc.Update(ctx, attendance.RecordRequest{
		ID:             7,
		EmployeeID:     1,
		AttendanceDate: "2025-08-02",
		CheckOut:       "17:00:00",
	})
	require.NoError(t, err)
	assert.Contains(t, c.Deleted, "views:day:2025-08-01")
	assert.Contains(t, c.Deleted, "views:day:2025-08-02")
}

func TestAttendanceService_Update_NotFound(t *testing.T) {
	attendanceRepo, employeeRepo, _, svc := newService(t)

	attendanceRepo.On("GetByID", mock.Anything, int64(7)).Return(attendance.Record{}, attendance.ErrRecordNotFound)

	_, err := svc.Update(context.Background(), attendance.RecordRequest{ID: 7, EmployeeID: 1, AttendanceDate: "2025-08-02"})
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
	employeeRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestAttendanceService_Delete(t *testing.T) {
	attendanceRepo, _, c, svc := newService(t)
	ctx := context.Background()

	attendanceRepo.On("GetByID", mock.Anything, int64(3)).Return(attendance.Record{ID: 3, Date: aug1}, nil)
	attendanceRepo.On("Delete", mock.Anything, int64(3)).Return(nil)
	attendanceRepo.On("GetByID", mock.Anything, int64(4)).Return(attendance.Record{}, attendance.ErrRecordNotFound)

	require.NoError(t, svc.Delete(ctx, 3))
	assert.Equal(t, []string{"views:day:2025-08-01"}, c.Deleted)

	assert.ErrorIs(t, svc.Delete(ctx, 4), attendance.ErrRecordNotFound)
}

func TestAttendanceService_ListRange(t *testing.T) {
	attendanceRepo, _, _, svc := newService(t)

	empID := int64(1)
	filter, err := attendance.ParseRangeFilter("2025-08-01", "2025-08-31", "1")
	require.NoError(t, err)

	attendanceRepo.On("ListRange", mock.Anything, aug1, civil.Date{Year: 2025, Month: 8, Day: 31}, &empID).
		Return([]attendance.Record{{ID: 1, EmployeeID: 1, Date: aug1}}, nil)

	rows, err := svc.ListRange(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, aug1, rows[0].AttendanceDate)
}
