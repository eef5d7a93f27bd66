package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-portal/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-portal/internal/domain/report"
	"github.com/cmlabs-hris/attendance-portal/internal/mocks"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/aggregate"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/civil"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/export"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// 2025-08-07 is a Thursday.
var fixedNow = time.Date(2025, time.August, 7, 10, 30, 0, 0, time.UTC)

type fixture struct {
	employeeService *mocks.EmployeeService
	employeeRepo    *mocks.EmployeeRepository
	attendanceRepo  *mocks.AttendanceRepository
	cache           *mocks.MemoryCache
	svc             report.ReportService
}

func newFixture() *fixture {
	f := &fixture{
		employeeService: new(mocks.EmployeeService),
		employeeRepo:    new(mocks.EmployeeRepository),
		attendanceRepo:  new(mocks.AttendanceRepository),
		cache:           mocks.NewMemoryCache(),
	}
	f.svc = NewReportService(f.employeeService, f.employeeRepo, f.attendanceRepo, f.cache, 0, func() time.Time { return fixedNow })
	return f
}

func d(day int) civil.Date {
	return civil.Date{Year: 2025, Month: time.August, Day: day}
}

func rec(id, empID int64, date civil.Date, in, out civil.TimeOfDay) attendance.Record {
	return attendance.Record{ID: id, EmployeeID: empID, Date: date, CheckIn: in, CheckOut: out}
}

var (
	nine = civil.NewTimeOfDay(9, 0, 0)
	five = civil.NewTimeOfDay(17, 0, 0)
	none = civil.TimeOfDay{}
)

func TestReportService_DayView(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.employeeService.On("ListActive", mock.Anything).Return([]employee.Employee{
		{ID: 1, Name: "Ayu"},
		{ID: 3, Name: "Citra"},
	}, nil).Once()
	f.attendanceRepo.On("ListRange", mock.Anything, d(5), d(5), (*int64)(nil)).Return([]attendance.Record{
		rec(1, 1, d(5), civil.NewTimeOfDay(8, 0, 0), none),
		rec(2, 1, d(5), nine, five),
		rec(3, 2, d(5), nine, five),
	}, nil).Once()

	got, err := f.svc.DayView(ctx, report.DayViewRequest{Date: "2025-08-05"})
	require.NoError(t, err)

	assert.Equal(t, "05/08/2025", got.DisplayDate)
	require.Len(t, got.Entries, 2)
	assert.Equal(t, "09:00:00", got.Entries[0].CheckIn)
	assert.Equal(t, "9:00 AM", got.Entries[0].CheckInDisplay)
	assert.Equal(t, "8h 0m", got.Entries[0].Worked)
	assert.Equal(t, aggregate.StatusPresent, got.Entries[0].Status)
	assert.Equal(t, "-", got.Entries[1].CheckIn)
	assert.Equal(t, aggregate.StatusAbsent, got.Entries[1].Status)
	assert.Equal(t, aggregate.DayStats{Total: 2, Present: 1, Absent: 1}, got.Stats)

	cached, err := f.svc.DayView(ctx, report.DayViewRequest{Date: "2025-08-05"})
	require.NoError(t, err)
	assert.Equal(t, got.Stats, cached.Stats)

	f.employeeService.AssertExpectations(t)
	f.attendanceRepo.AssertExpectations(t)
}

func TestReportService_DayView_DefaultsToToday(t *testing.T) {
	f := newFixture()

	f.employeeService.On("ListActive", mock.Anything).Return([]employee.Employee{}, nil)
	f.attendanceRepo.On("ListRange", mock.Anything, d(7), d(7), (*int64)(nil)).Return(nil, nil)

	got, err := f.svc.DayView(context.Background(), report.DayViewRequest{})
	require.NoError(t, err)
	assert.Equal(t, d(7), got.Date)
	assert.Empty(t, got.Entries)
}

func TestReportService_DayView_FetchError(t *testing.T) {
	f := newFixture()

	f.employeeService.On("ListActive", mock.Anything).Return([]employee.Employee{{ID: 1}}, nil)
	f.attendanceRepo.On("ListRange", mock.Anything, d(7), d(7), (*int64)(nil)).Return(nil, errors.New("timeout"))

	_, err := f.svc.DayView(context.Background(), report.DayViewRequest{Date: "2025-08-07"})
	assert.ErrorContains(t, err, "timeout")
	assert.False(t, f.cache.Has(report.DayViewCacheKey(d(7))))
}

func TestReportService_EmployeeView_CurrentMonthDefault(t *testing.T) {
	f := newFixture()
	empID := int64(1)

	f.employeeRepo.On("GetByID", mock.Anything, empID).Return(employee.Employee{ID: 1, Name: "Ayu"}, nil)
	f.attendanceRepo.On("ListRange", mock.Anything, d(1), d(7), &empID).Return([]attendance.Record{
		rec(1, 1, d(1), nine, none),
		rec(2, 1, d(1), none, five),
		rec(3, 1, d(4), nine, civil.NewTimeOfDay(18, 30, 0)),
		{ID: 4, EmployeeID: 0, Date: d(5)},
	}, nil)

	got, err := f.svc.EmployeeView(context.Background(), report.EmployeeViewRequest{EmployeeID: 1, MarkSundays: true})
	require.NoError(t, err)

	assert.Equal(t, "August 2025", got.Label)
	assert.Equal(t, aggregate.Range{Start: d(1), End: d(7)}, got.Range)
	require.Len(t, got.Days, 7)
	assert.Equal(t, 1, got.SkippedRecords)

	assert.Equal(t, "8h 0m", got.Days[0].Worked)
	assert.Equal(t, aggregate.StatusPresent, got.Days[0].Status)
	assert.Equal(t, aggregate.StatusAbsent, got.Days[1].Status)
	assert.Equal(t, "Sunday", got.Days[2].Weekday)
	assert.Equal(t, aggregate.StatusSunday, got.Days[2].Status)
	assert.Equal(t, "9h 30m", got.Days[3].Worked)

	assert.Equal(t, 2, got.Stats.TotalPresent)
	assert.Equal(t, 5, got.Stats.TotalAbsent)
	assert.Equal(t, 1050, got.Stats.TotalWorkedMinutes)
}

func TestReportService_EmployeeView_Preset(t *testing.T) {
	f := newFixture()
	empID := int64(1)

	f.employeeRepo.On("GetByID", mock.Anything, empID).Return(employee.Employee{ID: 1, Name: "Ayu"}, nil)
	start := civil.Date{Year: 2025, Month: time.July, Day: 20}
	f.attendanceRepo.On("ListRange", mock.Anything, start, d(7), &empID).Return(nil, nil)

	got, err := f.svc.EmployeeView(context.Background(), report.EmployeeViewRequest{EmployeeID: 1, Preset: "this_cycle"})
	require.NoError(t, err)
	assert.Equal(t, "this_cycle", got.Label)
	assert.Len(t, got.Days, 19)
	assert.Equal(t, aggregate.StatusAbsent, got.Days[14].Status, "sundays stay absent unless requested")
}

func TestReportService_EmployeeView_Errors(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.EmployeeView(ctx, report.EmployeeViewRequest{EmployeeID: 1, Month: "2025-08", Preset: "last_7_days"})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs.ToMap(), "range")

	_, err = f.svc.EmployeeView(ctx, report.EmployeeViewRequest{EmployeeID: 1, StartDate: "2025-08-01"})
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs.ToMap(), "end_date")

	_, err = f.svc.EmployeeView(ctx, report.EmployeeViewRequest{EmployeeID: 1, Month: "2025-09"})
	assert.ErrorIs(t, err, aggregate.ErrFutureMonth)

	f.employeeRepo.On("GetByID", mock.Anything, int64(2)).Return(employee.Employee{ID: 2, AttendanceException: "YES"}, nil)
	_, err = f.svc.EmployeeView(ctx, report.EmployeeViewRequest{EmployeeID: 2})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	f.attendanceRepo.AssertNotCalled(t, "ListRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReportService_MonthlyReport_PastMonth(t *testing.T) {
	f := newFixture()
	empID := int64(1)
	julyStart := civil.Date{Year: 2025, Month: time.July, Day: 1}
	julyEnd := civil.Date{Year: 2025, Month: time.July, Day: 31}

	f.employeeRepo.On("GetByID", mock.Anything, empID).Return(employee.Employee{ID: 1, Name: "Ayu"}, nil)
	f.attendanceRepo.On("ListRange", mock.Anything, julyStart, julyEnd, &empID).Return([]attendance.Record{
		{ID: 1, EmployeeID: 1, Date: julyStart, CheckIn: nine, CheckOut: five, Overtime: civil.MinutesOf(90)},
	}, nil)

	got, err := f.svc.MonthlyReport(context.Background(), report.MonthlyReportRequest{EmployeeID: 1, Month: "2025-07"})
	require.NoError(t, err)
	assert.Equal(t, "2025-07", got.Month)
	assert.Equal(t, "July 2025", got.DisplayMonth)
	assert.Len(t, got.Attendance, 31)
	assert.Equal(t, "1h 30m", got.Attendance[0].OvertimeDisplay)
	assert.Equal(t, aggregate.MonthlyStats{
		TotalPresent:         1,
		TotalAbsent:          30,
		TotalWorkedMinutes:   480,
		TotalHours:           8,
		TotalOvertimeMinutes: 90,
	}, got.Stats)
}

func TestReportService_ExportMonthlyReport(t *testing.T) {
	f := newFixture()
	empID := int64(1)

	f.employeeRepo.On("GetByID", mock.Anything, empID).Return(employee.Employee{ID: 1, Name: "Ayu"}, nil)
	f.attendanceRepo.On("ListRange", mock.Anything, d(1), d(7), &empID).Return(nil, nil)

	file, err := f.svc.ExportMonthlyReport(context.Background(), report.ExportRequest{
		MonthlyReportRequest: report.MonthlyReportRequest{EmployeeID: 1, Month: "2025-08"},
		Format:               report.FormatXLSX,
	})
	require.NoError(t, err)
	assert.Equal(t, export.ContentTypeXLSX, file.ContentType)
	assert.Equal(t, "attendance_ayu_2025-08.xlsx", file.Filename)
	assert.NotEmpty(t, file.Content)

	_, err = f.svc.ExportMonthlyReport(context.Background(), report.ExportRequest{
		MonthlyReportRequest: report.MonthlyReportRequest{EmployeeID: 1},
		Format:               "csv",
	})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs.ToMap(), "format")
}
