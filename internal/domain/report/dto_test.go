package report

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-portal/internal/pkg/aggregate"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/civil"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-08-07, a Thursday before the cycle boundary.
var today = civil.Date{Year: 2025, Month: 8, Day: 7}

func day(m, d int) civil.Date {
	return civil.Date{Year: 2025, Month: time.Month(m), Day: d}
}

func TestEmployeeViewRequest_Validate(t *testing.T) {
	tests := []struct {
		name   string
		req    EmployeeViewRequest
		fields []string
	}{
		{name: "no selector", req: EmployeeViewRequest{EmployeeID: 1}},
		{name: "month", req: EmployeeViewRequest{EmployeeID: 1, Month: "2025-07"}},
		{name: "bad id", req: EmployeeViewRequest{}, fields: []string{"id"}},
		{name: "bad month", req: EmployeeViewRequest{EmployeeID: 1, Month: "07-2025"}, fields: []string{"month"}},
		{name: "bad preset", req: EmployeeViewRequest{EmployeeID: 1, Preset: "yesterday"}, fields: []string{"preset"}},
		{name: "half range", req: EmployeeViewRequest{EmployeeID: 1, StartDate: "2025-08-01"}, fields: []string{"end_date"}},
		{
			name:   "inverted range",
			req:    EmployeeViewRequest{EmployeeID: 1, StartDate: "2025-08-10", EndDate: "2025-08-01"},
			fields: []string{"end_date"},
		},
		{
			name: "full leap year",
			req:  EmployeeViewRequest{EmployeeID: 1, StartDate: "2024-01-01", EndDate: "2024-12-31"},
		},
		{
			name:   "range longer than a year",
			req:    EmployeeViewRequest{EmployeeID: 1, StartDate: "0001-01-01", EndDate: "9999-12-31"},
			fields: []string{"end_date"},
		},
		{
			name:   "two selectors",
			req:    EmployeeViewRequest{EmployeeID: 1, Month: "2025-08", Preset: "last_7_days"},
			fields: []string{"range"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			for _, f := range tt.fields {
				assert.Contains(t, verrs.ToMap(), f)
			}
		})
	}
}

func TestEmployeeViewRequest_ResolveRange(t *testing.T) {
	tests := []struct {
		name  string
		req   EmployeeViewRequest
		want  aggregate.Range
		label string
	}{
		{
			name:  "defaults to current month",
			req:   EmployeeViewRequest{EmployeeID: 1},
			want:  aggregate.Range{Start: day(8, 1), End: day(8, 7)},
			label: "August 2025",
		},
		{
			name:  "month",
			req:   EmployeeViewRequest{EmployeeID: 1, Month: "2025-07"},
			want:  aggregate.Range{Start: day(7, 1), End: day(7, 31)},
			label: "July 2025",
		},
		{
			name:  "preset",
			req:   EmployeeViewRequest{EmployeeID: 1, Preset: "last_7_days"},
			want:  aggregate.Range{Start: day(7, 31), End: day(8, 7)},
			label: "last_7_days",
		},
		{
			name:  "explicit dates",
			req:   EmployeeViewRequest{EmployeeID: 1, StartDate: "2025-08-01", EndDate: "2025-08-03"},
			want:  aggregate.Range{Start: day(8, 1), End: day(8, 3)},
			label: "01/08/2025 - 03/08/2025",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, label, err := tt.req.ResolveRange(today)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.label, label)
		})
	}
}

func TestEmployeeViewRequest_ResolveRangeFutureMonth(t *testing.T) {
	req := EmployeeViewRequest{EmployeeID: 1, Month: "2025-09"}

	_, _, err := req.ResolveRange(today)
	assert.ErrorIs(t, err, aggregate.ErrFutureMonth)
}

func TestExportRequest_Validate(t *testing.T) {
	req := ExportRequest{MonthlyReportRequest: MonthlyReportRequest{EmployeeID: 0, Month: "bad"}, Format: "csv"}

	var verrs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &verrs)
	m := verrs.ToMap()
	assert.Contains(t, m, "id")
	assert.Contains(t, m, "month")
	assert.Contains(t, m, "format")
}

func TestDayViewCacheKey(t *testing.T) {
	assert.Equal(t, "views:day:2025-08-07", DayViewCacheKey(today))
}
