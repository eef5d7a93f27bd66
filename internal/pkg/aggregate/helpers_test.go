package aggregate

import (
	"testing"

	"github.com/cmlabs-hris/attendance-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/civil"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) civil.Date {
	t.Helper()
	d, err := civil.ParseDate(s)
	require.NoError(t, err)
	return d
}

func tod(t *testing.T, s string) civil.TimeOfDay {
	t.Helper()
	v, err := civil.ParseTimeOfDay(s)
	require.NoError(t, err)
	return v
}

func record(t *testing.T, id, empID int64, day, in, out string, overtime *int) attendance.Record {
	t.Helper()
	return attendance.Record{
		ID:         id,
		EmployeeID: empID,
		Date:       date(t, day),
		CheckIn:    tod(t, in),
		CheckOut:   tod(t, out),
		Overtime:   civil.MinutesFromPtr(overtime),
	}
}

func intPtr(n int) *int { return &n }
