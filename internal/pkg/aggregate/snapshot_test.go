package aggregate

import (
	"testing"

	"github.com/cmlabs-hris/attendance-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-portal/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaySnapshot(t *testing.T) {
	employees := []employee.Employee{
		{ID: 1, Name: "Ayu", PhoneNumber: "0811"},
		{ID: 2, Name: "Budi", PhoneNumber: "0812"},
		{ID: 3, Name: "Citra", PhoneNumber: "0813"},
	}
	records := []attendance.Record{
		record(t, 1, 1, "2025-08-07", "09:00", "", nil),
		record(t, 2, 2, "2025-08-07", "", "", nil),
		record(t, 3, 1, "2025-08-07", "10:00", "18:00", intPtr(15)),
		record(t, 4, 3, "2025-08-06", "08:00", "16:00", nil),
		record(t, 5, 99, "2025-08-07", "08:00", "16:00", nil),
	}

	entries := DaySnapshot(employees, records, date(t, "2025-08-07"))
	require.Len(t, entries, 3)

	assert.Equal(t, "Ayu", entries[0].Name)
	assert.Equal(t, "10:00:00", entries[0].CheckIn.String())
	assert.Equal(t, "18:00:00", entries[0].CheckOut.String())
	assert.Equal(t, 15, entries[0].OvertimeMinutes)
	assert.Equal(t, StatusPresent, entries[0].Status)

	assert.Equal(t, StatusAbsent, entries[1].Status)
	assert.Equal(t, StatusAbsent, entries[2].Status)
	assert.False(t, entries[2].CheckIn.Valid)

	assert.Equal(t, DayStats{Total: 3, Present: 1, Absent: 2}, SummarizeDay(entries))
}

func TestDaySnapshot_LastRowWinsEvenWhenEmpty(t *testing.T) {
	employees := []employee.Employee{{ID: 1, Name: "Ayu"}}
	records := []attendance.Record{
		record(t, 1, 1, "2025-08-07", "09:00", "17:00", nil),
		record(t, 2, 1, "2025-08-07", "", "", nil),
	}

	entries := DaySnapshot(employees, records, date(t, "2025-08-07"))
	require.Len(t, entries, 1)
	assert.Equal(t, StatusAbsent, entries[0].Status)
}
