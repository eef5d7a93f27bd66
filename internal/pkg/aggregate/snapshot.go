package aggregate

import (
	"github.com/cmlabs-hris/attendance-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-portal/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/civil"
)

// SnapshotEntry is one employee's row in the single-day view.
type SnapshotEntry struct {
	EmployeeID      int64
	Name            string
	PhoneNumber     string
	CheckIn         civil.TimeOfDay
	CheckOut        civil.TimeOfDay
	OvertimeMinutes int
	Status          Status
}

type DayStats struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Absent  int `json:"absent"`
}

// DaySnapshot builds one entry per employee for date, in employee order. Unlike MergeByKey,
// when an employee has several rows for the day the last one in input order is used as is.
func DaySnapshot(employees []employee.Employee, records []attendance.Record, date civil.Date) []SnapshotEntry {
	latest := make(map[int64]attendance.Record)
	for _, r := range records {
		if r.Date != date {
			continue
		}
		latest[r.EmployeeID] = r
	}

	entries := make([]SnapshotEntry, 0, len(employees))
	for _, emp := range employees {
		entry := SnapshotEntry{
			EmployeeID:  emp.ID,
			Name:        emp.Name,
			PhoneNumber: emp.PhoneNumber,
			Status:      StatusAbsent,
		}
		if r, ok := latest[emp.ID]; ok {
			entry.CheckIn = r.CheckIn
			entry.CheckOut = r.CheckOut
			entry.OvertimeMinutes = r.Overtime.OrZero()
			if r.HasPunch() {
				entry.Status = StatusPresent
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

func SummarizeDay(entries []SnapshotEntry) DayStats {
	stats := DayStats{Total: len(entries)}
	for _, e := range entries {
		if e.Status == StatusPresent {
			stats.Present++
		} else {
			stats.Absent++
		}
	}
	return stats
}
