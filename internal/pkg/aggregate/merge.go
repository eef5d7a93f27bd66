package aggregate

import (
	"github.com/cmlabs-hris/attendance-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/civil"
)

type recordKey struct {
	employeeID int64
	date       civil.Date
}

// MergeByKey collapses rows sharing (employee, date) into one: the earliest check-in and the
// latest check-out win, every other field comes from the first row seen for the key.
// Rows missing an employee or a date are dropped and counted in skipped.
// The result keeps the order in which keys were first seen.
func MergeByKey(records []attendance.Record) (merged []attendance.Record, skipped int) {
	index := make(map[recordKey]int, len(records))

	for _, r := range records {
		if r.EmployeeID == 0 || r.Date.IsZero() {
			skipped++
			continue
		}

		key := recordKey{employeeID: r.EmployeeID, date: r.Date}
		i, seen := index[key]
		if !seen {
			index[key] = len(merged)
			merged = append(merged, r)
			continue
		}

		m := &merged[i]
		if r.CheckIn.Valid && (!m.CheckIn.Valid || r.CheckIn.Before(m.CheckIn)) {
			m.CheckIn = r.CheckIn
		}
		if r.CheckOut.Valid && (!m.CheckOut.Valid || m.CheckOut.Before(r.CheckOut)) {
			m.CheckOut = r.CheckOut
		}
	}

	return merged, skipped
}

// ForEmployee returns the rows belonging to one employee, preserving order.
func ForEmployee(records []attendance.Record, employeeID int64) []attendance.Record {
	var out []attendance.Record
	for _, r := range records {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out
}
