package employee

import (
	"strings"
	"time"
)

type Employee struct {
	ID                  int64
	Name                string
	PhoneNumber         string
	AttendanceException string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// AttendanceExceptionYes marks employees who are left out of attendance views.
const AttendanceExceptionYes = "yes"

// IsAttendanceException reports whether the employee is flagged "yes", ignoring case and surrounding whitespace.
func (e Employee) IsAttendanceException() bool {
	return strings.EqualFold(strings.TrimSpace(e.AttendanceException), AttendanceExceptionYes)
}

// FilterActive drops exception employees, keeping input order.
func FilterActive(employees []Employee) []Employee {
	active := make([]Employee, 0, len(employees))
	for _, e := range employees {
		if e.IsAttendanceException() {
			continue
		}
		active = append(active, e)
	}
	return active
}
