package attendance

import (
	"time"

	"github.com/cmlabs-hris/attendance-portal/internal/pkg/civil"
)

// Record is one attendance row as stored. Several rows may exist for the same employee and day.
type Record struct {
	ID         int64
	EmployeeID int64
	Date       civil.Date
	CheckIn    civil.TimeOfDay
	CheckOut   civil.TimeOfDay
	Overtime   civil.NullMinutes
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}

// HasPunch reports whether either check-in or check-out is set.
func (r Record) HasPunch() bool {
	return r.CheckIn.Valid || r.CheckOut.Valid
}
