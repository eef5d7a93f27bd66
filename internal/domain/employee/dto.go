package employee

import "github.com/cmlabs-hris/attendance-portal/internal/domain/attendance"

// EmployeeResponse keeps the field names the portal front end reads.
type EmployeeResponse struct {
	ID                  int64  `json:"emp_id"`
	Name                string `json:"Name"`
	PhoneNumber         string `json:"PhoneNumber"`
	AttendanceException string `json:"AttendanceException"`
}

type EmployeeWithAttendanceResponse struct {
	EmployeeResponse
	Attendance []attendance.RecordResponse `json:"attendance"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                  e.ID,
		Name:                e.Name,
		PhoneNumber:         e.PhoneNumber,
		AttendanceException: e.AttendanceException,
	}
}

func NewEmployeeResponses(employees []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, NewEmployeeResponse(e))
	}
	return out
}

// ToEmployee converts a fetched employee back into the entity used by aggregation.
func (r EmployeeResponse) ToEmployee() Employee {
	return Employee{
		ID:                  r.ID,
		Name:                r.Name,
		PhoneNumber:         r.PhoneNumber,
		AttendanceException: r.AttendanceException,
	}
}

func ToEmployees(rows []EmployeeResponse) []Employee {
	out := make([]Employee, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToEmployee())
	}
	return out
}
