package attendance

import (
	"strconv"
	"strings"

	"github.com/cmlabs-hris/attendance-portal/internal/pkg/civil"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/validator"
)

// RecordRequest is the body of POST /api/attendance/crud and PUT /api/attendance/crud/{id}.
type RecordRequest struct {
	ID             int64             `json:"-"`
	EmployeeID     int64             `json:"emp_id"`
	AttendanceDate string            `json:"attendance_date"`
	CheckIn        string            `json:"check_in"`
	CheckOut       string            `json:"check_out"`
	Overtime       civil.NullMinutes `json:"overtime"`
}

func (r *RecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "emp_id",
			Message: "must be a positive integer",
		})
	}

	if validator.IsEmpty(r.AttendanceDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_date",
			Message: "attendance_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.AttendanceDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_date",
			Message: "must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidTimeOfDay(r.CheckIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in",
			Message: "must be in HH:MM or HH:MM:SS format",
		})
	}
	if !validator.IsValidTimeOfDay(r.CheckOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out",
			Message: "must be in HH:MM or HH:MM:SS format",
		})
	}

	if r.Overtime.Valid && r.Overtime.Minutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime",
			Message: "must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToRecord converts a validated request into a Record.
func (r RecordRequest) ToRecord() Record {
	date, _ := civil.ParseDate(r.AttendanceDate)
	checkIn, _ := civil.ParseTimeOfDay(r.CheckIn)
	checkOut, _ := civil.ParseTimeOfDay(r.CheckOut)
	return Record{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Date:       date,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Overtime:   r.Overtime,
	}
}

// RecordFilter narrows GET /api/attendance/crud.
type RecordFilter struct {
	Date       *civil.Date
	EmployeeID *int64
}

// ParseRecordFilter builds a filter from raw query values. Empty values mean "no filter".
func ParseRecordFilter(date, employeeID string) (RecordFilter, error) {
	var (
		filter RecordFilter
		errs   validator.ValidationErrors
	)

	if !validator.IsEmpty(date) {
		d, ok := validator.IsValidDate(date)
		if ok {
			filter.Date = &d
		} else {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if !validator.IsEmpty(employeeID) {
		id, err := parseEmployeeID(employeeID)
		if err == nil {
			filter.EmployeeID = &id
		} else {
			errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a positive integer"})
		}
	}

	if len(errs) > 0 {
		return RecordFilter{}, errs
	}
	return filter, nil
}

// RangeFilter is the query of GET /api/attendance/range.
type RangeFilter struct {
	StartDate  civil.Date
	EndDate    civil.Date
	EmployeeID *int64
}

func ParseRangeFilter(startDate, endDate, employeeID string) (RangeFilter, error) {
	var (
		filter RangeFilter
		errs   validator.ValidationErrors
	)

	if validator.IsEmpty(startDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date is required"})
	} else if d, ok := validator.IsValidDate(startDate); ok {
		filter.StartDate = d
	} else {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
	}

	if validator.IsEmpty(endDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date is required"})
	} else if d, ok := validator.IsValidDate(endDate); ok {
		filter.EndDate = d
	} else {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be in YYYY-MM-DD format"})
	}

	if !filter.StartDate.IsZero() && !filter.EndDate.IsZero() && filter.EndDate.Before(filter.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be on or after start_date"})
	}

	if !validator.IsEmpty(employeeID) {
		id, err := parseEmployeeID(employeeID)
		if err == nil {
			filter.EmployeeID = &id
		} else {
			errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a positive integer"})
		}
	}

	if len(errs) > 0 {
		return RangeFilter{}, errs
	}
	return filter, nil
}

func parseEmployeeID(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if !validator.IsNumeric(s) {
		return 0, strconv.ErrSyntax
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}

// RecordResponse is the raw row shape served to clients.
type RecordResponse struct {
	ID             int64             `json:"id"`
	EmployeeID     int64             `json:"emp_id"`
	Name           *string           `json:"Name,omitempty"`
	AttendanceDate civil.Date        `json:"attendance_date"`
	CheckIn        civil.TimeOfDay   `json:"check_in"`
	CheckOut       civil.TimeOfDay   `json:"check_out"`
	Overtime       civil.NullMinutes `json:"overtime"`
}

func NewRecordResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:             r.ID,
		EmployeeID:     r.EmployeeID,
		Name:           r.EmployeeName,
		AttendanceDate: r.Date,
		CheckIn:        r.CheckIn,
		CheckOut:       r.CheckOut,
		Overtime:       r.Overtime,
	}
}

func NewRecordResponses(records []Record) []RecordResponse {
	out := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, NewRecordResponse(r))
	}
	return out
}

// ToRecord converts a fetched row back into a Record, as the terminal client does before aggregating.
func (r RecordResponse) ToRecord() Record {
	return Record{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		Date:         r.AttendanceDate,
		CheckIn:      r.CheckIn,
		CheckOut:     r.CheckOut,
		Overtime:     r.Overtime,
		EmployeeName: r.Name,
	}
}

func ToRecords(rows []RecordResponse) []Record {
	out := make([]Record, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToRecord())
	}
	return out
}
