package report

import (
	"fmt"

	"github.com/cmlabs-hris/attendance-portal/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/aggregate"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/civil"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/validator"
)

const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

var ExportFormats = []string{FormatXLSX, FormatPDF}

// ========================================
// DAY VIEW
// ========================================

type DayViewRequest struct {
	// Date defaults to today when empty
	Date string
}

func (r *DayViewRequest) Validate() error {
	if validator.IsEmpty(r.Date) {
		return nil
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		return validator.ValidationErrors{{Field: "date", Message: "must be in YYYY-MM-DD format"}}
	}
	return nil
}

type DayViewEntry struct {
	EmployeeID      int64            `json:"emp_id"`
	Name            string           `json:"Name"`
	PhoneNumber     string           `json:"PhoneNumber"`
	CheckIn         string           `json:"check_in"`
	CheckOut        string           `json:"check_out"`
	CheckInDisplay  string           `json:"check_in_display"`
	CheckOutDisplay string           `json:"check_out_display"`
	OvertimeMinutes int              `json:"overtime"`
	OvertimeDisplay string           `json:"overtime_display"`
	Worked          string           `json:"worked_hours"`
	Status          aggregate.Status `json:"status"`
}

type DayViewResponse struct {
	Date        civil.Date         `json:"date"`
	DisplayDate string             `json:"display_date"`
	Entries     []DayViewEntry     `json:"entries"`
	Stats       aggregate.DayStats `json:"stats"`
}

func NewDayViewEntry(e aggregate.SnapshotEntry) DayViewEntry {
	return DayViewEntry{
		EmployeeID:      e.EmployeeID,
		Name:            e.Name,
		PhoneNumber:     e.PhoneNumber,
		CheckIn:         e.CheckIn.OrSentinel(),
		CheckOut:        e.CheckOut.OrSentinel(),
		CheckInDisplay:  aggregate.Time12h(e.CheckIn),
		CheckOutDisplay: aggregate.Time12h(e.CheckOut),
		OvertimeMinutes: e.OvertimeMinutes,
		OvertimeDisplay: aggregate.FormatOvertime(civil.MinutesOf(e.OvertimeMinutes)),
		Worked:          aggregate.FormatWorked(e.CheckIn, e.CheckOut),
		Status:          e.Status,
	}
}

// ========================================
// EMPLOYEE RANGE VIEW
// ========================================

// EmployeeViewRequest selects a range by month, preset or explicit dates. At most one may be
// set; none means the current month.
type EmployeeViewRequest struct {
	EmployeeID  int64
	Month       string
	Preset      string
	StartDate   string
	EndDate     string
	MarkSundays bool
}

func (r *EmployeeViewRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "must be a positive integer"})
	}

	selectors := 0
	if !validator.IsEmpty(r.Month) {
		selectors++
		if _, ok := validator.IsValidMonth(r.Month); !ok {
			errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
		}
	}
	if !validator.IsEmpty(r.Preset) {
		selectors++
		if _, err := aggregate.ParsePreset(r.Preset); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "preset",
				Message: "must be one of last_7_days, last_30_days, this_cycle, last_cycle",
			})
		}
	}

	hasStart, hasEnd := !validator.IsEmpty(r.StartDate), !validator.IsEmpty(r.EndDate)
	if hasStart || hasEnd {
		selectors++
		start, startOK := validator.IsValidDate(r.StartDate)
		end, endOK := validator.IsValidDate(r.EndDate)
		switch {
		case !hasStart:
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date is required with end_date"})
		case !startOK:
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
		}
		switch {
		case !hasEnd:
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date is required with start_date"})
		case !endOK:
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be in YYYY-MM-DD format"})
		}
		switch {
		case !startOK || !endOK:
		case end.Before(start):
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be on or after start_date"})
		case end.DaysSince(start) >= aggregate.MaxRangeDays:
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: fmt.Sprintf("range must not exceed %d days", aggregate.MaxRangeDays),
			})
		}
	}

	if selectors > 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "range",
			Message: "use only one of month, preset, or start_date/end_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DayRow is a reconciled day ready for display.
type DayRow struct {
	Date            civil.Date       `json:"date"`
	DisplayDate     string           `json:"display_date"`
	Weekday         string           `json:"day"`
	CheckIn         string           `json:"check_in"`
	CheckOut        string           `json:"check_out"`
	CheckInDisplay  string           `json:"check_in_display"`
	CheckOutDisplay string           `json:"check_out_display"`
	OvertimeMinutes int              `json:"overtime"`
	OvertimeDisplay string           `json:"overtime_display"`
	WorkedMinutes   int              `json:"worked_minutes"`
	Worked          string           `json:"worked_hours"`
	Status          aggregate.Status `json:"status"`
}

func NewDayRow(e aggregate.DayEntry) DayRow {
	return DayRow{
		Date:            e.Date,
		DisplayDate:     aggregate.DisplayDate(e.Date),
		Weekday:         e.Date.Weekday().String(),
		CheckIn:         e.CheckIn.OrSentinel(),
		CheckOut:        e.CheckOut.OrSentinel(),
		CheckInDisplay:  aggregate.Time12h(e.CheckIn),
		CheckOutDisplay: aggregate.Time12h(e.CheckOut),
		OvertimeMinutes: e.OvertimeMinutes,
		OvertimeDisplay: e.Overtime(),
		WorkedMinutes:   e.WorkedMinutes(),
		Worked:          e.Worked(),
		Status:          e.Status,
	}
}

func NewDayRows(entries []aggregate.DayEntry) []DayRow {
	rows := make([]DayRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, NewDayRow(e))
	}
	return rows
}

type EmployeeViewResponse struct {
	Employee employee.EmployeeResponse `json:"employee"`
	Range    aggregate.Range           `json:"range"`
	Label    string                    `json:"label"`
	Days     []DayRow                  `json:"attendance"`
	Stats    aggregate.MonthlyStats    `json:"stats"`

	// SkippedRecords counts rows dropped for missing employee or date
	SkippedRecords int `json:"skipped_records,omitempty"`
}

// ResolveRange turns a validated request into a range and its display label. With no
// selector it returns the month containing today.
func (r *EmployeeViewRequest) ResolveRange(today civil.Date) (aggregate.Range, string, error) {
	switch {
	case !validator.IsEmpty(r.Month):
		month, err := civil.ParseMonth(r.Month)
		if err != nil {
			return aggregate.Range{}, "", err
		}
		rng, err := aggregate.MonthRange(month, today)
		return rng, aggregate.DisplayMonth(month), err
	case !validator.IsEmpty(r.Preset):
		preset, err := aggregate.ParsePreset(r.Preset)
		if err != nil {
			return aggregate.Range{}, "", err
		}
		rng, err := aggregate.ResolvePreset(preset, today)
		return rng, string(preset), err
	case !validator.IsEmpty(r.StartDate) || !validator.IsEmpty(r.EndDate):
		start, err := civil.ParseDate(r.StartDate)
		if err != nil {
			return aggregate.Range{}, "", err
		}
		end, err := civil.ParseDate(r.EndDate)
		if err != nil {
			return aggregate.Range{}, "", err
		}
		rng, err := aggregate.NewRange(start, end)
		return rng, aggregate.DisplayDate(start) + " - " + aggregate.DisplayDate(end), err
	default:
		month := civil.MonthOf(today)
		rng, err := aggregate.MonthRange(month, today)
		return rng, aggregate.DisplayMonth(month), err
	}
}

// ========================================
// MONTHLY REPORT
// ========================================

type MonthlyReportRequest struct {
	EmployeeID int64
	// Month defaults to the current month when empty
	Month string
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "must be a positive integer"})
	}
	if !validator.IsEmpty(r.Month) {
		if _, ok := validator.IsValidMonth(r.Month); !ok {
			errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyReportResponse struct {
	Employee     employee.EmployeeResponse `json:"employee"`
	Month        string                    `json:"month"`
	DisplayMonth string                    `json:"display_month"`
	Attendance   []DayRow                  `json:"attendance"`
	Stats        aggregate.MonthlyStats    `json:"stats"`
}

// ========================================
// EXPORT
// ========================================

type ExportRequest struct {
	MonthlyReportRequest
	Format string
}

func (r *ExportRequest) Validate() error {
	var errs validator.ValidationErrors
	if err := r.MonthlyReportRequest.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}
	if !validator.IsInSlice(r.Format, ExportFormats) {
		errs = append(errs, validator.ValidationError{Field: "format", Message: "must be one of xlsx, pdf"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ExportFile is a rendered report ready to be streamed to the client.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// DayViewCacheKey is where a rendered day view is cached.
func DayViewCacheKey(d civil.Date) string {
	return "views:day:" + d.String()
}
