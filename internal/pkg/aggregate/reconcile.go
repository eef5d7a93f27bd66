package aggregate

import (
	"time"

	"github.com/cmlabs-hris/attendance-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/civil"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	// StatusSunday is never produced here; callers may relabel absent Sundays with it.
	StatusSunday Status = "sunday"
)

// DayEntry is one calendar day of an employee's reconciled attendance.
type DayEntry struct {
	Date            civil.Date
	CheckIn         civil.TimeOfDay
	CheckOut        civil.TimeOfDay
	OvertimeMinutes int
	Status          Status

	// RecordID is 0 for synthesized absent days.
	RecordID int64
}

func (e DayEntry) WorkedMinutes() int {
	return WorkedMinutes(e.CheckIn, e.CheckOut)
}

func (e DayEntry) Worked() string {
	return FormatWorked(e.CheckIn, e.CheckOut)
}

func (e DayEntry) Overtime() string {
	return FormatOvertime(civil.MinutesOf(e.OvertimeMinutes))
}

func (e DayEntry) IsSunday() bool {
	return e.Date.Weekday() == time.Sunday
}

// Reconcile lays deduplicated rows of a single employee over r, producing exactly one entry
// per calendar day in ascending order. Days without a row are absent with sentinel times.
// Rows outside r are ignored.
func Reconcile(records []attendance.Record, r Range) ([]DayEntry, error) {
	days, err := DateRange(r.Start, r.End)
	if err != nil {
		return nil, err
	}

	byDate := make(map[civil.Date]attendance.Record, len(records))
	for _, rec := range records {
		if !r.Contains(rec.Date) {
			continue
		}
		if _, ok := byDate[rec.Date]; ok {
			continue
		}
		byDate[rec.Date] = rec
	}

	entries := make([]DayEntry, 0, len(days))
	for _, d := range days {
		rec, ok := byDate[d]
		if !ok {
			entries = append(entries, DayEntry{Date: d, Status: StatusAbsent})
			continue
		}
		entries = append(entries, entryFromRecord(rec))
	}
	return entries, nil
}

func entryFromRecord(rec attendance.Record) DayEntry {
	status := StatusAbsent
	if rec.HasPunch() {
		status = StatusPresent
	}
	return DayEntry{
		Date:            rec.Date,
		CheckIn:         rec.CheckIn,
		CheckOut:        rec.CheckOut,
		OvertimeMinutes: rec.Overtime.OrZero(),
		Status:          status,
		RecordID:        rec.ID,
	}
}

// MarkSundays relabels absent Sundays; present Sundays keep their status. entries is not modified.
func MarkSundays(entries []DayEntry) []DayEntry {
	out := make([]DayEntry, len(entries))
	for i, e := range entries {
		if e.Status == StatusAbsent && e.IsSunday() {
			e.Status = StatusSunday
		}
		out[i] = e
	}
	return out
}
