// Package aggregate turns raw attendance rows into calendar-complete views.
// Every function here is pure: "today" is always passed in by the caller.
package aggregate

import (
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-portal/internal/pkg/civil"
)

var (
	ErrInvalidRange  = errors.New("start date is after end date")
	ErrFutureMonth   = errors.New("month is in the future")
	ErrUnknownPreset = errors.New("unknown preset")
	ErrRangeTooLong  = errors.New("range is too long")
)

// MaxRangeDays caps how many calendar days a single range may span.
const MaxRangeDays = 366

// CycleStartDay is the day of month on which a reporting cycle begins.
const CycleStartDay = 20

// Range is an inclusive span of calendar days.
type Range struct {
	Start civil.Date `json:"start_date"`
	End   civil.Date `json:"end_date"`
}

// Days returns the number of calendar days in r.
func (r Range) Days() int {
	return r.End.DaysSince(r.Start) + 1
}

func (r Range) Contains(d civil.Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// NewRange returns ErrInvalidRange when start is after end and ErrRangeTooLong when the
// span exceeds MaxRangeDays.
func NewRange(start, end civil.Date) (Range, error) {
	if start.After(end) {
		return Range{}, fmt.Errorf("%w: %s > %s", ErrInvalidRange, start, end)
	}
	r := Range{Start: start, End: end}
	if n := r.Days(); n > MaxRangeDays {
		return Range{}, fmt.Errorf("%w: %d days, at most %d allowed", ErrRangeTooLong, n, MaxRangeDays)
	}
	return r, nil
}

// DateRange lists every day from start to end inclusive, ascending.
func DateRange(start, end civil.Date) ([]civil.Date, error) {
	r, err := NewRange(start, end)
	if err != nil {
		return nil, err
	}

	days := make([]civil.Date, 0, r.Days())
	for d := start; !d.After(end); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days, nil
}

// MonthRange resolves a month selector. The current month ends today, never later.
func MonthRange(month civil.Month, today civil.Date) (Range, error) {
	start := month.FirstDay()
	if start.After(today) {
		return Range{}, fmt.Errorf("%w: %s", ErrFutureMonth, month)
	}

	end := month.LastDay()
	if civil.MonthOf(today) == month {
		end = today
	}
	return Range{Start: start, End: end}, nil
}

type Preset string

const (
	PresetLast7Days  Preset = "last_7_days"
	PresetLast30Days Preset = "last_30_days"
	PresetThisCycle  Preset = "this_cycle"
	PresetLastCycle  Preset = "last_cycle"
)

var Presets = []Preset{PresetLast7Days, PresetLast30Days, PresetThisCycle, PresetLastCycle}

func ParsePreset(s string) (Preset, error) {
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
}

// ResolvePreset computes the quick-filter window ending relative to today.
func ResolvePreset(p Preset, today civil.Date) (Range, error) {
	switch p {
	case PresetLast7Days:
		return Range{Start: today.AddDays(-7), End: today}, nil
	case PresetLast30Days:
		return Range{Start: today.AddDays(-30), End: today}, nil
	case PresetThisCycle:
		return Range{Start: cycleStart(today), End: today}, nil
	case PresetLastCycle:
		current := cycleStart(today)
		prev := civil.MonthOf(current).AddMonths(-1)
		return Range{
			Start: civil.Date{Year: prev.Year, Month: prev.Month, Day: CycleStartDay},
			End:   current.AddDays(-1),
		}, nil
	default:
		return Range{}, fmt.Errorf("%w: %q", ErrUnknownPreset, string(p))
	}
}

func cycleStart(today civil.Date) civil.Date {
	m := civil.MonthOf(today)
	if today.Day < CycleStartDay {
		m = m.AddMonths(-1)
	}
	return civil.Date{Year: m.Year, Month: m.Month, Day: CycleStartDay}
}
