package aggregate

import (
	"fmt"

	"github.com/cmlabs-hris/attendance-portal/internal/pkg/civil"
)

const InvalidDate = "Invalid Date"

// FormatTime12h renders "13:05:00" as "1:05 PM". Unset or unparsable input renders "-".
func FormatTime12h(s string) string {
	t, err := civil.ParseTimeOfDay(s)
	if err != nil || !t.Valid {
		return civil.Sentinel
	}
	return Time12h(t)
}

func Time12h(t civil.TimeOfDay) string {
	if !t.Valid {
		return civil.Sentinel
	}
	suffix := "AM"
	h := t.Hour()
	if h >= 12 {
		suffix = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, t.Minute(), suffix)
}

// FormatDisplayDate renders a date as dd/mm/yyyy.
func FormatDisplayDate(s string) string {
	d, err := civil.ParseDate(s)
	if err != nil {
		return InvalidDate
	}
	return DisplayDate(d)
}

func DisplayDate(d civil.Date) string {
	if d.IsZero() {
		return InvalidDate
	}
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, int(d.Month), d.Year)
}

// FormatDisplayMonth renders "2025-08" as "August 2025".
func FormatDisplayMonth(s string) string {
	m, err := civil.ParseMonth(s)
	if err != nil {
		return InvalidDate
	}
	return DisplayMonth(m)
}

func DisplayMonth(m civil.Month) string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}
