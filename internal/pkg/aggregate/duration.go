package aggregate

import (
	"fmt"

	"github.com/cmlabs-hris/attendance-portal/internal/pkg/civil"
)

const minutesPerDay = 24 * 60

// WorkedMinutes is (out - in) mod 24h at minute precision, so a check-out past midnight
// counts as the next day. It is 0 when either side is unset.
func WorkedMinutes(checkIn, checkOut civil.TimeOfDay) int {
	if !checkIn.Valid || !checkOut.Valid {
		return 0
	}
	diff := checkOut.MinuteOfDay() - checkIn.MinuteOfDay()
	return ((diff % minutesPerDay) + minutesPerDay) % minutesPerDay
}

// FormatWorked renders the worked duration as "{h}h {m}m".
func FormatWorked(checkIn, checkOut civil.TimeOfDay) string {
	return FormatHoursMinutes(WorkedMinutes(checkIn, checkOut))
}

func FormatHoursMinutes(total int) string {
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}

// FormatOvertime renders "45m", "2h" or "1h 30m". Unset and zero render as "0m".
func FormatOvertime(m civil.NullMinutes) string {
	n := m.OrZero()
	if n < 60 {
		return fmt.Sprintf("%dm", n)
	}
	h, rem := n/60, n%60
	if rem == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, rem)
}
