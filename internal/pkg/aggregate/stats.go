package aggregate

import "math"

// MonthlyStats totals a reconciled range.
type MonthlyStats struct {
	TotalPresent         int     `json:"total_present"`
	TotalAbsent          int     `json:"total_absent"`
	TotalWorkedMinutes   int     `json:"total_worked_minutes"`
	TotalHours           float64 `json:"total_hours"`
	TotalOvertimeMinutes int     `json:"total_overtime_minutes"`
}

// Summarize counts anything that is not present as absent, including relabeled Sundays.
func Summarize(entries []DayEntry) MonthlyStats {
	var stats MonthlyStats
	for _, e := range entries {
		if e.Status == StatusPresent {
			stats.TotalPresent++
		} else {
			stats.TotalAbsent++
		}
		stats.TotalWorkedMinutes += e.WorkedMinutes()
		stats.TotalOvertimeMinutes += e.OvertimeMinutes
	}
	stats.TotalHours = math.Round(float64(stats.TotalWorkedMinutes)/60*100) / 100
	return stats
}
