package aggregate

import (
	"testing"

	"github.com/cmlabs-hris/attendance-portal/internal/pkg/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRange(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  []string
	}{
		{"single day", "2025-08-07", "2025-08-07", []string{"2025-08-07"}},
		{"leap february", "2024-02-27", "2024-03-02", []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"}},
		{"year boundary", "2024-12-30", "2025-01-02", []string{"2024-12-30", "2024-12-31", "2025-01-01", "2025-01-02"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := DateRange(date(t, tt.start), date(t, tt.end))
			require.NoError(t, err)

			got := make([]string, 0, len(days))
			for _, d := range days {
				got = append(got, d.String())
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, Range{Start: date(t, tt.start), End: date(t, tt.end)}.Days(), len(days))
		})
	}
}

func TestDateRange_StartAfterEnd(t *testing.T) {
	_, err := DateRange(date(t, "2025-08-02"), date(t, "2025-08-01"))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestNewRange_MaxSpan(t *testing.T) {
	r, err := NewRange(date(t, "2024-01-01"), date(t, "2024-12-31"))
	require.NoError(t, err)
	assert.Equal(t, MaxRangeDays, r.Days())

	_, err = NewRange(date(t, "2024-01-01"), date(t, "2025-01-01"))
	assert.ErrorIs(t, err, ErrRangeTooLong)

	_, err = DateRange(date(t, "0001-01-01"), date(t, "9999-12-31"))
	assert.ErrorIs(t, err, ErrRangeTooLong)
}

func TestMonthRange(t *testing.T) {
	today := date(t, "2025-08-15")

	tests := []struct {
		name    string
		month   string
		wantErr error
		start   string
		end     string
	}{
		{name: "current month ends today", month: "2025-08", start: "2025-08-01", end: "2025-08-15"},
		{name: "past month ends on last day", month: "2025-07", start: "2025-07-01", end: "2025-07-31"},
		{name: "leap february", month: "2024-02", start: "2024-02-01", end: "2024-02-29"},
		{name: "future month", month: "2025-09", wantErr: ErrFutureMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := civil.ParseMonth(tt.month)
			require.NoError(t, err)

			r, err := MonthRange(m, today)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.start, r.Start.String())
			assert.Equal(t, tt.end, r.End.String())
		})
	}
}

func TestResolvePreset(t *testing.T) {
	tests := []struct {
		today  string
		preset Preset
		start  string
		end    string
	}{
		{"2025-08-10", PresetLast7Days, "2025-08-03", "2025-08-10"},
		{"2025-08-10", PresetLast30Days, "2025-07-11", "2025-08-10"},
		{"2025-08-10", PresetThisCycle, "2025-07-20", "2025-08-10"},
		{"2025-08-10", PresetLastCycle, "2025-06-20", "2025-07-19"},
		{"2025-08-19", PresetThisCycle, "2025-07-20", "2025-08-19"},
		{"2025-08-19", PresetLastCycle, "2025-06-20", "2025-07-19"},
		{"2025-08-20", PresetThisCycle, "2025-08-20", "2025-08-20"},
		{"2025-08-20", PresetLastCycle, "2025-07-20", "2025-08-19"},
		{"2025-01-05", PresetThisCycle, "2024-12-20", "2025-01-05"},
		{"2025-01-05", PresetLastCycle, "2024-11-20", "2024-12-19"},
		{"2025-03-10", PresetLastCycle, "2025-01-20", "2025-02-19"},
	}

	for _, tt := range tests {
		t.Run(tt.today+"/"+string(tt.preset), func(t *testing.T) {
			r, err := ResolvePreset(tt.preset, date(t, tt.today))
			require.NoError(t, err)
			assert.Equal(t, tt.start, r.Start.String())
			assert.Equal(t, tt.end, r.End.String())
		})
	}
}

func TestResolvePreset_Unknown(t *testing.T) {
	_, err := ResolvePreset("next_week", date(t, "2025-08-10"))
	assert.ErrorIs(t, err, ErrUnknownPreset)

	_, err = ParsePreset("next_week")
	assert.ErrorIs(t, err, ErrUnknownPreset)

	p, err := ParsePreset("this_cycle")
	require.NoError(t, err)
	assert.Equal(t, PresetThisCycle, p)
}
