package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime12h(t *testing.T) {
	tests := map[string]string{
		"13:05:00": "1:05 PM",
		"00:15":    "12:15 AM",
		"12:00":    "12:00 PM",
		"09:30:45": "9:30 AM",
		"":         "-",
		"-":        "-",
		"25:00":    "-",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatTime12h(in), in)
	}
}

func TestFormatDisplayDate(t *testing.T) {
	assert.Equal(t, "07/08/2025", FormatDisplayDate("2025-08-07"))
	assert.Equal(t, "07/08/2025", FormatDisplayDate("2025-08-07T10:00:00Z"))
	assert.Equal(t, InvalidDate, FormatDisplayDate(""))
	assert.Equal(t, InvalidDate, FormatDisplayDate("not a date"))
}

func TestFormatDisplayMonth(t *testing.T) {
	assert.Equal(t, "August 2025", FormatDisplayMonth("2025-08"))
	assert.Equal(t, "January 2024", FormatDisplayMonth("2024-01"))
	assert.Equal(t, InvalidDate, FormatDisplayMonth("2025-13"))
	assert.Equal(t, InvalidDate, FormatDisplayMonth(""))
}
