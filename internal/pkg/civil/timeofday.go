package civil

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel is how a missing time or date is shown to users.
const Sentinel = "-"

var ErrInvalidTimeOfDay = errors.New("invalid time of day")

// TimeOfDay is an optional wall-clock time with second precision.
// The zero value is "not set".
type TimeOfDay struct {
	Seconds int
	Valid   bool
}

func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay{Seconds: hour*3600 + minute*60 + second, Valid: true}
}

// ParseTimeOfDay accepts HH:MM or HH:MM:SS. Empty strings, "-" and "null" yield an unset value.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	if isBlank(s) {
		return TimeOfDay{}, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	limits := []int{24, 60, 60}
	values := make([]int, 3)
	for i, p := range parts {
		// Postgres renders fractional seconds for TIME columns.
		if i == 2 {
			p, _, _ = strings.Cut(p, ".")
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n >= limits[i] {
			return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
		}
		values[i] = n
	}

	return NewTimeOfDay(values[0], values[1], values[2]), nil
}

// TimeOfDayFromMicros builds a value from microseconds since midnight, as pgtype.Time stores it.
func TimeOfDayFromMicros(us int64, valid bool) TimeOfDay {
	if !valid {
		return TimeOfDay{}
	}
	return TimeOfDay{Seconds: int(us / 1_000_000), Valid: true}
}

func (t TimeOfDay) Micros() int64 {
	return int64(t.Seconds) * 1_000_000
}

func (t TimeOfDay) Hour() int   { return t.Seconds / 3600 }
func (t TimeOfDay) Minute() int { return t.Seconds % 3600 / 60 }
func (t TimeOfDay) Second() int { return t.Seconds % 60 }

// MinuteOfDay drops seconds.
func (t TimeOfDay) MinuteOfDay() int {
	return t.Seconds / 60
}

// String renders HH:MM:SS, or "" when unset.
func (t TimeOfDay) String() string {
	if !t.Valid {
		return ""
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// OrSentinel renders HH:MM:SS, or "-" when unset.
func (t TimeOfDay) OrSentinel() string {
	if !t.Valid {
		return Sentinel
	}
	return t.String()
}

func (t TimeOfDay) Before(u TimeOfDay) bool {
	return t.Seconds < u.Seconds
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTimeOfDay, string(data))
	}
	if s == nil {
		*t = TimeOfDay{}
		return nil
	}
	parsed, err := ParseTimeOfDay(*s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func isBlank(s string) bool {
	return s == "" || s == Sentinel || strings.EqualFold(s, "null")
}
