package civil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidMinutes = errors.New("invalid minutes")

// NullMinutes is an optional whole number of minutes. On the wire it may arrive as a
// number, a numeric string, an empty string or null.
type NullMinutes struct {
	Minutes int
	Valid   bool
}

func MinutesOf(n int) NullMinutes {
	return NullMinutes{Minutes: n, Valid: true}
}

func ParseMinutes(s string) (NullMinutes, error) {
	s = strings.TrimSpace(s)
	if isBlank(s) {
		return NullMinutes{}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != float64(int(f)) {
			return NullMinutes{}, fmt.Errorf("%w: %q", ErrInvalidMinutes, s)
		}
		n = int(f)
	}
	return MinutesOf(n), nil
}

// OrZero returns the minutes, treating unset as 0.
func (m NullMinutes) OrZero() int {
	if !m.Valid {
		return 0
	}
	return m.Minutes
}

// Ptr is used when binding to nullable SQL columns.
func (m NullMinutes) Ptr() *int {
	if !m.Valid {
		return nil
	}
	n := m.Minutes
	return &n
}

func MinutesFromPtr(p *int) NullMinutes {
	if p == nil {
		return NullMinutes{}
	}
	return MinutesOf(*p)
}

func (m NullMinutes) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(m.Minutes)), nil
}

func (m *NullMinutes) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = NullMinutes{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidMinutes, string(data))
		}
		parsed, err := ParseMinutes(s)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	}
	parsed, err := ParseMinutes(string(data))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
