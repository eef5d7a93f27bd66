package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-portal/internal/pkg/civil"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation, strict YYYY-MM-DD
func IsValidDate(dateStr string) (civil.Date, bool) {
	t, err := time.Parse(civil.DateLayout, strings.TrimSpace(dateStr))
	if err != nil {
		return civil.Date{}, false
	}
	return civil.DateOf(t), true
}

// Month validation, YYYY-MM
func IsValidMonth(monthStr string) (civil.Month, bool) {
	m, err := civil.ParseMonth(monthStr)
	return m, err == nil
}

// IsValidTimeOfDay accepts HH:MM, HH:MM:SS or an empty value.
func IsValidTimeOfDay(s string) bool {
	_, err := civil.ParseTimeOfDay(s)
	return err == nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
