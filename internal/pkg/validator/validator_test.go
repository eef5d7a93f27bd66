package validator

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2024-02-29"}
	invalid := []string{"2023-13-01", "2023-02-30", "2023-1-1", "01-01-2023", "2025-08-01T00:00:00Z", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}

	d, _ := IsValidDate("2024-02-29")
	if d.Year != 2024 || d.Month != time.February || d.Day != 29 {
		t.Errorf("IsValidDate returned %v", d)
	}
}

func TestIsValidMonth(t *testing.T) {
	valid := []string{"2025-08", "1999-12"}
	invalid := []string{"2025-13", "2025-8-01", "August 2025", ""}
	for _, s := range valid {
		if _, ok := IsValidMonth(s); !ok {
			t.Errorf("IsValidMonth(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidMonth(s); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", s)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	valid := []string{"", "-", "09:00", "09:00:00", "23:59:59", "08:15:30.123456"}
	invalid := []string{"24:00", "9", "09:60", "ab:cd", "09:00:00:00"}
	for _, s := range valid {
		if !IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	formats := []string{"xlsx", "pdf"}
	if !IsInSlice("pdf", formats) {
		t.Error("IsInSlice(pdf) = false, want true")
	}
	if IsInSlice("csv", formats) {
		t.Error("IsInSlice(csv) = true, want false")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "emp_id", Message: "must be a positive integer"},
		{Field: "attendance_date", Message: "attendance_date is required"},
	}
	want := "emp_id: must be a positive integer; attendance_date: attendance_date is required"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}
	m := errs.ToMap()
	if len(m) != 2 || m["emp_id"] != "must be a positive integer" {
		t.Errorf("ToMap() = %v", m)
	}
}
