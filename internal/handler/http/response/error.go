package response

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-portal/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-portal/internal/domain/report"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/aggregate"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidEmployeeID):
		BadRequest(w, "Invalid employee id", nil)

	// Range resolution errors
	case errors.Is(err, aggregate.ErrInvalidRange):
		BadRequest(w, "Start date must not be after end date", nil)
	case errors.Is(err, aggregate.ErrRangeTooLong):
		BadRequest(w, fmt.Sprintf("Range must not exceed %d days", aggregate.MaxRangeDays), nil)
	case errors.Is(err, aggregate.ErrFutureMonth):
		BadRequest(w, "Cannot select a future month", nil)
	case errors.Is(err, aggregate.ErrUnknownPreset):
		BadRequest(w, "Unknown range preset", nil)

	// Report errors
	case errors.Is(err, report.ErrUnsupportedFormat):
		BadRequest(w, "Unsupported export format", nil)

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
