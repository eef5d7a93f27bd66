package employee

import "context"

// EmployeeService defines read access to employees for the portal
type EmployeeService interface {
	// ListActive returns employees shown in attendance views and selectors
	ListActive(ctx context.Context) ([]Employee, error)

	// ListAll returns every employee, for the management screen
	ListAll(ctx context.Context) ([]Employee, error)

	// GetWithAttendance returns one employee with all of their attendance rows
	GetWithAttendance(ctx context.Context, id int64) (EmployeeWithAttendanceResponse, error)

	// InvalidateCache drops cached employee lists after writes
	InvalidateCache(ctx context.Context)
}
