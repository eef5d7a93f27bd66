package attendance

import (
	"context"

	"github.com/cmlabs-hris/attendance-portal/internal/pkg/civil"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	Create(ctx context.Context, record Record) (Record, error)

	// GetByID returns ErrRecordNotFound when no row matches
	GetByID(ctx context.Context, id int64) (Record, error)

	Update(ctx context.Context, record Record) (Record, error)

	Delete(ctx context.Context, id int64) error

	// List returns rows matching the optional date and employee filters, newest first
	List(ctx context.Context, filter RecordFilter) ([]Record, error)

	// ListRange returns rows with start <= date <= end, oldest first
	ListRange(ctx context.Context, start, end civil.Date, employeeID *int64) ([]Record, error)

	ListByEmployee(ctx context.Context, employeeID int64) ([]Record, error)
}
