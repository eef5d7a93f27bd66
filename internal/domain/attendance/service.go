package attendance

import "context"

// AttendanceService defines business logic for attendance record management
type AttendanceService interface {
	// List returns raw rows, optionally narrowed to a date and/or employee
	List(ctx context.Context, filter RecordFilter) ([]RecordResponse, error)

	// ListRange returns raw rows inside an inclusive date range
	ListRange(ctx context.Context, filter RangeFilter) ([]RecordResponse, error)

	Get(ctx context.Context, id int64) (RecordResponse, error)

	Create(ctx context.Context, req RecordRequest) (RecordResponse, error)

	Update(ctx context.Context, req RecordRequest) (RecordResponse, error)

	Delete(ctx context.Context, id int64) error
}
