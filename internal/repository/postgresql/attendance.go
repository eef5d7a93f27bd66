package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/civil"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceSelect = `
	SELECT a.id, a.emp_id, a.attendance_date, a.check_in, a.check_out, a.overtime,
		   a.created_at, a.updated_at, e.name
	FROM attendance a
	LEFT JOIN employees e ON e.emp_id = a.emp_id
`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var (
		rec      attendance.Record
		date     time.Time
		checkIn  pgtype.Time
		checkOut pgtype.Time
		overtime *int
	)

	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &date, &checkIn, &checkOut, &overtime,
		&rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName,
	)
	if err != nil {
		return attendance.Record{}, err
	}

	rec.Date = civil.DateOf(date)
	rec.CheckIn = civil.TimeOfDayFromMicros(checkIn.Microseconds, checkIn.Valid)
	rec.CheckOut = civil.TimeOfDayFromMicros(checkOut.Microseconds, checkOut.Valid)
	rec.Overtime = civil.MinutesFromPtr(overtime)
	return rec, nil
}

func collectRecords(rows pgx.Rows) ([]attendance.Record, error) {
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}
	return records, nil
}

func dateArg(d civil.Date) pgtype.Date {
	return pgtype.Date{Time: d.In(time.UTC), Valid: !d.IsZero()}
}

func timeArg(t civil.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: t.Micros(), Valid: t.Valid}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance (emp_id, attendance_date, check_in, check_out, overtime)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		dateArg(record.Date),
		timeArg(record.CheckIn),
		timeArg(record.CheckOut),
		record.Overtime.Ptr(),
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return record, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id int64) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	rec, err := scanRecord(q.QueryRow(ctx, attendanceSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance %d: %w", id, err)
	}

	return rec, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance
		SET emp_id = $1, attendance_date = $2, check_in = $3, check_out = $4, overtime = $5,
			updated_at = NOW()
		WHERE id = $6
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		dateArg(record.Date),
		timeArg(record.CheckIn),
		timeArg(record.CheckOut),
		record.Overtime.Ptr(),
		record.ID,
	).Scan(&record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to update attendance %d: %w", record.ID, err)
	}

	return record, nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, a.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.Date != nil {
		baseWhere += fmt.Sprintf(" AND a.attendance_date = $%d", argIdx)
		args = append(args, dateArg(*filter.Date))
		argIdx++
	}
	if filter.EmployeeID != nil {
		baseWhere += fmt.Sprintf(" AND a.emp_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	query := attendanceSelect + ` WHERE ` + baseWhere + ` ORDER BY a.attendance_date DESC, a.id DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}
	return collectRecords(rows)
}

// ListRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListRange(ctx context.Context, start, end civil.Date, employeeID *int64) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "a.attendance_date >= $1 AND a.attendance_date <= $2"
	args := []interface{}{dateArg(start), dateArg(end)}

	if employeeID != nil {
		baseWhere += " AND a.emp_id = $3"
		args = append(args, *employeeID)
	}

	query := attendanceSelect + ` WHERE ` + baseWhere + ` ORDER BY a.attendance_date, a.id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance range: %w", err)
	}
	return collectRecords(rows)
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, attendanceSelect+` WHERE a.emp_id = $1 ORDER BY a.attendance_date DESC, a.id DESC`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance for employee %d: %w", employeeID, err)
	}
	return collectRecords(rows)
}
