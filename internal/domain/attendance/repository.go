package attendance

import "context"

// AttendanceRepository defines data access for attendance records. Records
// are insert-only; no update or delete exists.
type AttendanceRepository interface {
	// Create inserts a new attendance record and returns it with
	// store-generated fields.
	Create(ctx context.Context, record Attendance) (Attendance, error)

	// ListByDate retrieves all records for a single calendar date.
	ListByDate(ctx context.Context, date string) ([]Attendance, error)

	// ListByEmployee retrieves records for one employee. When both start and
	// end are non-nil the date column is filtered inclusively; a single
	// bound on its own is ignored.
	ListByEmployee(ctx context.Context, employeeID string, start, end *string) ([]Attendance, error)
}
