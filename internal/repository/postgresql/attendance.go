package postgresql

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Attendance{}, err
	}

	query := `
		INSERT INTO attendance_records (id, employee_id, date, status, lat, lng, distance_m)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, employee_id, date, status, lat, lng, distance_m, created_at
	`

	var created attendance.Attendance
	err = q.QueryRow(ctx, query,
		id.String(), record.EmployeeID, record.Date, record.Status, record.Lat, record.Lng, record.DistanceM,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Date, &created.Status,
		&created.Lat, &created.Lng, &created.DistanceM, &created.CreatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	return created, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByDate(ctx context.Context, date string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, date, status, lat, lng, distance_m, created_at
		FROM attendance_records
		WHERE date = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, start, end *string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	// The date column is TEXT; the inclusive range filter is a plain string
	// comparison, which matches chronological order for YYYY-MM-DD values.
	query := `
		SELECT id, employee_id, date, status, lat, lng, distance_m, created_at
		FROM attendance_records
		WHERE employee_id = $1
	`
	args := []interface{}{employeeID}

	if start != nil && end != nil {
		query += ` AND date >= $2 AND date <= $3`
		args = append(args, *start, *end)
	}
	query += ` ORDER BY created_at`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

func scanAttendanceRows(rows pgx.Rows) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		var rec attendance.Attendance
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status,
			&rec.Lat, &rec.Lng, &rec.DistanceM, &rec.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
