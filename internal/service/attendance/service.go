package attendance

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/geo"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	geofence       geo.Geofence
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	geofence geo.Geofence,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		geofence:       geofence,
	}
}

func mapAttendanceToResponse(rec attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Date:       rec.Date,
		Status:     rec.Status,
		Lat:        rec.Lat,
		Lng:        rec.Lng,
		DistanceM:  rec.DistanceM,
	}
}

// MarkAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if !validator.IsValidUUID(req.EmployeeID) {
		return attendance.AttendanceResponse{}, employee.ErrInvalidEmployeeID
	}

	_, err := a.employeeRepo.GetActiveByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrEmployeeNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	// Computed once per request, in the server's local date context.
	today := time.Now().Format("2006-01-02")

	var distance *float64
	status := attendance.StatusAbsent
	if req.Lat != nil && req.Lng != nil && a.geofence.Enabled() {
		d := a.geofence.DistanceTo(*req.Lat, *req.Lng)
		distance = &d
		if a.geofence.Within(d) {
			status = attendance.StatusPresent
		}
	}

	created, err := a.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       today,
		Status:     status,
		Lat:        req.Lat,
		Lng:        req.Lng,
		DistanceM:  distance,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return mapAttendanceToResponse(created), nil
}

// DailyRoster implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DailyRoster(ctx context.Context, date string) (attendance.DailyRosterResponse, error) {
	day := date
	if day == "" {
		day = time.Now().Format("2006-01-02")
	}

	records, err := a.attendanceRepo.ListByDate(ctx, day)
	if err != nil {
		return attendance.DailyRosterResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	result := make([]attendance.DailyRecord, 0, len(records))
	for _, rec := range records {
		// Best-effort name resolution: the employee reference is weak, so a
		// missing employee yields a null name, not an error.
		var name *string
		emp, err := a.employeeRepo.GetByID(ctx, rec.EmployeeID)
		if err == nil {
			name = &emp.Name
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return attendance.DailyRosterResponse{}, fmt.Errorf("failed to resolve employee name: %w", err)
		}

		result = append(result, attendance.DailyRecord{
			ID:           rec.ID,
			EmployeeID:   rec.EmployeeID,
			EmployeeName: name,
			Status:       rec.Status,
			Date:         rec.Date,
			DistanceM:    rec.DistanceM,
		})
	}

	return attendance.DailyRosterResponse{Date: day, Records: result}, nil
}

// Summary implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Summary(ctx context.Context, employeeID string, start, end *string) (attendance.SummaryResponse, error) {
	records, err := a.attendanceRepo.ListByEmployee(ctx, employeeID, start, end)
	if err != nil {
		return attendance.SummaryResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	return buildSummary(records), nil
}

// buildSummary tallies present/absent totals and a per-day series sorted
// ascending by date.
func buildSummary(records []attendance.Attendance) attendance.SummaryResponse {
	present := 0
	absent := 0
	byDate := make(map[string]*attendance.SummaryPoint)

	for _, rec := range records {
		point, ok := byDate[rec.Date]
		if !ok {
			point = &attendance.SummaryPoint{Date: rec.Date}
			byDate[rec.Date] = point
		}
		switch rec.Status {
		case attendance.StatusPresent:
			present++
			point.Present++
		case attendance.StatusAbsent:
			absent++
			point.Absent++
		}
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	series := make([]attendance.SummaryPoint, 0, len(dates))
	for _, date := range dates {
		series = append(series, *byDate[date])
	}

	return attendance.SummaryResponse{
		Present: present,
		Absent:  absent,
		Series:  series,
	}
}
