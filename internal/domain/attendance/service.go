package attendance

import "context"

type AttendanceService interface {
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	DailyRoster(ctx context.Context, date string) (DailyRosterResponse, error)
	Summary(ctx context.Context, employeeID string, start, end *string) (SummaryResponse, error)
}
