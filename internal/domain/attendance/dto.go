package attendance

import (
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type MarkAttendanceRequest struct {
	EmployeeID string   `json:"employee_id"`
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`
}

// Validate checks field presence only. Coordinate ranges are deliberately
// not validated; out-of-range values still flow through the distance
// calculation unchanged.
func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID         string   `json:"id"`
	EmployeeID string   `json:"employee_id"`
	Date       string   `json:"date"`
	Status     string   `json:"status"`
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`
	DistanceM  *float64 `json:"distance_m"`
}

type DailyRecord struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName *string  `json:"employee_name"`
	Status       string   `json:"status"`
	Date         string   `json:"date"`
	DistanceM    *float64 `json:"distance_m"`
}

type DailyRosterResponse struct {
	Date    string        `json:"date"`
	Records []DailyRecord `json:"records"`
}

type SummaryPoint struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
}

type SummaryResponse struct {
	Present int            `json:"present"`
	Absent  int            `json:"absent"`
	Series  []SummaryPoint `json:"series"`
}
