package attendance

import "time"

type Attendance struct {
	ID         string
	EmployeeID string
	Date       string
	Status     string
	Lat        *float64
	Lng        *float64
	DistanceM  *float64
	CreatedAt  time.Time
}

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
)
