package employee

import "time"

type Employee struct {
	ID        string
	Name      string
	Email     string
	Role      *string
	Phone     *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
