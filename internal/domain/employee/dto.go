package employee

import (
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Role  *string `json:"role,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Role     *string `json:"role"`
	Phone    *string `json:"phone"`
	IsActive bool    `json:"is_active"`
}
