package employee

import "context"

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, search string) ([]EmployeeResponse, error)
	RemoveEmployee(ctx context.Context, id string) error
}
