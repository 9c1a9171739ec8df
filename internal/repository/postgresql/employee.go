package postgresql

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	id, err := uuid.NewV7()
	if err != nil {
		return employee.Employee{}, err
	}

	query := `
		INSERT INTO employees (id, name, email, role, phone, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, email, role, phone, is_active, created_at, updated_at
	`

	var created employee.Employee
	err = q.QueryRow(ctx, query,
		id.String(), newEmployee.Name, newEmployee.Email, newEmployee.Role, newEmployee.Phone, newEmployee.IsActive,
	).Scan(
		&created.ID, &created.Name, &created.Email, &created.Role, &created.Phone,
		&created.IsActive, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, name, email, role, phone, is_active, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.Name, &emp.Email, &emp.Role, &emp.Phone,
		&emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

// GetActiveByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetActiveByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, name, email, role, phone, is_active, created_at, updated_at
		FROM employees
		WHERE id = $1 AND is_active = TRUE
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.Name, &emp.Email, &emp.Role, &emp.Phone,
		&emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

// ListActive implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListActive(ctx context.Context, search string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, name, email, role, phone, is_active, created_at, updated_at
		FROM employees
		WHERE is_active = TRUE
		  AND ($1 = '' OR name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%')
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.Name, &emp.Email, &emp.Role, &emp.Phone,
			&emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// SoftDelete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	// pgx.ErrNoRows surfaces here when nothing matched the id; the service
	// layer maps it to the domain not-found error.
	var updatedID string
	return q.QueryRow(ctx, query, id).Scan(&updatedID)
}
