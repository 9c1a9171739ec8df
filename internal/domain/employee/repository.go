package employee

import "context"

type EmployeeRepository interface {
	// Create stores a new employee and returns it with store-generated fields.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)

	// GetByID retrieves an employee regardless of active state.
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetActiveByID retrieves an employee only when is_active is true.
	GetActiveByID(ctx context.Context, id string) (Employee, error)

	// ListActive returns active employees, newest first. A non-empty search
	// term filters by case-insensitive substring match on name or email.
	ListActive(ctx context.Context, search string) ([]Employee, error)

	// SoftDelete flips is_active to false and stamps updated_at.
	// Matching is by id only; an already-inactive employee still matches.
	SoftDelete(ctx context.Context, id string) error
}
