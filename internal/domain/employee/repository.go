package employee

import "context"

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	// GetByID retrieves an employee by id. Returns nil when absent.
	GetByID(ctx context.Context, id string) (*Employee, error)

	// List retrieves all employee records. Order is unspecified.
	List(ctx context.Context) ([]Employee, error)

	// Upsert stores an employee record under its id.
	Upsert(ctx context.Context, emp Employee) error
}
