package employee

import "context"

// EmployeeService defines employee administration operations. All of them
// are admin-only; the service enforces that through the request principal.
type EmployeeService interface {
	// List returns every employee record.
	List(ctx context.Context) ([]Employee, error)

	// Get returns a single employee by id.
	Get(ctx context.Context, id string) (Employee, error)

	// Update applies a partial update to an employee record.
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)
}
