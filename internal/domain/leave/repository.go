package leave

import "context"

// LeaveRequestRepository defines data access for leave requests. Requests
// grow without bound, so they live in a flat key namespace enumerated by
// prefix scan.
type LeaveRequestRepository interface {
	// GetByID retrieves a leave request by id. Returns nil when absent.
	GetByID(ctx context.Context, id string) (*LeaveRequest, error)

	// Create stores a new leave request.
	Create(ctx context.Context, req LeaveRequest) error

	// Update rewrites an existing leave request. When balance is non-nil,
	// the request and the balance are persisted in a single atomic batch so
	// an approval can never be observed without its deduction.
	Update(ctx context.Context, req LeaveRequest, balance *LeaveBalance) error

	// List retrieves all leave requests. Order is unspecified.
	List(ctx context.Context) ([]LeaveRequest, error)
}

// LeaveBalanceRepository defines data access for per-employee balances.
type LeaveBalanceRepository interface {
	// GetByEmployeeID retrieves the balance for an employee. An employee
	// with no prior record gets a zero-valued balance, never "not found".
	GetByEmployeeID(ctx context.Context, employeeID string) (LeaveBalance, error)

	// Upsert stores the balance for an employee.
	Upsert(ctx context.Context, balance LeaveBalance) error
}
