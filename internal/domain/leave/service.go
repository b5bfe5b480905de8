package leave

import "context"

// LeaveService implements the leave request lifecycle and balance reads.
type LeaveService interface {
	// CreateRequest files a Pending leave request for the caller.
	CreateRequest(ctx context.Context, req CreateLeaveRequest) (LeaveRequest, error)

	// Decide moves a request to Approved or Rejected. The first transition
	// into Approved deducts the matching balance bucket, clamped at zero.
	Decide(ctx context.Context, req DecideLeaveRequest) (LeaveRequest, error)

	// GetMyRequests lists the caller's leave requests.
	GetMyRequests(ctx context.Context) ([]LeaveRequest, error)

	// ListRequests lists all leave requests (admin view).
	ListRequests(ctx context.Context) ([]LeaveRequest, error)

	// GetMyBalance returns the caller's balance, zero-valued when absent.
	GetMyBalance(ctx context.Context) (LeaveBalance, error)

	// GetBalance returns an employee's balance (admin view).
	GetBalance(ctx context.Context, employeeID string) (LeaveBalance, error)
}
