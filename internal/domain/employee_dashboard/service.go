package employee_dashboard

import "context"

// EmployeeDashboardService computes the employee dashboard projection.
type EmployeeDashboardService interface {
	// GetDashboard returns present/absent day counts and the most recent
	// payslip (by period) for the calling employee.
	GetDashboard(ctx context.Context) (EmployeeDashboardResponse, error)
}
