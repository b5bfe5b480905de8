package employee_dashboard

import "github.com/paylite-hr/payroll-backend-go/internal/domain/payroll"

// EmployeeDashboardResponse is the employee home view. It is a projection
// recomputed on every request, never a stored entity.
type EmployeeDashboardResponse struct {
	PresentDays int              `json:"present_days"`
	AbsentDays  int              `json:"absent_days"`
	LastPayslip *payroll.Payslip `json:"last_payslip"` // nil when no payslip exists yet
}
