package payroll

import "context"

// PayrollService is the read-side aggregator over payslips, payroll runs
// and salary configuration, scoped by the request principal.
type PayrollService interface {
	// ListPayslips lists payslips visible to the caller. Admins see all;
	// employees see only their own.
	ListPayslips(ctx context.Context) ([]Payslip, error)

	// GetPayslip resolves a payslip by id. Existence is checked before
	// ownership: absent -> not found, present but foreign -> forbidden.
	GetPayslip(ctx context.Context, id string) (Payslip, error)

	// ListPayrollRuns lists all payroll runs (admin view).
	ListPayrollRuns(ctx context.Context) ([]PayrollRun, error)

	// ListSalaryStructures lists salary structure configuration (admin view).
	ListSalaryStructures(ctx context.Context) ([]SalaryStructure, error)

	// CreateSalaryStructure stores a new salary structure (admin only).
	CreateSalaryStructure(ctx context.Context, req CreateSalaryStructureRequest) (SalaryStructure, error)

	// ListDeductions lists deduction configuration (admin view).
	ListDeductions(ctx context.Context) ([]Deduction, error)
}
