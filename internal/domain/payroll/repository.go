package payroll

import "context"

// PayslipRepository defines data access for payslips. Payslips grow without
// bound, so they live in a flat key namespace enumerated by prefix scan.
type PayslipRepository interface {
	// GetByID retrieves a payslip by id. Returns nil when absent.
	GetByID(ctx context.Context, id string) (*Payslip, error)

	// Create stores a payslip.
	Create(ctx context.Context, slip Payslip) error

	// List retrieves all payslips. Order is unspecified.
	List(ctx context.Context) ([]Payslip, error)
}

// PayrollRunRepository defines data access for payroll runs.
type PayrollRunRepository interface {
	// GetByID retrieves a payroll run by id. Returns nil when absent.
	GetByID(ctx context.Context, id string) (*PayrollRun, error)

	// Create stores a payroll run.
	Create(ctx context.Context, run PayrollRun) error

	// List retrieves all payroll runs. Order is unspecified.
	List(ctx context.Context) ([]PayrollRun, error)
}

// SalaryStructureRepository defines data access for salary structures.
type SalaryStructureRepository interface {
	// List retrieves all salary structures.
	List(ctx context.Context) ([]SalaryStructure, error)

	// Upsert stores a salary structure under its id.
	Upsert(ctx context.Context, structure SalaryStructure) error
}

// DeductionRepository defines data access for deduction configuration.
type DeductionRepository interface {
	// List retrieves all deduction records.
	List(ctx context.Context) ([]Deduction, error)

	// Upsert stores a deduction record under its id.
	Upsert(ctx context.Context, deduction Deduction) error
}
