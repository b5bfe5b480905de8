package payroll

import "github.com/shopspring/decimal"

// Payslip is immutable once the payroll run that produced it completes.
type Payslip struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employeeId"`
	PayrollRunID     string          `json:"payrollRunId,omitempty"`
	Period           string          `json:"period"` // "YYYY-MM"
	BasicSalary      decimal.Decimal `json:"basicSalary"`
	HRA              decimal.Decimal `json:"hra"`
	SpecialAllowance decimal.Decimal `json:"specialAllowance"`
	Bonus            decimal.Decimal `json:"bonus"`
	GrossSalary      decimal.Decimal `json:"grossSalary"`
	TotalDeductions  decimal.Decimal `json:"totalDeductions"`
	NetSalary        decimal.Decimal `json:"netSalary"`
}

type PayrollRun struct {
	ID          string          `json:"id"`
	Period      string          `json:"period"` // "YYYY-MM"
	Status      string          `json:"status"`
	ProcessedAt string          `json:"processedAt,omitempty"` // RFC3339
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// SalaryStructure is configuration read by the aggregator; salaries are
// passed through, not computed, in this layer.
type SalaryStructure struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	BasicSalary      decimal.Decimal `json:"basicSalary"`
	HRA              decimal.Decimal `json:"hra"`
	SpecialAllowance decimal.Decimal `json:"specialAllowance"`
	Bonus            decimal.Decimal `json:"bonus"`
	VariablePay      decimal.Decimal `json:"variablePay"`
	EmployerPF       decimal.Decimal `json:"employerPF"`
	Insurance        decimal.Decimal `json:"insurance"`
	EffectiveFrom    string          `json:"effectiveFrom"` // "YYYY-MM-DD"
}

type DeductionType string

const (
	DeductionTypePercentage DeductionType = "percentage"
	DeductionTypeFixed      DeductionType = "fixed"
)

type Deduction struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Type            DeductionType   `json:"type"`
	Value           decimal.Decimal `json:"value"`
	ApplicableToAll bool            `json:"applicableToAll"`
}
