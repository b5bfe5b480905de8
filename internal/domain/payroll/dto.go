package payroll

import (
	"github.com/paylite-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateSalaryStructureRequest struct {
	Name             string          `json:"name"`
	BasicSalary      decimal.Decimal `json:"basicSalary"`
	HRA              decimal.Decimal `json:"hra"`
	SpecialAllowance decimal.Decimal `json:"specialAllowance"`
	Bonus            decimal.Decimal `json:"bonus"`
	VariablePay      decimal.Decimal `json:"variablePay"`
	EmployerPF       decimal.Decimal `json:"employerPF"`
	Insurance        decimal.Decimal `json:"insurance"`
	EffectiveFrom    string          `json:"effectiveFrom"`
}

func (r *CreateSalaryStructureRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "basicSalary",
			Message: "basicSalary must not be negative",
		})
	}

	if !validator.IsEmpty(r.EffectiveFrom) {
		if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "effectiveFrom",
				Message: "effectiveFrom must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
