package employee

import "github.com/paylite-hr/payroll-backend-go/internal/pkg/validator"

// UpdateEmployeeRequest carries a partial employee update. Nil fields are
// left untouched. Employee records are owned by admins; employees cannot
// mutate their own record through this layer.
type UpdateEmployeeRequest struct {
	ID                string  `json:"-"`
	Name              *string `json:"name,omitempty"`
	Email             *string `json:"email,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Department        *string `json:"department,omitempty"`
	Designation       *string `json:"designation,omitempty"`
	EmploymentType    *string `json:"employmentType,omitempty"`
	BankAccount       *string `json:"bankAccount,omitempty"`
	IFSCCode          *string `json:"ifscCode,omitempty"`
	TaxID             *string `json:"taxId,omitempty"`
	SalaryStructureID *string `json:"salaryStructureId,omitempty"`
	IsActive          *bool   `json:"isActive,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Apply merges the non-nil fields onto an existing record.
func (r *UpdateEmployeeRequest) Apply(emp Employee) Employee {
	if r.Name != nil {
		emp.Name = *r.Name
	}
	if r.Email != nil {
		emp.Email = *r.Email
	}
	if r.Phone != nil {
		emp.Phone = *r.Phone
	}
	if r.Department != nil {
		emp.Department = *r.Department
	}
	if r.Designation != nil {
		emp.Designation = *r.Designation
	}
	if r.EmploymentType != nil {
		emp.EmploymentType = *r.EmploymentType
	}
	if r.BankAccount != nil {
		emp.BankAccount = *r.BankAccount
	}
	if r.IFSCCode != nil {
		emp.IFSCCode = *r.IFSCCode
	}
	if r.TaxID != nil {
		emp.TaxID = *r.TaxID
	}
	if r.SalaryStructureID != nil {
		emp.SalaryStructureID = *r.SalaryStructureID
	}
	if r.IsActive != nil {
		emp.IsActive = *r.IsActive
	}
	return emp
}
