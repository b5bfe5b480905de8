package employee

type Employee struct {
	ID                string `json:"id"`
	EmployeeID        string `json:"employeeId"` // business key, e.g. "EMP002"
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	DateOfJoining     string `json:"dateOfJoining"`
	Department        string `json:"department"`
	Designation       string `json:"designation"`
	EmploymentType    string `json:"employmentType"`
	BankAccount       string `json:"bankAccount"`
	IFSCCode          string `json:"ifscCode"`
	TaxID             string `json:"taxId"`
	SalaryStructureID string `json:"salaryStructureId"`
	IsActive          bool   `json:"isActive"`
}
