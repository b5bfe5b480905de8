package payroll

import "errors"

var (
	ErrPayslipNotFound = errors.New("payslip not found")
	ErrForbidden       = errors.New("not allowed to access this payslip")
)
