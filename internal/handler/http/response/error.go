package response

import (
	"errors"
	"net/http"

	"github.com/paylite-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/paylite-hr/payroll-backend-go/internal/domain/auth"
	"github.com/paylite-hr/payroll-backend-go/internal/domain/employee"
	"github.com/paylite-hr/payroll-backend-go/internal/domain/leave"
	"github.com/paylite-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/paylite-hr/payroll-backend-go/internal/domain/user"
	"github.com/paylite-hr/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// Principal errors
	case errors.Is(err, user.ErrInvalidPrincipal):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrEmployeePrincipalRequired):
		Forbidden(w, "Employee account required")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrForbidden):
		Forbidden(w, "Access to this attendance record is not allowed")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrEmployeePrincipalRequired):
		Forbidden(w, "Employee account required")
	case errors.Is(err, leave.ErrForbidden):
		Forbidden(w, "Access to this leave record is not allowed")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrForbidden):
		Forbidden(w, "Access to this payslip is not allowed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
