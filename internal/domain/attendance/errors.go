package attendance

import "errors"

var (
	ErrEmployeePrincipalRequired = errors.New("an employee principal is required to clock")
	ErrAttendanceNotFound        = errors.New("attendance record not found")
	ErrForbidden                 = errors.New("not allowed to access this attendance record")
)
