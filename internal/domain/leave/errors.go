package leave

import "errors"

var (
	ErrLeaveRequestNotFound      = errors.New("leave request not found")
	ErrEmployeePrincipalRequired = errors.New("an employee principal is required to request leave")
	ErrForbidden                 = errors.New("not allowed to access this leave request")
)
