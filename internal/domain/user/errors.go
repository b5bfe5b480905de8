package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidPrincipal       = errors.New("invalid principal claims")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
