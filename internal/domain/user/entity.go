package user

type Role string

const (
	RoleAdmin    Role = "admin"    // HR/payroll administrator - full access
	RoleEmployee Role = "employee" // Regular employee - own records only
)

type User struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"passwordHash"`
	Role         Role    `json:"role"`
	EmployeeID   *string `json:"employeeId,omitempty"`
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
