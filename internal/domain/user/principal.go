package user

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
)

// Principal is the authenticated actor behind a request. Identity and role
// are fixed for the life of the token; an employee principal always carries
// the employee record it owns.
type Principal struct {
	UserID     string
	Email      string
	Role       Role
	EmployeeID *string
}

// PrincipalFromContext resolves the principal from the verified JWT claims.
func PrincipalFromContext(ctx context.Context) (Principal, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Principal{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Principal{}, ErrInvalidPrincipal
	}

	roleStr, ok := claims["role"].(string)
	if !ok || roleStr == "" {
		return Principal{}, ErrInvalidPrincipal
	}

	p := Principal{
		UserID: userID,
		Role:   Role(roleStr),
	}

	if email, ok := claims["email"].(string); ok {
		p.Email = email
	}

	if employeeID, ok := claims["employee_id"].(string); ok && employeeID != "" {
		p.EmployeeID = &employeeID
	}

	return p, nil
}

// IsAdmin reports whether the principal has administrator privileges.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// IsEmployee reports whether the principal is an employee principal carrying
// an employee identity.
func (p Principal) IsEmployee() bool {
	return p.Role == RoleEmployee && p.EmployeeID != nil
}

// CanRead decides read eligibility for a record owned by ownerEmployeeID.
// Admins read everything; employees read only their own records.
func (p Principal) CanRead(ownerEmployeeID string) bool {
	if p.IsAdmin() {
		return true
	}
	return p.EmployeeID != nil && *p.EmployeeID == ownerEmployeeID
}

// CanWrite decides write eligibility for a record owned by ownerEmployeeID.
// The rule is identical to CanRead for every record kind.
func (p Principal) CanWrite(ownerEmployeeID string) bool {
	return p.CanRead(ownerEmployeeID)
}
