package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/paylite-hr/payroll-backend-go/internal/domain/employee"
	"github.com/paylite-hr/payroll-backend-go/internal/domain/user"
	auditService "github.com/paylite-hr/payroll-backend-go/internal/service/audit"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	auditService auditService.Service
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, audit auditService.Service) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		auditService:       audit,
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.Employee, error) {
	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin() {
		return nil, user.ErrAdminPrivilegeRequired
	}

	return s.EmployeeRepository.List(ctx)
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.Employee, error) {
	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	if !principal.IsAdmin() {
		return employee.Employee{}, user.ErrAdminPrivilegeRequired
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to load employee: %w", err)
	}
	if emp == nil {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	return *emp, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	if !principal.IsAdmin() {
		return employee.Employee{}, user.ErrAdminPrivilegeRequired
	}

	existing, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to load employee: %w", err)
	}
	if existing == nil {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	updated := req.Apply(*existing)
	if err := s.EmployeeRepository.Upsert(ctx, updated); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	if err := s.auditService.Record(ctx, principal.UserID, "employee.update", "employee "+updated.ID+" updated"); err != nil {
		slog.Error("failed to record employee update audit entry", "error", err)
	}

	return updated, nil
}
