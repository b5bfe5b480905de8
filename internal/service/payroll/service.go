package payroll

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/paylite-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/paylite-hr/payroll-backend-go/internal/domain/user"
)

type PayrollServiceImpl struct {
	payroll.PayslipRepository
	payroll.PayrollRunRepository
	payroll.SalaryStructureRepository
	payroll.DeductionRepository
}

func NewPayrollService(
	payslipRepo payroll.PayslipRepository,
	runRepo payroll.PayrollRunRepository,
	structureRepo payroll.SalaryStructureRepository,
	deductionRepo payroll.DeductionRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayslipRepository:         payslipRepo,
		PayrollRunRepository:      runRepo,
		SalaryStructureRepository: structureRepo,
		DeductionRepository:       deductionRepo,
	}
}

// ListPayslips implements payroll.PayrollService. Foreign records are
// silently filtered, never surfaced as errors.
func (s *PayrollServiceImpl) ListPayslips(ctx context.Context) ([]payroll.Payslip, error) {
	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	all, err := s.PayslipRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}

	slips := make([]payroll.Payslip, 0, len(all))
	for _, slip := range all {
		if !principal.CanRead(slip.EmployeeID) {
			continue
		}
		slips = append(slips, slip)
	}

	// Newest period first.
	sort.Slice(slips, func(i, j int) bool {
		return slips[i].Period > slips[j].Period
	})
	return slips, nil
}

// GetPayslip implements payroll.PayrollService. Existence is checked before
// ownership, so a missing id is "not found" regardless of role and a
// foreign record is "forbidden", never the other way around.
func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, id string) (payroll.Payslip, error) {
	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return payroll.Payslip{}, err
	}

	slip, err := s.PayslipRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to load payslip: %w", err)
	}
	if slip == nil {
		return payroll.Payslip{}, payroll.ErrPayslipNotFound
	}
	if !principal.CanRead(slip.EmployeeID) {
		return payroll.Payslip{}, payroll.ErrForbidden
	}

	return *slip, nil
}

// ListPayrollRuns implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayrollRuns(ctx context.Context) ([]payroll.PayrollRun, error) {
	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin() {
		return nil, user.ErrAdminPrivilegeRequired
	}

	runs, err := s.PayrollRunRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll runs: %w", err)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Period > runs[j].Period
	})
	return runs, nil
}

// ListSalaryStructures implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListSalaryStructures(ctx context.Context) ([]payroll.SalaryStructure, error) {
	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin() {
		return nil, user.ErrAdminPrivilegeRequired
	}

	return s.SalaryStructureRepository.List(ctx)
}

// CreateSalaryStructure implements payroll.PayrollService.
func (s *PayrollServiceImpl) CreateSalaryStructure(ctx context.Context, req payroll.CreateSalaryStructureRequest) (payroll.SalaryStructure, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryStructure{}, err
	}

	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return payroll.SalaryStructure{}, err
	}
	if !principal.IsAdmin() {
		return payroll.SalaryStructure{}, user.ErrAdminPrivilegeRequired
	}

	structure := payroll.SalaryStructure{
		ID:               "sal-" + uuid.NewString(),
		Name:             req.Name,
		BasicSalary:      req.BasicSalary,
		HRA:              req.HRA,
		SpecialAllowance: req.SpecialAllowance,
		Bonus:            req.Bonus,
		VariablePay:      req.VariablePay,
		EmployerPF:       req.EmployerPF,
		Insurance:        req.Insurance,
		EffectiveFrom:    req.EffectiveFrom,
	}

	if err := s.SalaryStructureRepository.Upsert(ctx, structure); err != nil {
		return payroll.SalaryStructure{}, fmt.Errorf("failed to create salary structure: %w", err)
	}

	return structure, nil
}

// ListDeductions implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListDeductions(ctx context.Context) ([]payroll.Deduction, error) {
	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin() {
		return nil, user.ErrAdminPrivilegeRequired
	}

	return s.DeductionRepository.List(ctx)
}
