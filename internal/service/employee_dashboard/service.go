package employee_dashboard

import (
	"context"
	"fmt"

	"github.com/paylite-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/paylite-hr/payroll-backend-go/internal/domain/employee_dashboard"
	"github.com/paylite-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/paylite-hr/payroll-backend-go/internal/domain/user"
)

type EmployeeDashboardServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	payslipRepo    payroll.PayslipRepository
}

func NewEmployeeDashboardService(
	attendanceRepo attendance.AttendanceRepository,
	payslipRepo payroll.PayslipRepository,
) employee_dashboard.EmployeeDashboardService {
	return &EmployeeDashboardServiceImpl{
		attendanceRepo: attendanceRepo,
		payslipRepo:    payslipRepo,
	}
}

// GetDashboard implements employee_dashboard.EmployeeDashboardService.
// The projection is recomputed from the stores on every call; there is no
// cached aggregate that could go stale.
func (s *EmployeeDashboardServiceImpl) GetDashboard(ctx context.Context) (employee_dashboard.EmployeeDashboardResponse, error) {
	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return employee_dashboard.EmployeeDashboardResponse{}, err
	}
	if !principal.IsEmployee() {
		return employee_dashboard.EmployeeDashboardResponse{}, attendance.ErrEmployeePrincipalRequired
	}
	employeeID := *principal.EmployeeID

	records, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return employee_dashboard.EmployeeDashboardResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	var resp employee_dashboard.EmployeeDashboardResponse
	for _, record := range records {
		if record.EmployeeID != employeeID {
			continue
		}
		switch record.Status {
		case attendance.StatusPresent:
			resp.PresentDays++
		case attendance.StatusAbsent:
			resp.AbsentDays++
		}
	}

	slips, err := s.payslipRepo.List(ctx)
	if err != nil {
		return employee_dashboard.EmployeeDashboardResponse{}, fmt.Errorf("failed to list payslips: %w", err)
	}

	for i := range slips {
		slip := slips[i]
		if slip.EmployeeID != employeeID {
			continue
		}
		if resp.LastPayslip == nil || slip.Period > resp.LastPayslip.Period {
			resp.LastPayslip = &slip
		}
	}

	return resp, nil
}
