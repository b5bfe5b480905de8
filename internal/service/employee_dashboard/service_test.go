package employee_dashboard

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paylite-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/paylite-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/paylite-hr/payroll-backend-go/internal/domain/user"
)

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (r *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID, date string) (*attendance.Attendance, error) {
	for _, record := range r.records {
		if record.EmployeeID == employeeID && record.Date == date {
			return &record, nil
		}
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) Upsert(_ context.Context, att attendance.Attendance) error {
	r.records = append(r.records, att)
	return nil
}

func (r *fakeAttendanceRepo) List(_ context.Context) ([]attendance.Attendance, error) {
	return r.records, nil
}

type fakePayslipRepo struct {
	slips []payroll.Payslip
}

func (r *fakePayslipRepo) GetByID(_ context.Context, id string) (*payroll.Payslip, error) {
	for _, slip := range r.slips {
		if slip.ID == id {
			return &slip, nil
		}
	}
	return nil, nil
}

func (r *fakePayslipRepo) Create(_ context.Context, slip payroll.Payslip) error {
	r.slips = append(r.slips, slip)
	return nil
}

func (r *fakePayslipRepo) List(_ context.Context) ([]payroll.Payslip, error) {
	return r.slips, nil
}

func employeeContext(t *testing.T, employeeID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":     "u-" + employeeID,
		"role":        string(user.RoleEmployee),
		"employee_id": employeeID,
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestGetDashboardProjection(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		{ID: "att-emp-1-2025-03-03", EmployeeID: "emp-1", Date: "2025-03-03", Status: attendance.StatusPresent},
		{ID: "att-emp-1-2025-03-04", EmployeeID: "emp-1", Date: "2025-03-04", Status: attendance.StatusAbsent},
		{ID: "att-emp-1-2025-03-05", EmployeeID: "emp-1", Date: "2025-03-05", Status: attendance.StatusPresent},
		{ID: "att-emp-2-2025-03-05", EmployeeID: "emp-2", Date: "2025-03-05", Status: attendance.StatusPresent},
	}}
	slipRepo := &fakePayslipRepo{slips: []payroll.Payslip{
		{ID: "ps-1", EmployeeID: "emp-1", Period: "2025-01"},
		{ID: "ps-2", EmployeeID: "emp-1", Period: "2025-02"},
		{ID: "ps-3", EmployeeID: "emp-2", Period: "2025-03"},
	}}
	svc := NewEmployeeDashboardService(attRepo, slipRepo)

	dashboard, err := svc.GetDashboard(employeeContext(t, "emp-1"))
	require.NoError(t, err)
	assert.Equal(t, 2, dashboard.PresentDays)
	assert.Equal(t, 1, dashboard.AbsentDays)
	require.NotNil(t, dashboard.LastPayslip)
	// Foreign payslips never leak in, even with a later period.
	assert.Equal(t, "ps-2", dashboard.LastPayslip.ID)
}

func TestGetDashboardRecomputesAfterMutation(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		{ID: "att-emp-1-2025-03-03", EmployeeID: "emp-1", Date: "2025-03-03", Status: attendance.StatusPresent},
	}}
	slipRepo := &fakePayslipRepo{}
	svc := NewEmployeeDashboardService(attRepo, slipRepo)
	ctx := employeeContext(t, "emp-1")

	first, err := svc.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, first.PresentDays)
	assert.Nil(t, first.LastPayslip)

	// The projection has no cache; a new record shows up on the next call.
	require.NoError(t, attRepo.Upsert(ctx, attendance.Attendance{
		ID: "att-emp-1-2025-03-04", EmployeeID: "emp-1", Date: "2025-03-04", Status: attendance.StatusPresent,
	}))
	require.NoError(t, slipRepo.Create(ctx, payroll.Payslip{ID: "ps-1", EmployeeID: "emp-1", Period: "2025-03"}))

	second, err := svc.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, second.PresentDays)
	require.NotNil(t, second.LastPayslip)
	assert.Equal(t, "ps-1", second.LastPayslip.ID)
}

func TestGetDashboardRequiresEmployeePrincipal(t *testing.T) {
	svc := NewEmployeeDashboardService(&fakeAttendanceRepo{}, &fakePayslipRepo{})

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": "u-admin",
		"role":    string(user.RoleAdmin),
	})
	require.NoError(t, err)
	ctx := jwtauth.NewContext(context.Background(), token, nil)

	_, err = svc.GetDashboard(ctx)
	assert.ErrorIs(t, err, attendance.ErrEmployeePrincipalRequired)
}
