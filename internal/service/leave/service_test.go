package leave

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paylite-hr/payroll-backend-go/internal/domain/audit"
	"github.com/paylite-hr/payroll-backend-go/internal/domain/leave"
	"github.com/paylite-hr/payroll-backend-go/internal/domain/user"
)

type fakeLeaveRequestRepo struct {
	requests map[string]leave.LeaveRequest
	balances *fakeLeaveBalanceRepo

	// atomicWrites counts Update calls that carried a balance alongside
	// the request.
	atomicWrites int
}

func newFakeLeaveRequestRepo(balances *fakeLeaveBalanceRepo) *fakeLeaveRequestRepo {
	return &fakeLeaveRequestRepo{
		requests: make(map[string]leave.LeaveRequest),
		balances: balances,
	}
}

func (r *fakeLeaveRequestRepo) GetByID(_ context.Context, id string) (*leave.LeaveRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return nil, nil
	}
	return &request, nil
}

func (r *fakeLeaveRequestRepo) Create(_ context.Context, req leave.LeaveRequest) error {
	r.requests[req.ID] = req
	return nil
}

func (r *fakeLeaveRequestRepo) Update(_ context.Context, req leave.LeaveRequest, balance *leave.LeaveBalance) error {
	r.requests[req.ID] = req
	if balance != nil {
		r.atomicWrites++
		r.balances.balances[balance.EmployeeID] = *balance
	}
	return nil
}

func (r *fakeLeaveRequestRepo) List(_ context.Context) ([]leave.LeaveRequest, error) {
	out := make([]leave.LeaveRequest, 0, len(r.requests))
	for _, request := range r.requests {
		out = append(out, request)
	}
	return out, nil
}

type fakeLeaveBalanceRepo struct {
	balances map[string]leave.LeaveBalance
}

func newFakeLeaveBalanceRepo() *fakeLeaveBalanceRepo {
	return &fakeLeaveBalanceRepo{balances: make(map[string]leave.LeaveBalance)}
}

func (r *fakeLeaveBalanceRepo) GetByEmployeeID(_ context.Context, employeeID string) (leave.LeaveBalance, error) {
	balance, ok := r.balances[employeeID]
	if !ok {
		return leave.LeaveBalance{EmployeeID: employeeID}, nil
	}
	return balance, nil
}

func (r *fakeLeaveBalanceRepo) Upsert(_ context.Context, balance leave.LeaveBalance) error {
	r.balances[balance.EmployeeID] = balance
	return nil
}

type fakeAuditService struct {
	entries []audit.Log
}

func (s *fakeAuditService) Record(_ context.Context, actor, action, details string) error {
	s.entries = append(s.entries, audit.Log{Actor: actor, Action: action, Details: details})
	return nil
}

func (s *fakeAuditService) List(_ context.Context) ([]audit.Log, error) {
	return s.entries, nil
}

type passthroughLocker struct{}

func (passthroughLocker) WithLock(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func authContext(t *testing.T, claims map[string]interface{}) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func employeeContext(t *testing.T, employeeID string) context.Context {
	return authContext(t, map[string]interface{}{
		"user_id":     "u-" + employeeID,
		"role":        string(user.RoleEmployee),
		"employee_id": employeeID,
	})
}

func adminContext(t *testing.T) context.Context {
	return authContext(t, map[string]interface{}{
		"user_id": "u-admin",
		"role":    string(user.RoleAdmin),
	})
}

type testEnv struct {
	svc      *LeaveServiceImpl
	requests *fakeLeaveRequestRepo
	balances *fakeLeaveBalanceRepo
	audit    *fakeAuditService
}

func newTestEnv() testEnv {
	balances := newFakeLeaveBalanceRepo()
	requests := newFakeLeaveRequestRepo(balances)
	auditSvc := &fakeAuditService{}
	svc := &LeaveServiceImpl{
		LeaveRequestRepository: requests,
		LeaveBalanceRepository: balances,
		auditService:           auditSvc,
		locker:                 passthroughLocker{},
		now:                    func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) },
	}
	return testEnv{svc: svc, requests: requests, balances: balances, audit: auditSvc}
}

func TestCreateRequestStartsPending(t *testing.T) {
	env := newTestEnv()

	created, err := env.svc.CreateRequest(employeeContext(t, "emp-1"), leave.CreateLeaveRequest{
		LeaveType: leave.TypeCasual,
		Days:      3,
		StartDate: "2025-03-12",
		EndDate:   "2025-03-14",
		Reason:    "family event",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "emp-1", created.EmployeeID)
	assert.Equal(t, leave.StatusPending, created.Status)
	assert.Equal(t, "2025-03-10T12:00:00Z", created.AppliedOn)
	assert.Nil(t, created.DecidedAt)
}

func TestCreateRequestValidation(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.CreateRequest(employeeContext(t, "emp-1"), leave.CreateLeaveRequest{
		LeaveType: "Sabbatical",
		Days:      0,
	})
	require.Error(t, err)
	assert.Empty(t, env.requests.requests)
}

func TestDecideApproveDeductsClamped(t *testing.T) {
	env := newTestEnv()
	env.balances.balances["emp-1"] = leave.LeaveBalance{EmployeeID: "emp-1", Casual: 10, Sick: 7, Paid: 15}
	env.requests.requests["lr-1"] = leave.LeaveRequest{
		ID: "lr-1", EmployeeID: "emp-1", LeaveType: leave.TypeCasual,
		Days: 12, Status: leave.StatusPending,
	}

	decided, err := env.svc.Decide(adminContext(t), leave.DecideLeaveRequest{ID: "lr-1", Decision: leave.StatusApproved})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, decided.Status)
	require.NotNil(t, decided.DecidedAt)

	// 12 days against a 10-day bucket floors at zero, never negative.
	balance := env.balances.balances["emp-1"]
	assert.Equal(t, 0, balance.Casual)
	assert.Equal(t, 7, balance.Sick)
	assert.Equal(t, 15, balance.Paid)

	// Request and balance were persisted as one batch.
	assert.Equal(t, 1, env.requests.atomicWrites)

	require.Len(t, env.audit.entries, 1)
	assert.Equal(t, "leave.decide", env.audit.entries[0].Action)
}

func TestDecideReApproveDoesNotDeductAgain(t *testing.T) {
	env := newTestEnv()
	env.balances.balances["emp-1"] = leave.LeaveBalance{EmployeeID: "emp-1", Casual: 4, Sick: 7, Paid: 15}
	env.requests.requests["lr-1"] = leave.LeaveRequest{
		ID: "lr-1", EmployeeID: "emp-1", LeaveType: leave.TypeCasual,
		Days: 3, Status: leave.StatusApproved,
	}

	_, err := env.svc.Decide(adminContext(t), leave.DecideLeaveRequest{ID: "lr-1", Decision: leave.StatusApproved})
	require.NoError(t, err)

	assert.Equal(t, 4, env.balances.balances["emp-1"].Casual)
	assert.Equal(t, 0, env.requests.atomicWrites)
}

func TestDecideRejectKeepsBalance(t *testing.T) {
	env := newTestEnv()
	env.balances.balances["emp-1"] = leave.LeaveBalance{EmployeeID: "emp-1", Casual: 10, Sick: 7, Paid: 15}
	env.requests.requests["lr-1"] = leave.LeaveRequest{
		ID: "lr-1", EmployeeID: "emp-1", LeaveType: leave.TypeSick,
		Days: 2, Status: leave.StatusPending,
	}

	decided, err := env.svc.Decide(adminContext(t), leave.DecideLeaveRequest{ID: "lr-1", Decision: leave.StatusRejected})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, decided.Status)
	assert.Equal(t, 7, env.balances.balances["emp-1"].Sick)
	assert.Equal(t, 0, env.requests.atomicWrites)
}

func TestDecideNotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.Decide(adminContext(t), leave.DecideLeaveRequest{ID: "lr-missing", Decision: leave.StatusApproved})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestDecideRequiresAdmin(t *testing.T) {
	env := newTestEnv()
	env.requests.requests["lr-1"] = leave.LeaveRequest{
		ID: "lr-1", EmployeeID: "emp-1", LeaveType: leave.TypeCasual,
		Days: 1, Status: leave.StatusPending,
	}

	_, err := env.svc.Decide(employeeContext(t, "emp-1"), leave.DecideLeaveRequest{ID: "lr-1", Decision: leave.StatusApproved})
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)
	assert.Equal(t, leave.StatusPending, env.requests.requests["lr-1"].Status)
}

func TestGetMyBalanceDefaultsToZero(t *testing.T) {
	env := newTestEnv()

	balance, err := env.svc.GetMyBalance(employeeContext(t, "emp-9"))
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveBalance{EmployeeID: "emp-9"}, balance)
}

func TestListRequestsScoping(t *testing.T) {
	env := newTestEnv()
	env.requests.requests["lr-1"] = leave.LeaveRequest{ID: "lr-1", EmployeeID: "emp-1", AppliedOn: "2025-03-01T00:00:00Z"}
	env.requests.requests["lr-2"] = leave.LeaveRequest{ID: "lr-2", EmployeeID: "emp-2", AppliedOn: "2025-03-02T00:00:00Z"}

	all, err := env.svc.ListRequests(adminContext(t))
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "lr-2", all[0].ID)

	own, err := env.svc.GetMyRequests(employeeContext(t, "emp-1"))
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "lr-1", own[0].ID)
}

func TestGetBalanceForbiddenForForeignEmployee(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.GetBalance(employeeContext(t, "emp-1"), "emp-2")
	assert.ErrorIs(t, err, leave.ErrForbidden)

	_, err = env.svc.GetBalance(adminContext(t), "emp-2")
	assert.NoError(t, err)
}
