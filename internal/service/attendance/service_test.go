package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paylite-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/paylite-hr/payroll-backend-go/internal/domain/user"
)

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (r *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID, date string) (*attendance.Attendance, error) {
	record, ok := r.records[attendance.RecordID(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (r *fakeAttendanceRepo) Upsert(_ context.Context, att attendance.Attendance) error {
	r.records[att.ID] = att
	return nil
}

func (r *fakeAttendanceRepo) List(_ context.Context) ([]attendance.Attendance, error) {
	out := make([]attendance.Attendance, 0, len(r.records))
	for _, record := range r.records {
		out = append(out, record)
	}
	return out, nil
}

// passthroughLocker runs the critical section inline.
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

func newTestService(repo *fakeAttendanceRepo, now func() time.Time) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		locker:               passthroughLocker{},
		now:                  now,
	}
}

func TestClockToggle(t *testing.T) {
	repo := newFakeAttendanceRepo()
	current := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := newTestService(repo, func() time.Time { return current })
	ctx := employeeContext(t, "emp-1")

	// First call opens the session.
	first, err := svc.Clock(ctx)
	require.NoError(t, err)
	assert.Equal(t, attendance.ClockResultCreated, first.Result)
	assert.Equal(t, "att-emp-1-2025-03-10", first.Attendance.ID)
	assert.Equal(t, attendance.StatusPresent, first.Attendance.Status)
	require.NotNil(t, first.Attendance.CheckInTime)
	assert.Equal(t, "2025-03-10T09:00:00Z", *first.Attendance.CheckInTime)
	assert.Nil(t, first.Attendance.CheckOutTime)

	// Second call closes it; check-in is untouched and checkout is later.
	current = current.Add(8 * time.Hour)
	second, err := svc.Clock(ctx)
	require.NoError(t, err)
	assert.Equal(t, attendance.ClockResultUpdated, second.Result)
	require.NotNil(t, second.Attendance.CheckOutTime)
	assert.Equal(t, "2025-03-10T09:00:00Z", *second.Attendance.CheckInTime)
	assert.Equal(t, "2025-03-10T17:00:00Z", *second.Attendance.CheckOutTime)
	assert.True(t, *second.Attendance.CheckOutTime >= *second.Attendance.CheckInTime)

	// Third call is a no-op returning the identical record.
	current = current.Add(time.Hour)
	third, err := svc.Clock(ctx)
	require.NoError(t, err)
	assert.Equal(t, attendance.ClockResultUnchanged, third.Result)
	assert.Equal(t, second.Attendance, third.Attendance)
	assert.Len(t, repo.records, 1)
}

func TestClockNewDayNewRecord(t *testing.T) {
	repo := newFakeAttendanceRepo()
	current := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := newTestService(repo, func() time.Time { return current })
	ctx := employeeContext(t, "emp-1")

	_, err := svc.Clock(ctx)
	require.NoError(t, err)
	current = current.Add(9 * time.Hour)
	_, err = svc.Clock(ctx)
	require.NoError(t, err)

	// Next day starts a fresh session under a new derived id.
	current = current.Add(24 * time.Hour)
	next, err := svc.Clock(ctx)
	require.NoError(t, err)
	assert.Equal(t, attendance.ClockResultCreated, next.Result)
	assert.Equal(t, "att-emp-1-2025-03-11", next.Attendance.ID)
	assert.Len(t, repo.records, 2)
}

func TestClockRequiresEmployeePrincipal(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), time.Now)

	_, err := svc.Clock(adminContext(t))
	assert.ErrorIs(t, err, attendance.ErrEmployeePrincipalRequired)
}

func TestGetMyAttendanceFiltersAndSorts(t *testing.T) {
	repo := newFakeAttendanceRepo()
	seed := []attendance.Attendance{
		{ID: "att-emp-1-2025-03-09", EmployeeID: "emp-1", Date: "2025-03-09", Status: attendance.StatusPresent},
		{ID: "att-emp-1-2025-03-10", EmployeeID: "emp-1", Date: "2025-03-10", Status: attendance.StatusAbsent},
		{ID: "att-emp-2-2025-03-10", EmployeeID: "emp-2", Date: "2025-03-10", Status: attendance.StatusPresent},
	}
	for _, record := range seed {
		require.NoError(t, repo.Upsert(context.Background(), record))
	}
	svc := newTestService(repo, time.Now)

	records, err := svc.GetMyAttendance(employeeContext(t, "emp-1"), attendance.MyAttendanceFilter{})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2025-03-10", records[0].Date)
	assert.Equal(t, "2025-03-09", records[1].Date)

	day := "2025-03-09"
	filtered, err := svc.GetMyAttendance(employeeContext(t, "emp-1"), attendance.MyAttendanceFilter{Date: &day})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, day, filtered[0].Date)
}

func TestListAttendanceScoping(t *testing.T) {
	repo := newFakeAttendanceRepo()
	seed := []attendance.Attendance{
		{ID: "att-emp-1-2025-03-10", EmployeeID: "emp-1", Date: "2025-03-10"},
		{ID: "att-emp-2-2025-03-10", EmployeeID: "emp-2", Date: "2025-03-10"},
	}
	for _, record := range seed {
		require.NoError(t, repo.Upsert(context.Background(), record))
	}
	svc := newTestService(repo, time.Now)

	all, err := svc.ListAttendance(adminContext(t))
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Foreign records are filtered silently, not rejected.
	own, err := svc.ListAttendance(employeeContext(t, "emp-1"))
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "emp-1", own[0].EmployeeID)
}
