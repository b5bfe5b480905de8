package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paylite-hr/payroll-backend-go/internal/domain/attendance"
)

type stubAttendanceService struct {
	clockResp attendance.ClockResponse
	clockErr  error
}

func (s *stubAttendanceService) Clock(_ context.Context) (attendance.ClockResponse, error) {
	return s.clockResp, s.clockErr
}

func (s *stubAttendanceService) GetMyAttendance(_ context.Context, _ attendance.MyAttendanceFilter) ([]attendance.Attendance, error) {
	return nil, nil
}

func (s *stubAttendanceService) ListAttendance(_ context.Context) ([]attendance.Attendance, error) {
	return nil, nil
}

func doClock(t *testing.T, svc attendance.AttendanceService) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewAttendanceHandler(svc)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/clock", nil)
	rec := httptest.NewRecorder()
	handler.Clock(rec, req)
	return rec
}

func TestClockHandlerCheckIn(t *testing.T) {
	checkIn := "2025-03-10T09:00:00Z"
	rec := doClock(t, &stubAttendanceService{
		clockResp: attendance.ClockResponse{
			Attendance: attendance.Attendance{
				ID:          "att-emp-1-2025-03-10",
				EmployeeID:  "emp-1",
				Date:        "2025-03-10",
				Status:      attendance.StatusPresent,
				CheckInTime: &checkIn,
			},
			Result: attendance.ClockResultCreated,
		},
	})

	assert.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Result string `json:"result"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "created", envelope.Data.Result)
}

func TestClockHandlerCheckOut(t *testing.T) {
	rec := doClock(t, &stubAttendanceService{
		clockResp: attendance.ClockResponse{Result: attendance.ClockResultUpdated},
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClockHandlerTerminalNoOp(t *testing.T) {
	rec := doClock(t, &stubAttendanceService{
		clockResp: attendance.ClockResponse{Result: attendance.ClockResultUnchanged},
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClockHandlerForbiddenForNonEmployee(t *testing.T) {
	rec := doClock(t, &stubAttendanceService{
		clockErr: attendance.ErrEmployeePrincipalRequired,
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "FORBIDDEN", envelope.Error.Code)
}
