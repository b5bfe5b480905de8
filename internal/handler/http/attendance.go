package http

import (
	"log/slog"
	"net/http"

	"github.com/paylite-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/paylite-hr/payroll-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Clock(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Clock implements AttendanceHandler. The request carries no body; the day
// and direction are derived from the caller's current record.
func (h *AttendanceHandlerImpl) Clock(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.Clock(r.Context())
	if err != nil {
		slog.Error("Clock service error", "error", err)
		response.HandleError(w, err)
		return
	}

	switch result.Result {
	case attendance.ClockResultCreated:
		response.Created(w, "Checked in successfully", result)
	case attendance.ClockResultUpdated:
		response.SuccessWithMessage(w, "Checked out successfully", result)
	default:
		response.SuccessWithMessage(w, "Attendance already closed for today", result)
	}
}

// GetMyAttendance implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	var filter attendance.MyAttendanceFilter
	if date := r.URL.Query().Get("date"); date != "" {
		filter.Date = &date
	}

	records, err := h.attendanceService.GetMyAttendance(r.Context(), filter)
	if err != nil {
		slog.Error("GetMyAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.ListAttendance(r.Context())
	if err != nil {
		slog.Error("ListAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
