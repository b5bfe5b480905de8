package attendance

import "context"

// AttendanceService implements the daily clock state machine and the
// role-scoped attendance views.
type AttendanceService interface {
	// Clock advances the caller's record for today:
	// no record -> check-in, open session -> check-out, closed -> no-op.
	Clock(ctx context.Context) (ClockResponse, error)

	// GetMyAttendance lists the caller's records, newest day first.
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) ([]Attendance, error)

	// ListAttendance lists records visible to the caller. Admins see all;
	// employees see only their own.
	ListAttendance(ctx context.Context) ([]Attendance, error)
}
