package attendance

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/paylite-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/paylite-hr/payroll-backend-go/internal/domain/user"
	"github.com/paylite-hr/payroll-backend-go/internal/pkg/lock"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	locker lock.Locker
	now    func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, locker lock.Locker) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		locker:               locker,
		now:                  time.Now,
	}
}

// Clock implements attendance.AttendanceService.
//
// The daily state machine is a toggle: no record -> check-in, open session
// -> check-out, closed session -> no-op. The whole read-modify-write runs
// under a per-(employee, day) lock so two near-simultaneous calls cannot
// both observe "no record" and lose an update.
func (s *AttendanceServiceImpl) Clock(ctx context.Context) (attendance.ClockResponse, error) {
	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return attendance.ClockResponse{}, err
	}
	if !principal.IsEmployee() {
		return attendance.ClockResponse{}, attendance.ErrEmployeePrincipalRequired
	}
	employeeID := *principal.EmployeeID

	nowUTC := s.now().UTC()
	today := nowUTC.Format("2006-01-02")
	nowStr := nowUTC.Format(time.RFC3339)

	var resp attendance.ClockResponse
	lockKey := fmt.Sprintf("lock:attendance:%s:%s", employeeID, today)

	err = s.locker.WithLock(ctx, lockKey, func(ctx context.Context) error {
		existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
		if err != nil {
			return fmt.Errorf("failed to load attendance for today: %w", err)
		}

		switch {
		case existing == nil:
			record := attendance.Attendance{
				ID:            attendance.RecordID(employeeID, today),
				EmployeeID:    employeeID,
				Date:          today,
				Status:        attendance.StatusPresent,
				OvertimeHours: 0,
				CheckInTime:   &nowStr,
			}
			if err := s.AttendanceRepository.Upsert(ctx, record); err != nil {
				return fmt.Errorf("failed to create attendance record: %w", err)
			}
			resp = attendance.ClockResponse{Attendance: record, Result: attendance.ClockResultCreated}

		case existing.CheckedIn():
			existing.CheckOutTime = &nowStr
			if err := s.AttendanceRepository.Upsert(ctx, *existing); err != nil {
				return fmt.Errorf("failed to close attendance session: %w", err)
			}
			resp = attendance.ClockResponse{Attendance: *existing, Result: attendance.ClockResultUpdated}

		default:
			// Already checked out; the day is terminal.
			resp = attendance.ClockResponse{Attendance: *existing, Result: attendance.ClockResultUnchanged}
		}
		return nil
	})
	if err != nil {
		return attendance.ClockResponse{}, err
	}

	return resp, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) ([]attendance.Attendance, error) {
	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !principal.IsEmployee() {
		return nil, attendance.ErrEmployeePrincipalRequired
	}

	all, err := s.AttendanceRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	records := make([]attendance.Attendance, 0, len(all))
	for _, record := range all {
		if record.EmployeeID != *principal.EmployeeID {
			continue
		}
		if filter.Date != nil && record.Date != *filter.Date {
			continue
		}
		records = append(records, record)
	}

	// Newest day first.
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})
	return records, nil
}

// ListAttendance implements attendance.AttendanceService. Records the
// caller may not read are silently filtered out, never surfaced as errors.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context) ([]attendance.Attendance, error) {
	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	all, err := s.AttendanceRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	records := make([]attendance.Attendance, 0, len(all))
	for _, record := range all {
		if !principal.CanRead(record.EmployeeID) {
			continue
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})
	return records, nil
}
