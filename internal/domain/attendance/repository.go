package attendance

import "context"

// AttendanceRepository defines data access methods for attendance records.
// Records live in a bounded hash namespace keyed by the derived record id,
// so lookups for a given (employee, day) never require enumeration.
type AttendanceRepository interface {
	// GetByEmployeeAndDate retrieves the record for an employee on a day.
	// Returns nil when absent.
	GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*Attendance, error)

	// Upsert stores the record under its derived id.
	Upsert(ctx context.Context, att Attendance) error

	// List retrieves all attendance records. Order is unspecified.
	List(ctx context.Context) ([]Attendance, error)
}
