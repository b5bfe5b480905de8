package attendance

import "fmt"

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

// Attendance is the single record for one employee on one calendar day.
// The id is derived from (employee, date) so the per-day uniqueness
// invariant holds without a secondary index.
type Attendance struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employeeId"`
	Date          string  `json:"date"` // "YYYY-MM-DD", UTC day boundary
	Status        Status  `json:"status"`
	OvertimeHours float64 `json:"overtimeHours"`
	CheckInTime   *string `json:"checkInTime,omitempty"`  // RFC3339
	CheckOutTime  *string `json:"checkOutTime,omitempty"` // RFC3339, >= CheckInTime
	Notes         *string `json:"notes,omitempty"`
}

// RecordID derives the deterministic record id for an employee/day pair.
func RecordID(employeeID, date string) string {
	return fmt.Sprintf("att-%s-%s", employeeID, date)
}

// CheckedIn reports whether the record has an open clock session.
func (a *Attendance) CheckedIn() bool {
	return a.CheckInTime != nil && a.CheckOutTime == nil
}

// CheckedOut reports whether the record reached its terminal state for the day.
func (a *Attendance) CheckedOut() bool {
	return a.CheckInTime != nil && a.CheckOutTime != nil
}
