package leave

type Type string

const (
	TypeCasual Type = "Casual"
	TypeSick   Type = "Sick"
	TypePaid   Type = "Paid"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// LeaveRequest lifecycle: Pending -> Approved (deducts balance exactly once)
// or Pending -> Rejected. Re-applying Approved never deducts again.
type LeaveRequest struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employeeId"`
	LeaveType  Type    `json:"leaveType"`
	Days       int     `json:"days"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	Reason     string  `json:"reason,omitempty"`
	Status     Status  `json:"status"`
	AppliedOn  string  `json:"appliedOn"` // RFC3339
	DecidedAt  *string `json:"decidedAt,omitempty"`
}

// LeaveBalance holds the remaining days per bucket. Buckets never go
// negative; deductions are clamped at zero.
type LeaveBalance struct {
	EmployeeID string `json:"employeeId"`
	Casual     int    `json:"casual"`
	Sick       int    `json:"sick"`
	Paid       int    `json:"paid"`
}

// Deduct subtracts days from the bucket matching the leave type, clamped
// at a floor of zero. Excess is absorbed silently.
func (b *LeaveBalance) Deduct(leaveType Type, days int) {
	deduct := func(current int) int {
		if days >= current {
			return 0
		}
		return current - days
	}

	switch leaveType {
	case TypeCasual:
		b.Casual = deduct(b.Casual)
	case TypeSick:
		b.Sick = deduct(b.Sick)
	default:
		b.Paid = deduct(b.Paid)
	}
}
