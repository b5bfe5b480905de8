package attendance

// ClockResult tells the caller which edge of the daily state machine fired.
type ClockResult string

const (
	ClockResultCreated   ClockResult = "created"   // NoRecord -> CheckedIn
	ClockResultUpdated   ClockResult = "updated"   // CheckedIn -> CheckedOut
	ClockResultUnchanged ClockResult = "unchanged" // already CheckedOut, no-op
)

type ClockResponse struct {
	Attendance Attendance  `json:"attendance"`
	Result     ClockResult `json:"result"`
}

// MyAttendanceFilter narrows the employee-facing listing.
type MyAttendanceFilter struct {
	// Date restricts the listing to a single day ("YYYY-MM-DD") when set.
	Date *string
}
