package audit

// Log is an append-only audit entry. Entries are never updated or deleted;
// reads return them newest-first.
type Log struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"` // RFC3339
	Actor     string `json:"actor"`     // user id of the principal
	Action    string `json:"action"`
	Details   string `json:"details,omitempty"`
}
