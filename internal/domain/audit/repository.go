package audit

import "context"

// AuditLogRepository defines access to the append-only audit trail.
type AuditLogRepository interface {
	// Append stores a new entry. There is no update or delete.
	Append(ctx context.Context, log Log) error

	// List retrieves all entries sorted newest-first by timestamp.
	List(ctx context.Context) ([]Log, error)
}
