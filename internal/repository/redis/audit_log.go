package redis

import (
	"context"
	"sort"

	"github.com/paylite-hr/payroll-backend-go/internal/domain/audit"
	"github.com/paylite-hr/payroll-backend-go/internal/pkg/database"
)

type AuditLogRepository struct {
	db *database.DB
}

func NewAuditLogRepository(db *database.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Append(ctx context.Context, log audit.Log) error {
	return setJSON(ctx, r.db, auditLogKeyPrefix+log.ID, log)
}

func (r *AuditLogRepository) List(ctx context.Context) ([]audit.Log, error) {
	logs, err := scanPrefix[audit.Log](ctx, r.db, auditLogKeyPrefix)
	if err != nil {
		return nil, err
	}

	// Newest first. RFC3339 timestamps sort lexicographically.
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Timestamp > logs[j].Timestamp
	})
	return logs, nil
}
