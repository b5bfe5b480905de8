package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/paylite-hr/payroll-backend-go/internal/domain/audit"
	"github.com/paylite-hr/payroll-backend-go/internal/domain/user"
)

// Service records security-relevant mutations and serves the admin trail.
type Service interface {
	// Record appends an audit entry. Failures are returned to the caller,
	// who decides whether they are fatal for the surrounding operation.
	Record(ctx context.Context, actor, action, details string) error

	// List returns the audit trail, newest first. Admin only.
	List(ctx context.Context) ([]audit.Log, error)
}

type ServiceImpl struct {
	audit.AuditLogRepository
	now func() time.Time
}

func NewAuditService(repo audit.AuditLogRepository) Service {
	return &ServiceImpl{
		AuditLogRepository: repo,
		now:                time.Now,
	}
}

func (s *ServiceImpl) Record(ctx context.Context, actor, action, details string) error {
	entry := audit.Log{
		ID:        uuid.NewString(),
		Timestamp: s.now().UTC().Format(time.RFC3339),
		Actor:     actor,
		Action:    action,
		Details:   details,
	}
	if err := s.AuditLogRepository.Append(ctx, entry); err != nil {
		return fmt.Errorf("failed to append audit log: %w", err)
	}
	return nil
}

func (s *ServiceImpl) List(ctx context.Context) ([]audit.Log, error) {
	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin() {
		return nil, user.ErrAdminPrivilegeRequired
	}

	return s.AuditLogRepository.List(ctx)
}
