package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/paylite-hr/payroll-backend-go/internal/domain/leave"
	"github.com/paylite-hr/payroll-backend-go/internal/pkg/database"
)

type LeaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) *LeaveRequestRepository {
	return &LeaveRequestRepository{db: db}
}

func (r *LeaveRequestRepository) GetByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	return getJSON[leave.LeaveRequest](ctx, r.db, leaveKeyPrefix+id)
}

func (r *LeaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) error {
	return setJSON(ctx, r.db, leaveKeyPrefix+req.ID, req)
}

// Update rewrites the request and, when a balance is supplied, persists both
// in one MULTI/EXEC batch. An approval and its deduction therefore commit
// together; readers never observe one without the other.
func (r *LeaveRequestRepository) Update(ctx context.Context, req leave.LeaveRequest, balance *leave.LeaveBalance) error {
	rawReq, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to encode leave request %s: %w", req.ID, err)
	}

	if balance == nil {
		if err := r.db.Set(ctx, leaveKeyPrefix+req.ID, rawReq, 0).Err(); err != nil {
			return fmt.Errorf("failed to write leave request %s: %w", req.ID, err)
		}
		return nil
	}

	rawBalance, err := json.Marshal(balance)
	if err != nil {
		return fmt.Errorf("failed to encode leave balance for %s: %w", balance.EmployeeID, err)
	}

	pipe := r.db.TxPipeline()
	pipe.Set(ctx, leaveKeyPrefix+req.ID, rawReq, 0)
	pipe.HSet(ctx, leaveBalanceHashKey, balance.EmployeeID, rawBalance)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to commit leave decision %s: %w", req.ID, err)
	}
	return nil
}

func (r *LeaveRequestRepository) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	return scanPrefix[leave.LeaveRequest](ctx, r.db, leaveKeyPrefix)
}
