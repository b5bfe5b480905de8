package redis

import (
	"context"

	"github.com/paylite-hr/payroll-backend-go/internal/domain/leave"
	"github.com/paylite-hr/payroll-backend-go/internal/pkg/database"
)

type LeaveBalanceRepository struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) *LeaveBalanceRepository {
	return &LeaveBalanceRepository{db: db}
}

// GetByEmployeeID returns a zero-valued balance when no record exists yet;
// balances are created lazily on first write.
func (r *LeaveBalanceRepository) GetByEmployeeID(ctx context.Context, employeeID string) (leave.LeaveBalance, error) {
	balance, err := hashGet[leave.LeaveBalance](ctx, r.db, leaveBalanceHashKey, employeeID)
	if err != nil {
		return leave.LeaveBalance{}, err
	}
	if balance == nil {
		return leave.LeaveBalance{EmployeeID: employeeID}, nil
	}
	return *balance, nil
}

func (r *LeaveBalanceRepository) Upsert(ctx context.Context, balance leave.LeaveBalance) error {
	return hashSet(ctx, r.db, leaveBalanceHashKey, balance.EmployeeID, balance)
}
