package leave

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/paylite-hr/payroll-backend-go/internal/domain/leave"
	"github.com/paylite-hr/payroll-backend-go/internal/domain/user"
	"github.com/paylite-hr/payroll-backend-go/internal/pkg/lock"
	auditService "github.com/paylite-hr/payroll-backend-go/internal/service/audit"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	leave.LeaveBalanceRepository
	auditService auditService.Service
	locker       lock.Locker
	now          func() time.Time
}

func NewLeaveService(
	requestRepo leave.LeaveRequestRepository,
	balanceRepo leave.LeaveBalanceRepository,
	audit auditService.Service,
	locker lock.Locker,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: requestRepo,
		LeaveBalanceRepository: balanceRepo,
		auditService:           audit,
		locker:                 locker,
		now:                    time.Now,
	}
}

// CreateRequest implements leave.LeaveService. Balances are not checked
// here; over-requesting is resolved at approval time by clamped deduction.
func (s *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if !principal.IsEmployee() {
		return leave.LeaveRequest{}, leave.ErrEmployeePrincipalRequired
	}

	request := leave.LeaveRequest{
		ID:         uuid.NewString(),
		EmployeeID: *principal.EmployeeID,
		LeaveType:  req.LeaveType,
		Days:       req.Days,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
		AppliedOn:  s.now().UTC().Format(time.RFC3339),
	}

	if err := s.LeaveRequestRepository.Create(ctx, request); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// Decide implements leave.LeaveService.
//
// Deduction fires exactly on the edge into Approved: a request that is not
// yet Approved and is being approved deducts its bucket once, clamped at
// zero. Re-applying Approved, or any transition to Rejected, leaves the
// balance untouched. Request and balance are persisted as one atomic batch.
func (s *LeaveServiceImpl) Decide(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if !principal.IsAdmin() {
		return leave.LeaveRequest{}, user.ErrAdminPrivilegeRequired
	}

	var decided leave.LeaveRequest
	lockKey := "lock:leave:" + req.ID

	err = s.locker.WithLock(ctx, lockKey, func(ctx context.Context) error {
		request, err := s.LeaveRequestRepository.GetByID(ctx, req.ID)
		if err != nil {
			return fmt.Errorf("failed to load leave request: %w", err)
		}
		if request == nil {
			return leave.ErrLeaveRequestNotFound
		}

		deduct := request.Status != leave.StatusApproved && req.Decision == leave.StatusApproved

		decidedAt := s.now().UTC().Format(time.RFC3339)
		request.Status = req.Decision
		request.DecidedAt = &decidedAt

		var balance *leave.LeaveBalance
		if deduct {
			current, err := s.LeaveBalanceRepository.GetByEmployeeID(ctx, request.EmployeeID)
			if err != nil {
				return fmt.Errorf("failed to load leave balance: %w", err)
			}
			current.Deduct(request.LeaveType, request.Days)
			balance = &current
		}

		if err := s.LeaveRequestRepository.Update(ctx, *request, balance); err != nil {
			return fmt.Errorf("failed to persist leave decision: %w", err)
		}

		decided = *request
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	details := fmt.Sprintf("leave request %s for %s set to %s", decided.ID, decided.EmployeeID, decided.Status)
	if err := s.auditService.Record(ctx, principal.UserID, "leave.decide", details); err != nil {
		// The decision itself is committed; a missing trail entry is not
		// worth failing the request over.
		slog.Error("failed to record leave decision audit entry", "error", err)
	}

	return decided, nil
}

// GetMyRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) GetMyRequests(ctx context.Context) ([]leave.LeaveRequest, error) {
	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !principal.IsEmployee() {
		return nil, leave.ErrEmployeePrincipalRequired
	}

	return s.listScoped(ctx, principal)
}

// ListRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListRequests(ctx context.Context) ([]leave.LeaveRequest, error) {
	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return s.listScoped(ctx, principal)
}

func (s *LeaveServiceImpl) listScoped(ctx context.Context, principal user.Principal) ([]leave.LeaveRequest, error) {
	all, err := s.LeaveRequestRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	requests := make([]leave.LeaveRequest, 0, len(all))
	for _, request := range all {
		if !principal.CanRead(request.EmployeeID) {
			continue
		}
		requests = append(requests, request)
	}

	// Newest application first.
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].AppliedOn > requests[j].AppliedOn
	})
	return requests, nil
}

// GetMyBalance implements leave.LeaveService.
func (s *LeaveServiceImpl) GetMyBalance(ctx context.Context) (leave.LeaveBalance, error) {
	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return leave.LeaveBalance{}, err
	}
	if !principal.IsEmployee() {
		return leave.LeaveBalance{}, leave.ErrEmployeePrincipalRequired
	}

	return s.LeaveBalanceRepository.GetByEmployeeID(ctx, *principal.EmployeeID)
}

// GetBalance implements leave.LeaveService.
func (s *LeaveServiceImpl) GetBalance(ctx context.Context, employeeID string) (leave.LeaveBalance, error) {
	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return leave.LeaveBalance{}, err
	}
	if !principal.CanRead(employeeID) {
		return leave.LeaveBalance{}, leave.ErrForbidden
	}

	return s.LeaveBalanceRepository.GetByEmployeeID(ctx, employeeID)
}
