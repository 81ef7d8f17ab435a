package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-attendance-leave/internal/domain/leave"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/domain/user"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/pkg/calendar"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/pkg/clock"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/pkg/database"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	transactor database.Transactor
	leave.LeaveRequestRepository
	leave.LeaveBalanceRepository
	user.UserRepository
	clock     clock.Clock
	location  *time.Location
	allotment int
}

func NewLeaveService(
	transactor database.Transactor,
	leaveRequestRepository leave.LeaveRequestRepository,
	leaveBalanceRepository leave.LeaveBalanceRepository,
	userRepository user.UserRepository,
	clk clock.Clock,
	location *time.Location,
	allotment int,
) leave.LeaveService {
	if allotment <= 0 {
		allotment = leave.DefaultAnnualAllotment
	}
	return &LeaveServiceImpl{
		transactor:             transactor,
		LeaveRequestRepository: leaveRequestRepository,
		LeaveBalanceRepository: leaveBalanceRepository,
		UserRepository:         userRepository,
		clock:                  clk,
		location:               location,
		allotment:              allotment,
	}
}

// domainErrors pass through to callers; anything else is a storage failure.
var domainErrors = []error{
	leave.ErrLeaveRequestNotFound,
	leave.ErrInvalidLeaveRequest,
	leave.ErrInsufficientBalance,
	leave.ErrBalanceNotFound,
	leave.ErrBalanceAlreadyExists,
	leave.ErrUnauthorizedAccess,
	user.ErrUserNotFound,
	user.ErrUnauthenticated,
	user.ErrUnauthorized,
}

func (l *LeaveServiceImpl) surface(ctx context.Context, op string, err error, attrs ...any) error {
	for _, known := range domainErrors {
		if errors.Is(err, known) {
			return err
		}
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return err
	}
	slog.ErrorContext(ctx, "leave operation failed", append([]any{"operation", op, "error", err}, attrs...)...)
	return leave.ErrPersistenceFailure
}

// CalculateLeaveDays implements leave.LeaveService.
func (l *LeaveServiceImpl) CalculateLeaveDays(fromDate, toDate time.Time) (int, error) {
	from := calendar.StartOfDay(fromDate)
	to := calendar.StartOfDay(toDate)
	if to.Before(from) {
		return 0, validator.Single("to_date", "end date cannot be before start date")
	}
	return calendar.BusinessDays(from, to), nil
}

// SubmitLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) SubmitLeaveRequest(ctx context.Context, actor user.Identity, req leave.SubmitLeaveRequestRequest) (leave.SubmitLeaveRequestResponse, error) {
	if !actor.IsAuthenticated() {
		return leave.SubmitLeaveRequestResponse{}, user.ErrUnauthenticated
	}
	if !actor.IsEmployee() {
		return leave.SubmitLeaveRequestResponse{}, user.ErrEmployeeAccessRequired
	}

	today := clock.LocalDate(l.clock.Now(), l.location)
	if err := req.ValidateOn(today); err != nil {
		return leave.SubmitLeaveRequestResponse{}, err
	}

	from, to := req.Dates()
	created, err := l.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		UserID:   actor.UserID,
		Reason:   req.Reason,
		FromDate: from,
		ToDate:   to,
		Type:     leave.Type(req.Type),
		Status:   leave.StatusPending,
	})
	if err != nil {
		return leave.SubmitLeaveRequestResponse{}, l.surface(ctx, "submit", err, "user_id", actor.UserID)
	}

	return leave.SubmitLeaveRequestResponse{LeaveRequestID: created.ID}, nil
}

// ApproveLeaveRequest implements leave.LeaveService. The status change and
// the balance debit commit together or not at all.
func (l *LeaveServiceImpl) ApproveLeaveRequest(ctx context.Context, requestID string) (leave.ApprovalResponse, error) {
	var result leave.ApprovalResponse

	err := l.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		request, err := l.LeaveRequestRepository.GetByIDForUpdate(txCtx, requestID)
		if err != nil {
			if errors.Is(err, leave.ErrLeaveRequestNotFound) {
				return leave.ErrInvalidLeaveRequest
			}
			return fmt.Errorf("lock leave request: %w", err)
		}
		if !request.Status.CanTransitionTo(leave.StatusApproved) {
			return leave.ErrInvalidLeaveRequest
		}

		days, err := l.CalculateLeaveDays(request.FromDate, request.ToDate)
		if err != nil {
			return leave.ErrInvalidLeaveRequest
		}

		balance, err := l.LeaveBalanceRepository.GetByUserIDForUpdate(txCtx, request.UserID)
		if err != nil {
			if errors.Is(err, leave.ErrBalanceNotFound) {
				return fmt.Errorf("%w: %w", leave.ErrInsufficientBalance, leave.ErrBalanceNotFound)
			}
			return fmt.Errorf("lock leave balance: %w", err)
		}
		if !balance.Covers(days) {
			return leave.ErrInsufficientBalance
		}

		debited, err := l.LeaveBalanceRepository.ApplyDebit(txCtx, request.UserID, days)
		if err != nil {
			return err
		}

		approved, err := l.LeaveRequestRepository.UpdateStatus(txCtx, request.ID, leave.StatusPending, leave.StatusApproved)
		if err != nil {
			return err
		}

		result = leave.ApprovalResponse{
			Request:     leave.NewLeaveRequestResponse(approved),
			DaysCharged: days,
			Balance:     leave.NewLeaveBalanceResponse(debited),
		}
		return nil
	})
	if err != nil {
		return leave.ApprovalResponse{}, l.surface(ctx, "approve", err, "leave_request_id", requestID)
	}

	slog.InfoContext(ctx, "leave request approved",
		"leave_request_id", requestID,
		"user_id", result.Request.UserID,
		"days", result.DaysCharged,
		"remaining", result.Balance.Remaining,
	)
	return result, nil
}

// DeclineLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) DeclineLeaveRequest(ctx context.Context, requestID string) (leave.LeaveRequestResponse, error) {
	declined, err := l.LeaveRequestRepository.UpdateStatus(ctx, requestID, leave.StatusPending, leave.StatusDeclined)
	if err != nil {
		return leave.LeaveRequestResponse{}, l.surface(ctx, "decline", err, "leave_request_id", requestID)
	}
	return leave.NewLeaveRequestResponse(declined), nil
}

// GetLeaveRequest implements leave.LeaveService. Employees only see their own
// requests.
func (l *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, actor user.Identity, requestID string) (leave.LeaveRequestResponse, error) {
	if !actor.IsAuthenticated() {
		return leave.LeaveRequestResponse{}, user.ErrUnauthenticated
	}

	request, err := l.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, l.surface(ctx, "get", err, "leave_request_id", requestID)
	}
	if !actor.IsAdmin() && request.UserID != actor.UserID {
		return leave.LeaveRequestResponse{}, leave.ErrUnauthorizedAccess
	}

	return leave.NewLeaveRequestResponse(request), nil
}

// ListMyLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListMyLeaveRequests(ctx context.Context, actor user.Identity) ([]leave.LeaveRequestResponse, error) {
	if !actor.IsAuthenticated() {
		return nil, user.ErrUnauthenticated
	}

	requests, err := l.LeaveRequestRepository.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, l.surface(ctx, "list_mine", err, "user_id", actor.UserID)
	}
	return toResponses(requests), nil
}

// ListLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, err := l.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return nil, l.surface(ctx, "list", err)
	}
	return toResponses(requests), nil
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.NewLeaveRequestResponse(r))
	}
	return responses
}

// OpenBalance implements leave.LeaveService. It runs once per employee at
// onboarding.
func (l *LeaveServiceImpl) OpenBalance(ctx context.Context, req leave.OpenBalanceRequest) (leave.LeaveBalanceResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveBalanceResponse{}, err
	}

	u, err := l.UserRepository.GetByID(ctx, req.UserID)
	if err != nil {
		return leave.LeaveBalanceResponse{}, l.surface(ctx, "open_balance", err, "user_id", req.UserID)
	}
	if u.Role != user.RoleEmployee {
		return leave.LeaveBalanceResponse{}, validator.Single("user_id", "leave balances are only opened for employees")
	}

	balance, err := l.LeaveBalanceRepository.Create(ctx, leave.NewBalance(u.ID, l.allotment))
	if err != nil {
		return leave.LeaveBalanceResponse{}, l.surface(ctx, "open_balance", err, "user_id", req.UserID)
	}
	return leave.NewLeaveBalanceResponse(balance), nil
}

// GetMyBalance implements leave.LeaveService.
func (l *LeaveServiceImpl) GetMyBalance(ctx context.Context, actor user.Identity) (leave.LeaveBalanceResponse, error) {
	if !actor.IsAuthenticated() {
		return leave.LeaveBalanceResponse{}, user.ErrUnauthenticated
	}
	if !actor.IsEmployee() {
		return leave.LeaveBalanceResponse{}, user.ErrEmployeeAccessRequired
	}

	balance, err := l.LeaveBalanceRepository.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return leave.LeaveBalanceResponse{}, l.surface(ctx, "get_balance", err, "user_id", actor.UserID)
	}
	return leave.NewLeaveBalanceResponse(balance), nil
}
