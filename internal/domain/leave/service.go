package leave

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hris-attendance-leave/internal/domain/user"
)

type LeaveService interface {
	// Accounting
	CalculateLeaveDays(fromDate, toDate time.Time) (int, error)
	// Request
	SubmitLeaveRequest(ctx context.Context, actor user.Identity, req SubmitLeaveRequestRequest) (SubmitLeaveRequestResponse, error)
	ApproveLeaveRequest(ctx context.Context, requestID string) (ApprovalResponse, error)
	DeclineLeaveRequest(ctx context.Context, requestID string) (LeaveRequestResponse, error)
	GetLeaveRequest(ctx context.Context, actor user.Identity, requestID string) (LeaveRequestResponse, error)
	ListMyLeaveRequests(ctx context.Context, actor user.Identity) ([]LeaveRequestResponse, error)
	ListLeaveRequests(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequestResponse, error)
	// Balance
	OpenBalance(ctx context.Context, req OpenBalanceRequest) (LeaveBalanceResponse, error)
	GetMyBalance(ctx context.Context, actor user.Identity) (LeaveBalanceResponse, error)
}
