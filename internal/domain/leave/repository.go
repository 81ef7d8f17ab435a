package leave

import (
	"context"
)

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	// GetByID returns ErrLeaveRequestNotFound when no row matches.
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	// GetByIDForUpdate is GetByID holding a row lock until the surrounding
	// transaction ends.
	GetByIDForUpdate(ctx context.Context, id string) (LeaveRequest, error)
	// UpdateStatus moves a request from one status to another. It fails with
	// ErrInvalidLeaveRequest when the request is missing or not in from.
	UpdateStatus(ctx context.Context, id string, from, to Status) (LeaveRequest, error)
	ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)
}

// LeaveBalanceRepository - interface for leave_balances table
type LeaveBalanceRepository interface {
	// Create fails with ErrBalanceAlreadyExists if the user has a balance.
	Create(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
	// GetByUserID returns ErrBalanceNotFound when the user has no balance.
	GetByUserID(ctx context.Context, userID string) (LeaveBalance, error)
	GetByUserIDForUpdate(ctx context.Context, userID string) (LeaveBalance, error)
	// ApplyDebit charges days to the balance and returns the new state. It
	// fails with ErrInsufficientBalance instead of going below zero.
	ApplyDebit(ctx context.Context, userID string, days int) (LeaveBalance, error)
}
