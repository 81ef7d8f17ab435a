package http

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hris-attendance-leave/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/domain/leave"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/domain/user"
	"github.com/stretchr/testify/mock"
)

type MockAttendanceService struct {
	mock.Mock
}

func (m *MockAttendanceService) RecordAttendance(ctx context.Context, actor user.Identity, req attendance.RecordAttendanceRequest) (attendance.AttendanceResponse, error) {
	args := m.Called(ctx, actor, req)
	return args.Get(0).(attendance.AttendanceResponse), args.Error(1)
}

func (m *MockAttendanceService) ListMyAttendance(ctx context.Context, actor user.Identity) ([]attendance.AttendanceResponse, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]attendance.AttendanceResponse), args.Error(1)
}

func (m *MockAttendanceService) MarkAbsent(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockAttendanceService) Classify(at time.Time) attendance.Status {
	args := m.Called(at)
	return args.Get(0).(attendance.Status)
}

type MockLeaveService struct {
	mock.Mock
}

func (m *MockLeaveService) CalculateLeaveDays(fromDate, toDate time.Time) (int, error) {
	args := m.Called(fromDate, toDate)
	return args.Int(0), args.Error(1)
}

func (m *MockLeaveService) SubmitLeaveRequest(ctx context.Context, actor user.Identity, req leave.SubmitLeaveRequestRequest) (leave.SubmitLeaveRequestResponse, error) {
	args := m.Called(ctx, actor, req)
	return args.Get(0).(leave.SubmitLeaveRequestResponse), args.Error(1)
}

func (m *MockLeaveService) ApproveLeaveRequest(ctx context.Context, requestID string) (leave.ApprovalResponse, error) {
	args := m.Called(ctx, requestID)
	return args.Get(0).(leave.ApprovalResponse), args.Error(1)
}

func (m *MockLeaveService) DeclineLeaveRequest(ctx context.Context, requestID string) (leave.LeaveRequestResponse, error) {
	args := m.Called(ctx, requestID)
	return args.Get(0).(leave.LeaveRequestResponse), args.Error(1)
}

func (m *MockLeaveService) GetLeaveRequest(ctx context.Context, actor user.Identity, requestID string) (leave.LeaveRequestResponse, error) {
	args := m.Called(ctx, actor, requestID)
	return args.Get(0).(leave.LeaveRequestResponse), args.Error(1)
}

func (m *MockLeaveService) ListMyLeaveRequests(ctx context.Context, actor user.Identity) ([]leave.LeaveRequestResponse, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]leave.LeaveRequestResponse), args.Error(1)
}

func (m *MockLeaveService) ListLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]leave.LeaveRequestResponse), args.Error(1)
}

func (m *MockLeaveService) OpenBalance(ctx context.Context, req leave.OpenBalanceRequest) (leave.LeaveBalanceResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(leave.LeaveBalanceResponse), args.Error(1)
}

func (m *MockLeaveService) GetMyBalance(ctx context.Context, actor user.Identity) (leave.LeaveBalanceResponse, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).(leave.LeaveBalanceResponse), args.Error(1)
}
