package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInvalidLeaveRequest  = errors.New("invalid leave request")
	ErrInsufficientBalance  = errors.New("insufficient leave balance")
	ErrBalanceNotFound      = errors.New("leave balance not found for user")
	ErrBalanceAlreadyExists = errors.New("leave balance already exists for user")
	ErrUnauthorizedAccess   = errors.New("unauthorized to access this leave request")
	ErrPersistenceFailure   = errors.New("something went wrong while processing the leave request")
)
