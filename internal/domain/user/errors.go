package user

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUnauthenticated = errors.New("unauthorized: user required")
	ErrUnauthorized    = errors.New("insufficient permissions")
	ErrInvalidToken    = errors.New("invalid or expired token")

	ErrAdminAccessRequired    = fmt.Errorf("%w: admin access required", ErrUnauthorized)
	ErrEmployeeAccessRequired = fmt.Errorf("%w: only employees can perform this action", ErrUnauthorized)
)
