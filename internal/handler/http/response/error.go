package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/hris-attendance-leave/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/domain/leave"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/domain/user"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/pkg/validator"
)

type errorMapping struct {
	target error
	status int
	// message replaces err.Error() when set.
	message string
}

// errorMappings is matched in order with errors.Is, so wrapped errors that
// carry two sentinels take the first row that matches.
var errorMappings = []errorMapping{
	{user.ErrUnauthenticated, http.StatusUnauthorized, ""},
	{user.ErrInvalidToken, http.StatusUnauthorized, "Invalid or expired token"},
	{user.ErrUnauthorized, http.StatusForbidden, ""},
	{user.ErrUserNotFound, http.StatusNotFound, "User not found"},

	{attendance.ErrConfirmationRequired, http.StatusBadRequest, "You must confirm attendance"},
	{attendance.ErrDuplicateRecord, http.StatusConflict, "Attendance already marked for this date"},
	{attendance.ErrPersistenceFailure, http.StatusInternalServerError, ""},

	{leave.ErrInsufficientBalance, http.StatusBadRequest, "Insufficient leave balance"},
	{leave.ErrInvalidLeaveRequest, http.StatusConflict, "Leave request not found or already processed"},
	{leave.ErrLeaveRequestNotFound, http.StatusNotFound, "Leave request not found"},
	{leave.ErrUnauthorizedAccess, http.StatusForbidden, "You are not allowed to view this leave request"},
	{leave.ErrBalanceNotFound, http.StatusNotFound, "Leave balance not found"},
	{leave.ErrBalanceAlreadyExists, http.StatusConflict, "Leave balance already exists for this user"},
	{leave.ErrPersistenceFailure, http.StatusInternalServerError, ""},
}

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		validationFailed(w, validationErrs)
		return
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			message := m.message
			if message == "" {
				message = err.Error()
			}
			Error(w, m.status, message)
			return
		}
	}

	Error(w, http.StatusInternalServerError, "An unexpected error occurred")
}

// validationFailed reports the first violation as the message and every
// field in details.
func validationFailed(w http.ResponseWriter, errs validator.ValidationErrors) {
	message := "Validation failed"
	if first, ok := errs.First(); ok {
		message = first.Message
	}
	writeJSON(w, http.StatusUnprocessableEntity, Response{
		Error: &ErrorDetail{
			Code:    "VALIDATION_ERROR",
			Message: message,
			Details: errs.ToMap(),
		},
	})
}
