package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-attendance-leave/internal/domain/leave"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	DeclineRequest(w http.ResponseWriter, r *http.Request)

	OpenBalance(w http.ResponseWriter, r *http.Request)
	GetMyBalance(w http.ResponseWriter, r *http.Request)
	CalculateDays(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}

// CreateRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.SubmitLeaveRequestRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.WarnContext(r.Context(), "CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	actor := middleware.IdentityFromContext(r.Context())
	created, err := l.leaveService.SubmitLeaveRequest(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", created)
}

// GetMyRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	actor := middleware.IdentityFromContext(r.Context())

	requests, err := l.leaveService.ListMyLeaveRequests(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// GetRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	requestID, ok := leaveRequestID(w, r, leave.ErrLeaveRequestNotFound)
	if !ok {
		return
	}

	actor := middleware.IdentityFromContext(r.Context())
	request, err := l.leaveService.GetLeaveRequest(r.Context(), actor, requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, request)
}

// ListRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	var filter leave.LeaveRequestFilter
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := leave.ParseStatus(raw)
		if err != nil {
			response.HandleError(w, validator.Single("status", "status must be one of pending, approved, declined"))
			return
		}
		value := string(status)
		filter.Status = &value
	}

	requests, err := l.leaveService.ListLeaveRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ApproveRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	requestID, ok := leaveRequestID(w, r, leave.ErrInvalidLeaveRequest)
	if !ok {
		return
	}

	approval, err := l.leaveService.ApproveLeaveRequest(r.Context(), requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", approval)
}

// DeclineRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) DeclineRequest(w http.ResponseWriter, r *http.Request) {
	requestID, ok := leaveRequestID(w, r, leave.ErrInvalidLeaveRequest)
	if !ok {
		return
	}

	declined, err := l.leaveService.DeclineLeaveRequest(r.Context(), requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request declined", declined)
}

// leaveRequestID reads the {id} path parameter. Ids that are not UUIDv7 never
// reach storage; they are answered with missing as if no such request exists.
func leaveRequestID(w http.ResponseWriter, r *http.Request, missing error) (string, bool) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.HandleError(w, missing)
		return "", false
	}
	return id, true
}

// OpenBalance implements LeaveHandler.
func (l *LeaveHandlerImpl) OpenBalance(w http.ResponseWriter, r *http.Request) {
	var req leave.OpenBalanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.WarnContext(r.Context(), "OpenBalance decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	balance, err := l.leaveService.OpenBalance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave balance opened", balance)
}

// GetMyBalance implements LeaveHandler.
func (l *LeaveHandlerImpl) GetMyBalance(w http.ResponseWriter, r *http.Request) {
	actor := middleware.IdentityFromContext(r.Context())

	balance, err := l.leaveService.GetMyBalance(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}

// CalculateDays implements LeaveHandler. It previews the days an approval
// would charge.
func (l *LeaveHandlerImpl) CalculateDays(w http.ResponseWriter, r *http.Request) {
	var req leave.CalculateLeaveDaysRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.WarnContext(r.Context(), "CalculateDays decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	from, to := req.Dates()
	days, err := l.leaveService.CalculateLeaveDays(from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.CalculateLeaveDaysResponse{
		FromDate: from.Format("2006-01-02"),
		ToDate:   to.Format("2006-01-02"),
		Days:     days,
	})
}
