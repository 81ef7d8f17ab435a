package leave

import (
	"time"

	"github.com/cmlabs-hris/hris-attendance-leave/internal/pkg/validator"
)

type SubmitLeaveRequestRequest struct {
	Reason   string `json:"reason" validate:"notblank,max=1000"`
	FromDate string `json:"from_date" validate:"required,calendardate"`
	ToDate   string `json:"to_date" validate:"required,calendardate"`
	Type     string `json:"type" validate:"required,oneof=casual medical half_leave"`
}

func (r *SubmitLeaveRequestRequest) Validate() error {
	return r.validate(time.Time{})
}

// ValidateOn is Validate plus the rule that leave starts after today.
func (r *SubmitLeaveRequestRequest) ValidateOn(today time.Time) error {
	return r.validate(today)
}

func (r *SubmitLeaveRequestRequest) validate(today time.Time) error {
	errs := validator.Struct(r)
	if len(errs) > 0 {
		return errs
	}

	from, to := r.Dates()
	if !today.IsZero() && !from.After(today) {
		return validator.Single("from_date", "leave must start at least one day after today")
	}
	if to.Before(from) {
		return validator.Single("to_date", "end date cannot be before start date")
	}

	return nil
}

// Dates returns the parsed range. Only meaningful after Validate succeeds.
func (r *SubmitLeaveRequestRequest) Dates() (from, to time.Time) {
	from, _ = validator.ParseCalendarDate(r.FromDate)
	to, _ = validator.ParseCalendarDate(r.ToDate)
	return from, to
}

type SubmitLeaveRequestResponse struct {
	LeaveRequestID string `json:"leave_request_id"`
}

type CalculateLeaveDaysRequest struct {
	FromDate string `json:"from_date" validate:"required,calendardate"`
	ToDate   string `json:"to_date" validate:"required,calendardate"`
}

func (r *CalculateLeaveDaysRequest) Validate() error {
	if errs := validator.Struct(r); len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CalculateLeaveDaysRequest) Dates() (from, to time.Time) {
	from, _ = validator.ParseCalendarDate(r.FromDate)
	to, _ = validator.ParseCalendarDate(r.ToDate)
	return from, to
}

type CalculateLeaveDaysResponse struct {
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
	Days     int    `json:"days"`
}

type OpenBalanceRequest struct {
	UserID string `json:"user_id" validate:"notblank"`
}

func (r *OpenBalanceRequest) Validate() error {
	if errs := validator.Struct(r); len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestFilter struct {
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=pending approved declined"`
}

func (f *LeaveRequestFilter) Validate() error {
	if errs := validator.Struct(f); len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  *string   `json:"user_name,omitempty"`
	UserEmail *string   `json:"user_email,omitempty"`
	Reason    string    `json:"reason"`
	FromDate  string    `json:"from_date"`
	ToDate    string    `json:"to_date"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewLeaveRequestResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		UserName:  r.UserName,
		UserEmail: r.UserEmail,
		Reason:    r.Reason,
		FromDate:  r.FromDate.Format("2006-01-02"),
		ToDate:    r.ToDate.Format("2006-01-02"),
		Type:      string(r.Type),
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type LeaveBalanceResponse struct {
	UserID    string `json:"user_id"`
	Total     int    `json:"total"`
	Used      int    `json:"used"`
	Remaining int    `json:"remaining"`
}

func NewLeaveBalanceResponse(b LeaveBalance) LeaveBalanceResponse {
	return LeaveBalanceResponse{
		UserID:    b.UserID,
		Total:     b.Total,
		Used:      b.Used,
		Remaining: b.Remaining,
	}
}

type ApprovalResponse struct {
	Request     LeaveRequestResponse `json:"request"`
	DaysCharged int                  `json:"days_charged"`
	Balance     LeaveBalanceResponse `json:"balance"`
}
