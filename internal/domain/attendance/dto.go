package attendance

import (
	"time"

	"github.com/cmlabs-hris/hris-attendance-leave/internal/pkg/validator"
)

type RecordAttendanceRequest struct {
	Confirm bool `json:"confirm"`
	// Date is optional; when given it must be today's date in the
	// attendance time zone.
	Date string `json:"date,omitempty" validate:"omitempty,calendardate"`
}

func (r *RecordAttendanceRequest) Validate() error {
	if errs := validator.Struct(r); len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		Date:      a.Date.Format("2006-01-02"),
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
	}
}
