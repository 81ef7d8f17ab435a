package attendance

import "time"

// Status is the attendance outcome recorded for a business day.
type Status string

const (
	StatusPresent  Status = "present"
	StatusLate     Status = "late"
	StatusHalfTime Status = "half_time"
	// StatusAbsent is only written by the absence job for users who never checked in.
	StatusAbsent Status = "absent"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusLate, StatusHalfTime, StatusAbsent:
		return true
	}
	return false
}

// Attendance is one user's record for one business day. It is never updated
// after creation.
type Attendance struct {
	ID     string
	UserID string
	// Date is the business day in the attendance time zone, stored as a date
	// without time of day.
	Date      time.Time
	Status    Status
	CreatedAt time.Time
}
