package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// GetByUserAndDate returns nil when the user has no record for date.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)

	// Create inserts a record. A second record for the same (user, date)
	// fails with ErrDuplicateRecord.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// CreateIfMissing inserts a record unless one already exists for the
	// same (user, date); it reports whether a row was written.
	CreateIfMissing(ctx context.Context, attendance Attendance) (bool, error)

	// ListByUser returns the user's records ordered by date ascending.
	ListByUser(ctx context.Context, userID string) ([]Attendance, error)
}
