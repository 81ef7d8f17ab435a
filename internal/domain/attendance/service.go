package attendance

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hris-attendance-leave/internal/domain/user"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// RecordAttendance classifies the current instant and stores today's record for actor
	RecordAttendance(ctx context.Context, actor user.Identity, req RecordAttendanceRequest) (AttendanceResponse, error)

	// ListMyAttendance retrieves attendance records for the authenticated user
	ListMyAttendance(ctx context.Context, actor user.Identity) ([]AttendanceResponse, error)

	// MarkAbsent records absent for employees with no record on the previous
	// business day; it returns the number of records written
	MarkAbsent(ctx context.Context) (int, error)

	// Classify returns the status a check-in at instant at would receive
	Classify(at time.Time) Status
}
