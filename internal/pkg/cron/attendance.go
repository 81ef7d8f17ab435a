package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-attendance-leave/internal/domain/attendance"
)

const MarkAbsentJobName = "mark_absent_users"

type AttendanceJobs struct {
	attendanceService attendance.AttendanceService
	interval          time.Duration
}

func NewAttendanceJobs(attendanceService attendance.AttendanceService, interval time.Duration) *AttendanceJobs {
	if interval <= 0 {
		interval = time.Hour
	}
	return &AttendanceJobs{
		attendanceService: attendanceService,
		interval:          interval,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob(MarkAbsentJobName, j.interval, j.MarkAbsentUsers)
}

// MarkAbsentUsers records absent for employees who never checked in on the
// previous business day. Existing records are left alone, so it is safe to
// run as often as the interval fires.
func (j *AttendanceJobs) MarkAbsentUsers(ctx context.Context) error {
	marked, err := j.attendanceService.MarkAbsent(ctx)
	if err != nil {
		return err
	}
	if marked > 0 {
		slog.InfoContext(ctx, "Cron: Marked absent users", "count", marked)
	}
	return nil
}
