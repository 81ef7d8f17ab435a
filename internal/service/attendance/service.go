package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-attendance-leave/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/domain/user"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/pkg/calendar"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/pkg/clock"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	user.UserRepository
	clock    clock.Clock
	location *time.Location
	schedule attendance.Schedule
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	userRepository user.UserRepository,
	clk clock.Clock,
	location *time.Location,
	schedule attendance.Schedule,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		UserRepository:       userRepository,
		clock:                clk,
		location:             location,
		schedule:             schedule,
	}
}

// Classify implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Classify(at time.Time) attendance.Status {
	return s.schedule.Classify(clock.MinutesSinceMidnight(at, s.location))
}

// RecordAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RecordAttendance(ctx context.Context, actor user.Identity, req attendance.RecordAttendanceRequest) (attendance.AttendanceResponse, error) {
	if !actor.IsAuthenticated() {
		return attendance.AttendanceResponse{}, user.ErrUnauthenticated
	}
	if _, err := s.UserRepository.GetByID(ctx, actor.UserID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return attendance.AttendanceResponse{}, user.ErrUnauthenticated
		}
		slog.ErrorContext(ctx, "failed to resolve attendance user", "user_id", actor.UserID, "error", err)
		return attendance.AttendanceResponse{}, attendance.ErrPersistenceFailure
	}

	if !req.Confirm {
		return attendance.AttendanceResponse{}, attendance.ErrConfirmationRequired
	}
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.clock.Now()
	today := clock.LocalDate(now, s.location)
	day := today.Format("2006-01-02")

	if req.Date != "" {
		date, _ := validator.ParseCalendarDate(req.Date)
		if !date.Equal(today) {
			return attendance.AttendanceResponse{}, validator.Single("date", fmt.Sprintf("date must be today's date (%s)", day))
		}
	}

	existing, err := s.AttendanceRepository.GetByUserAndDate(ctx, actor.UserID, today)
	if err != nil {
		slog.ErrorContext(ctx, "failed to check existing attendance", "user_id", actor.UserID, "date", day, "error", err)
		return attendance.AttendanceResponse{}, attendance.ErrPersistenceFailure
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrDuplicateRecord
	}

	record, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		UserID: actor.UserID,
		Date:   today,
		Status: s.Classify(now),
	})
	if err != nil {
		if errors.Is(err, attendance.ErrDuplicateRecord) {
			return attendance.AttendanceResponse{}, attendance.ErrDuplicateRecord
		}
		slog.ErrorContext(ctx, "failed to create attendance", "user_id", actor.UserID, "date", day, "error", err)
		return attendance.AttendanceResponse{}, attendance.ErrPersistenceFailure
	}

	return attendance.NewAttendanceResponse(record), nil
}

// ListMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListMyAttendance(ctx context.Context, actor user.Identity) ([]attendance.AttendanceResponse, error) {
	if !actor.IsAuthenticated() {
		return nil, user.ErrUnauthenticated
	}

	records, err := s.AttendanceRepository.ListByUser(ctx, actor.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list attendance", "user_id", actor.UserID, "error", err)
		return nil, attendance.ErrPersistenceFailure
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.NewAttendanceResponse(record))
	}
	return responses, nil
}

// MarkAbsent implements attendance.AttendanceService. It marks the most
// recent business day before today, so a day is only closed once it is over
// in the configured zone.
func (s *AttendanceServiceImpl) MarkAbsent(ctx context.Context) (int, error) {
	day := previousBusinessDay(clock.LocalDate(s.clock.Now(), s.location))

	employees, err := s.UserRepository.ListByRole(ctx, user.RoleEmployee)
	if err != nil {
		return 0, fmt.Errorf("list employees: %w", err)
	}

	marked := 0
	for _, emp := range employees {
		created, err := s.AttendanceRepository.CreateIfMissing(ctx, attendance.Attendance{
			UserID: emp.ID,
			Date:   day,
			Status: attendance.StatusAbsent,
		})
		if err != nil {
			return marked, fmt.Errorf("mark %s absent on %s: %w", emp.ID, day.Format("2006-01-02"), err)
		}
		if created {
			marked++
		}
	}
	return marked, nil
}

func previousBusinessDay(today time.Time) time.Time {
	day := today.AddDate(0, 0, -1)
	for !calendar.IsBusinessDay(day) {
		day = day.AddDate(0, 0, -1)
	}
	return day
}
