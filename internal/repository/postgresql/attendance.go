package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-attendance-leave/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, status, created_at
		FROM attendances
		WHERE user_id = $1 AND date = $2
	`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&a.ID,
		&a.UserID,
		&a.Date,
		&a.Status,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &a, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("generate attendance id: %w", err)
	}

	query := `
		INSERT INTO attendances (id, user_id, date, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err = q.QueryRow(ctx, query, id.String(), a.UserID, a.Date, string(a.Status)).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrDuplicateRecord
		}
		return attendance.Attendance{}, fmt.Errorf("insert attendance: %w", err)
	}

	return a, nil
}

// CreateIfMissing implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CreateIfMissing(ctx context.Context, a attendance.Attendance) (bool, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return false, fmt.Errorf("generate attendance id: %w", err)
	}

	query := `
		INSERT INTO attendances (id, user_id, date, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id, date) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, id.String(), a.UserID, a.Date, string(a.Status))
	if err != nil {
		return false, fmt.Errorf("insert attendance: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

// ListByUser implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, status, created_at
		FROM attendances
		WHERE user_id = $1
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(&a.ID, &a.UserID, &a.Date, &a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, a)
	}

	return records, rows.Err()
}
