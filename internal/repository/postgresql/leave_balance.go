package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-attendance-leave/internal/domain/leave"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

// Create implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) Create(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (user_id, total, used, remaining, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, balance.UserID, balance.Total, balance.Used, balance.Remaining).
		Scan(&balance.CreatedAt, &balance.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return leave.LeaveBalance{}, leave.ErrBalanceAlreadyExists
		}
		return leave.LeaveBalance{}, fmt.Errorf("insert leave balance: %w", err)
	}

	return balance, nil
}

// GetByUserID implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetByUserID(ctx context.Context, userID string) (leave.LeaveBalance, error) {
	return r.getByUserID(ctx, userID, false)
}

// GetByUserIDForUpdate implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetByUserIDForUpdate(ctx context.Context, userID string) (leave.LeaveBalance, error) {
	return r.getByUserID(ctx, userID, true)
}

func (r *leaveBalanceRepositoryImpl) getByUserID(ctx context.Context, userID string, lock bool) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, total, used, remaining, created_at, updated_at
		FROM leave_balances
		WHERE user_id = $1
	`
	if lock {
		query += ` FOR UPDATE`
	}

	var b leave.LeaveBalance
	err := q.QueryRow(ctx, query, userID).Scan(
		&b.UserID, &b.Total, &b.Used, &b.Remaining, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isMalformedID(err) {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, err
	}

	return b, nil
}

// ApplyDebit implements leave.LeaveBalanceRepository. The update only matches
// while enough days remain, and the table's check constraints reject any
// write that would break remaining = total - used or go below zero.
func (r *leaveBalanceRepositoryImpl) ApplyDebit(ctx context.Context, userID string, days int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET used = used + $2, remaining = remaining - $2, updated_at = NOW()
		WHERE user_id = $1 AND remaining >= $2
		RETURNING user_id, total, used, remaining, created_at, updated_at
	`

	var b leave.LeaveBalance
	err := q.QueryRow(ctx, query, userID, days).Scan(
		&b.UserID, &b.Total, &b.Used, &b.Remaining, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isCheckViolation(err) {
			return leave.LeaveBalance{}, leave.ErrInsufficientBalance
		}
		return leave.LeaveBalance{}, fmt.Errorf("debit leave balance: %w", err)
	}

	return b, nil
}
