package postgresqltest

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-attendance-leave/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/domain/user"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestAttendanceRepository_UniquePerDay(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(setup.DB)
	userID := setup.CreateUser(t, "Ayesha", user.RoleEmployee)

	created, err := repo.Create(ctx, attendance.Attendance{UserID: userID, Date: day(3), Status: attendance.StatusPresent})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	_, err = repo.Create(ctx, attendance.Attendance{UserID: userID, Date: day(3), Status: attendance.StatusLate})
	assert.ErrorIs(t, err, attendance.ErrDuplicateRecord)

	found, err := repo.GetByUserAndDate(ctx, userID, day(3))
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, attendance.StatusPresent, found.Status)
	assert.True(t, found.Date.Equal(day(3)))

	missing, err := repo.GetByUserAndDate(ctx, userID, day(4))
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAttendanceRepository_CreateIfMissing(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(setup.DB)
	userID := setup.CreateUser(t, "Ayesha", user.RoleEmployee)

	created, err := repo.CreateIfMissing(ctx, attendance.Attendance{UserID: userID, Date: day(3), Status: attendance.StatusAbsent})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateIfMissing(ctx, attendance.Attendance{UserID: userID, Date: day(3), Status: attendance.StatusAbsent})
	require.NoError(t, err)
	assert.False(t, created)
}

func TestAttendanceRepository_ListByUser(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(setup.DB)
	userID := setup.CreateUser(t, "Ayesha", user.RoleEmployee)

	for _, d := range []int{5, 3, 4} {
		_, err := repo.Create(ctx, attendance.Attendance{UserID: userID, Date: day(d), Status: attendance.StatusLate})
		require.NoError(t, err)
	}

	records, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.True(t, records[0].Date.Equal(day(3)))
	assert.True(t, records[2].Date.Equal(day(5)))
}
