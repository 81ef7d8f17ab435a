package postgresqltest

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-attendance-leave/internal/domain/user"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetByID(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewUserRepository(setup.DB)

	id := setup.CreateUser(t, "Ayesha", user.RoleEmployee)

	u, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ayesha", u.Name)
	assert.Equal(t, user.RoleEmployee, u.Role)

	_, err = repo.GetByID(ctx, "0195a1b2-0000-7000-8000-000000000000")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	_, err = repo.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_ListByRole(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewUserRepository(setup.DB)

	setup.CreateUser(t, "Ayesha", user.RoleEmployee)
	setup.CreateUser(t, "Bilal", user.RoleEmployee)
	setup.CreateUser(t, "Admin", user.RoleAdmin)

	employees, err := repo.ListByRole(ctx, user.RoleEmployee)
	require.NoError(t, err)
	assert.Len(t, employees, 2)

	admins, err := repo.ListByRole(ctx, user.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, admins, 1)
}
