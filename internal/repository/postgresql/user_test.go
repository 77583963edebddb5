package postgresql_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/user"
	"github.com/tuankiet2005-art/CSW303-Project/internal/repository/postgresql"
)

func seedUser(t *testing.T, ctx context.Context, username string, role user.Role) *user.User {
	t.Helper()

	repo := postgresql.NewUserRepository(testDB)
	u := &user.User{
		Username:     username,
		PasswordHash: "$2a$10$test-hash",
		Name:         username,
		Role:         role,
	}
	require.NoError(t, repo.Create(ctx, u))
	return u
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	testDatabase(t)
	ctx := context.Background()
	truncateAllTables(t, ctx)

	repo := postgresql.NewUserRepository(testDB)

	created := seedUser(t, ctx, "anam", user.RoleEmployee)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "anam", byID.Username)
	assert.Equal(t, user.RoleEmployee, byID.Role)

	byUsername, err := repo.GetByUsername(ctx, "anam")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byUsername.ID)
}

func TestUserRepository_GetByUsername_NotFound(t *testing.T) {
	testDatabase(t)
	ctx := context.Background()
	truncateAllTables(t, ctx)

	repo := postgresql.NewUserRepository(testDB)

	_, err := repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	testDatabase(t)
	ctx := context.Background()
	truncateAllTables(t, ctx)

	repo := postgresql.NewUserRepository(testDB)
	seedUser(t, ctx, "anam", user.RoleEmployee)

	err := repo.Create(ctx, &user.User{
		Username:     "anam",
		PasswordHash: "$2a$10$other-hash",
		Name:         "Duplicate",
		Role:         user.RoleEmployee,
	})
	assert.ErrorIs(t, err, user.ErrUsernameTaken)
}

func TestUserRepository_List_FilterByRole(t *testing.T) {
	testDatabase(t)
	ctx := context.Background()
	truncateAllTables(t, ctx)

	repo := postgresql.NewUserRepository(testDB)
	seedUser(t, ctx, "admin", user.RoleManager)
	seedUser(t, ctx, "anam", user.RoleEmployee)
	seedUser(t, ctx, "coi", user.RoleEmployee)

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	role := user.RoleEmployee
	employees, err := repo.List(ctx, &role)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	for _, e := range employees {
		assert.Equal(t, user.RoleEmployee, e.Role)
	}
}

func TestUserRepository_Delete(t *testing.T) {
	testDatabase(t)
	ctx := context.Background()
	truncateAllTables(t, ctx)

	repo := postgresql.NewUserRepository(testDB)
	created := seedUser(t, ctx, "anam", user.RoleEmployee)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err := repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, created.ID), user.ErrUserNotFound)
}

func TestSalaryRepository_UpsertAndGet(t *testing.T) {
	testDatabase(t)
	ctx := context.Background()
	truncateAllTables(t, ctx)

	u := seedUser(t, ctx, "anam", user.RoleEmployee)
	repo := postgresql.NewSalaryRepository(testDB)

	require.NoError(t, repo.Upsert(ctx, &user.MonthlySalary{
		UserID: u.ID,
		Month:  "2025-06",
		Amount: decimal.NewFromInt(3000000),
	}))

	got, err := repo.Get(ctx, u.ID, "2025-06")
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(3000000)))

	// Upsert on the same month overwrites the amount.
	require.NoError(t, repo.Upsert(ctx, &user.MonthlySalary{
		UserID: u.ID,
		Month:  "2025-06",
		Amount: decimal.NewFromInt(3500000),
	}))

	got, err = repo.Get(ctx, u.ID, "2025-06")
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(3500000)))

	_, err = repo.Get(ctx, u.ID, "2025-07")
	assert.ErrorIs(t, err, user.ErrSalaryNotSet)
}

func TestSalaryRepository_ListForMonth(t *testing.T) {
	testDatabase(t)
	ctx := context.Background()
	truncateAllTables(t, ctx)

	first := seedUser(t, ctx, "anam", user.RoleEmployee)
	second := seedUser(t, ctx, "coi", user.RoleEmployee)
	repo := postgresql.NewSalaryRepository(testDB)

	require.NoError(t, repo.Upsert(ctx, &user.MonthlySalary{
		UserID: first.ID,
		Month:  "2025-06",
		Amount: decimal.NewFromInt(3000000),
	}))
	require.NoError(t, repo.Upsert(ctx, &user.MonthlySalary{
		UserID: second.ID,
		Month:  "2025-06",
		Amount: decimal.NewFromInt(4200000),
	}))
	require.NoError(t, repo.Upsert(ctx, &user.MonthlySalary{
		UserID: first.ID,
		Month:  "2025-07",
		Amount: decimal.NewFromInt(9999999),
	}))

	byUser, err := repo.ListForMonth(ctx, "2025-06")
	require.NoError(t, err)
	require.Len(t, byUser, 2)
	assert.True(t, byUser[first.ID].Amount.Equal(decimal.NewFromInt(3000000)))
	assert.True(t, byUser[second.ID].Amount.Equal(decimal.NewFromInt(4200000)))
}
