package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/advance"
	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/leave"
	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/user"
	"github.com/tuankiet2005-art/CSW303-Project/internal/repository/postgresql"
)

func datePtr(value string) *time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return &d
}

func seedLeave(t *testing.T, ctx context.Context, u *user.User, date, shift string, status leave.Status) *leave.LeaveRequest {
	t.Helper()

	repo := postgresql.NewLeaveRequestRepository(testDB)
	lr := &leave.LeaveRequest{
		UserID:      u.ID,
		UserName:    u.Name,
		Date:        datePtr(date),
		Shift:       shift,
		Reason:      "personal",
		Status:      status,
		SubmittedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, lr))
	return lr
}

func TestLeaveRequestRepository_CreateAndGet(t *testing.T) {
	testDatabase(t)
	ctx := context.Background()
	truncateAllTables(t, ctx)

	u := seedUser(t, ctx, "anam", user.RoleEmployee)
	repo := postgresql.NewLeaveRequestRepository(testDB)

	created := seedLeave(t, ctx, u, "2025-06-10", leave.ShiftMorning, leave.StatusApproved)
	assert.NotZero(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.UserID)
	assert.Equal(t, "anam", got.UserName)
	assert.Equal(t, leave.ShiftMorning, got.Shift)
	require.NotNil(t, got.Date)
	assert.Equal(t, "2025-06-10", got.Date.Format("2006-01-02"))
	assert.False(t, got.IsRange())
}

func TestLeaveRequestRepository_GetByID_NotFound(t *testing.T) {
	testDatabase(t)
	ctx := context.Background()
	truncateAllTables(t, ctx)

	repo := postgresql.NewLeaveRequestRepository(testDB)

	_, err := repo.GetByID(ctx, 12345)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestLeaveRequestRepository_List_Filters(t *testing.T) {
	testDatabase(t)
	ctx := context.Background()
	truncateAllTables(t, ctx)

	first := seedUser(t, ctx, "anam", user.RoleEmployee)
	second := seedUser(t, ctx, "coi", user.RoleEmployee)
	repo := postgresql.NewLeaveRequestRepository(testDB)

	seedLeave(t, ctx, first, "2025-06-10", leave.ShiftMorning, leave.StatusApproved)
	seedLeave(t, ctx, first, "2025-07-01", leave.ShiftAllDay, leave.StatusApproved)
	seedLeave(t, ctx, second, "2025-06-15", leave.ShiftAfternoon, leave.StatusPending)

	byUser, err := repo.List(ctx, leave.Filter{UserID: &first.ID})
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	status := leave.StatusPending
	pending, err := repo.List(ctx, leave.Filter{Status: &status})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].UserID)

	month := "2025-06"
	june, err := repo.List(ctx, leave.Filter{Month: &month})
	require.NoError(t, err)
	assert.Len(t, june, 2)
}

func TestLeaveRequestRepository_UpdateStatus(t *testing.T) {
	testDatabase(t)
	ctx := context.Background()
	truncateAllTables(t, ctx)

	u := seedUser(t, ctx, "anam", user.RoleEmployee)
	repo := postgresql.NewLeaveRequestRepository(testDB)

	created := seedLeave(t, ctx, u, "2025-06-10", leave.ShiftAllDay, leave.StatusApproved)

	require.NoError(t, repo.UpdateStatus(ctx, created.ID, leave.StatusRejected))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, got.Status)

	approved, err := repo.ListApprovedByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, approved)
}

func seedAdvance(t *testing.T, ctx context.Context, u *user.User, amount int64, submittedAt time.Time, status advance.Status) *advance.AdvanceRequest {
	t.Helper()

	repo := postgresql.NewAdvanceRequestRepository(testDB)
	ar := &advance.AdvanceRequest{
		UserID:      u.ID,
		UserName:    u.Name,
		Amount:      decimal.NewFromInt(amount),
		Reason:      "family expense",
		Status:      status,
		SubmittedAt: submittedAt,
	}
	require.NoError(t, repo.Create(ctx, ar))
	return ar
}

func TestAdvanceRequestRepository_SumApprovedInMonth(t *testing.T) {
	testDatabase(t)
	ctx := context.Background()
	truncateAllTables(t, ctx)

	u := seedUser(t, ctx, "anam", user.RoleEmployee)
	other := seedUser(t, ctx, "coi", user.RoleEmployee)
	repo := postgresql.NewAdvanceRequestRepository(testDB)

	june := time.Date(2025, time.June, 5, 10, 0, 0, 0, time.UTC)
	seedAdvance(t, ctx, u, 200000, june, advance.StatusApproved)
	seedAdvance(t, ctx, u, 100000, june.AddDate(0, 0, 20), advance.StatusApproved)

	// Excluded: pending, other user, other month.
	seedAdvance(t, ctx, u, 999999, june, advance.StatusPending)
	seedAdvance(t, ctx, other, 50000, june, advance.StatusApproved)
	seedAdvance(t, ctx, u, 70000, june.AddDate(0, 1, 0), advance.StatusApproved)

	total, err := repo.SumApprovedInMonth(ctx, u.ID, "2025-06")
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(300000)), total.String())

	rows, err := repo.ListApprovedInMonth(ctx, u.ID, "2025-06")
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	// Month with no approved advances sums to zero.
	empty, err := repo.SumApprovedInMonth(ctx, u.ID, "2025-01")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())
}
