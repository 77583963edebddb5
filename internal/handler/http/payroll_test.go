package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/advance"
	"github.com/tuankiet2005-art/CSW303-Project/internal/repository/postgresql"
)

func seedApprovedAdvance(t *testing.T, ctx context.Context, userID int64, amount int64, submittedAt time.Time) *advance.AdvanceRequest {
	t.Helper()

	repo := postgresql.NewAdvanceRequestRepository(testHandlerDB)
	ar := &advance.AdvanceRequest{
		UserID:      userID,
		UserName:    "anam",
		Amount:      decimal.NewFromInt(amount),
		Reason:      "family expense",
		Status:      advance.StatusApproved,
		SubmittedAt: submittedAt,
	}
	require.NoError(t, repo.Create(ctx, ar))
	return ar
}

func setSalary(t *testing.T, router http.Handler, token string, employeeID int64, month string, salary, advanceTotal interface{}) (reconciled bool) {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/payroll/salary", token, map[string]interface{}{
		"employee_id":   employeeID,
		"month":         month,
		"salary":        salary,
		"advance_total": advanceTotal,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data struct {
			AdvanceReconciled bool `json:"advance_reconciled"`
		} `json:"data"`
	}
	require.NoError(t, decodeBody(rec, &resp))
	return resp.Data.AdvanceReconciled
}

func TestSetSalary_AdvanceReconciliation(t *testing.T) {
	handlerTestInit(t)
	ctx := context.Background()
	truncateHandlerTables(t, ctx)

	employeeID := createTestUser(t, ctx, "anam", "123456", "employee")
	createTestUser(t, ctx, "admin", "admin123", "manager")
	router := newTestRouter(t)
	managerToken := loginAs(t, router, "admin", "admin123")

	advanceRepo := postgresql.NewAdvanceRequestRepository(testHandlerDB)
	const month = "2025-06"

	first := seedApprovedAdvance(t, ctx, employeeID, 200000, time.Date(2025, time.June, 5, 10, 0, 0, 0, time.UTC))
	second := seedApprovedAdvance(t, ctx, employeeID, 100000, time.Date(2025, time.June, 20, 10, 0, 0, 0, time.UTC))

	// A total within 0.01 of the recorded 300,000 leaves the rows alone.
	reconciled := setSalary(t, router, managerToken, employeeID, month, 3000000, 300000.005)
	assert.False(t, reconciled)

	rows, err := advanceRepo.ListApprovedInMonth(ctx, employeeID, month)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, first.ID, rows[0].ID)
	assert.Equal(t, second.ID, rows[1].ID)

	// A differing total replaces every approved advance in the month
	// with a single row carrying the new amount, dated inside the month.
	reconciled = setSalary(t, router, managerToken, employeeID, month, 3000000, 500000)
	assert.True(t, reconciled)

	rows, err = advanceRepo.ListApprovedInMonth(ctx, employeeID, month)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Amount.Equal(decimal.NewFromInt(500000)), rows[0].Amount.String())
	assert.Equal(t, advance.StatusApproved, rows[0].Status)
	assert.Equal(t, "Monthly salary advance June 2025", rows[0].Reason)
	assert.Equal(t, month, rows[0].SubmittedAt.UTC().Format("2006-01"))

	// A zero total deletes without creating a replacement.
	reconciled = setSalary(t, router, managerToken, employeeID, month, 3000000, 0)
	assert.True(t, reconciled)

	rows, err = advanceRepo.ListApprovedInMonth(ctx, employeeID, month)
	require.NoError(t, err)
	assert.Empty(t, rows)

	// The salary itself was persisted alongside the reconciliation.
	salaryRepo := postgresql.NewSalaryRepository(testHandlerDB)
	stored, err := salaryRepo.Get(ctx, employeeID, month)
	require.NoError(t, err)
	assert.True(t, stored.Amount.Equal(decimal.NewFromInt(3000000)))
}
