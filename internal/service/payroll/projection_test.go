package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/leave"
	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/payroll"
)

func datePtr(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func approvedLeave(userID int64, day, shift string) leave.LeaveRequest {
	return leave.LeaveRequest{
		UserID: userID,
		Date:   datePtr(day),
		Shift:  shift,
		Status: leave.StatusApproved,
	}
}

func money(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestProject_NilWhenSalaryNotPositive(t *testing.T) {
	assert.Nil(t, Project(decimal.Zero, 2025, 6, 10, 1, nil, decimal.Zero))
	assert.Nil(t, Project(money(-100), 2025, 6, 10, 1, nil, decimal.Zero))
}

// June 2025 has 30 days: 3,000,000 over 30 days is a 100,000 daily wage.
func TestProject_BaseScenario(t *testing.T) {
	p := Project(money(3000000), 2025, 6, 10, 1, nil, decimal.Zero)
	require.NotNil(t, p)

	assert.True(t, p.DailyWage.Equal(money(100000)), "daily wage %s", p.DailyWage)
	assert.True(t, p.CurrentSalary.Equal(money(1000000)), "current %s", p.CurrentSalary)
	assert.True(t, p.FourDaysSalary.Equal(money(400000)), "four days %s", p.FourDaysSalary)
	assert.True(t, p.MaxAdvanceAmount.Equal(money(600000)), "max advance %s", p.MaxAdvanceAmount)
	assert.True(t, p.LeaveDays.IsZero())
	assert.True(t, p.LeaveDeduction.IsZero())
}

func TestProject_FullMonthCutoffEqualsSalary(t *testing.T) {
	p := Project(money(3000000), 2025, 6, 30, 1, nil, decimal.Zero)
	require.NotNil(t, p)

	assert.True(t, p.CurrentSalary.Equal(money(3000000)), "current %s", p.CurrentSalary)
}

func TestProject_Deterministic(t *testing.T) {
	leaves := []leave.LeaveRequest{approvedLeave(1, "2025-06-05", "morning")}

	a := Project(money(3000000), 2025, 6, 10, 1, leaves, money(200000))
	b := Project(money(3000000), 2025, 6, 10, 1, leaves, money(200000))
	require.NotNil(t, a)
	require.NotNil(t, b)

	assert.Equal(t, a, b)
}

func TestProject_ShiftWeights(t *testing.T) {
	tests := []struct {
		name     string
		shift    string
		wantDays string
	}{
		{"morning is half a day", "morning", "0.5"},
		{"afternoon is half a day", "afternoon", "0.5"},
		{"morning shift synonym", "morning shift", "0.5"},
		{"afternoon shift synonym", "afternoon shift", "0.5"},
		{"all day is a full day", "all day", "1"},
		{"unknown label falls back to full day", "vacation", "1"},
		{"missing label falls back to full day", "", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leaves := []leave.LeaveRequest{approvedLeave(1, "2025-06-05", tt.shift)}
			p := Project(money(3000000), 2025, 6, 10, 1, leaves, decimal.Zero)
			require.NotNil(t, p)

			want := decimal.RequireFromString(tt.wantDays)
			assert.True(t, p.LeaveDays.Equal(want), "leave days %s", p.LeaveDays)
			assert.True(t, p.LeaveDeduction.Equal(p.DailyWage.Mul(want)))
		})
	}
}

func TestProject_LeaveAndAdvanceDeductions(t *testing.T) {
	leaves := []leave.LeaveRequest{approvedLeave(1, "2025-06-05", "all day")}

	p := Project(money(3000000), 2025, 6, 10, 1, leaves, money(200000))
	require.NotNil(t, p)

	// 1,000,000 earned - 200,000 advance - 100,000 leave deduction.
	assert.True(t, p.CurrentSalary.Equal(money(700000)), "current %s", p.CurrentSalary)
	assert.True(t, p.MaxAdvanceAmount.Equal(money(300000)), "max advance %s", p.MaxAdvanceAmount)
}

func TestProject_AdvanceMonotonicity(t *testing.T) {
	low := Project(money(3000000), 2025, 6, 10, 1, nil, money(100000))
	high := Project(money(3000000), 2025, 6, 10, 1, nil, money(500000))
	require.NotNil(t, low)
	require.NotNil(t, high)

	assert.True(t, high.CurrentSalary.LessThan(low.CurrentSalary))
}

func TestProject_CutoffBoundaryInclusive(t *testing.T) {
	onCutoff := []leave.LeaveRequest{approvedLeave(1, "2025-06-10", "all day")}
	afterCutoff := []leave.LeaveRequest{approvedLeave(1, "2025-06-11", "all day")}

	p := Project(money(3000000), 2025, 6, 10, 1, onCutoff, decimal.Zero)
	require.NotNil(t, p)
	assert.True(t, p.LeaveDays.Equal(money(1)), "leave on the cutoff day counts")

	p = Project(money(3000000), 2025, 6, 10, 1, afterCutoff, decimal.Zero)
	require.NotNil(t, p)
	assert.True(t, p.LeaveDays.IsZero(), "leave after the cutoff day does not count")
}

func TestProject_SignedOutputsGoNegative(t *testing.T) {
	p := Project(money(3000000), 2025, 6, 1, 1, nil, money(500000))
	require.NotNil(t, p)

	// 100,000 earned - 500,000 advance.
	assert.True(t, p.CurrentSalary.Equal(money(-400000)), "current %s", p.CurrentSalary)
	assert.True(t, p.MaxAdvanceAmount.Equal(money(-800000)), "max advance %s", p.MaxAdvanceAmount)
}

func TestProject_SkipsIrrelevantRows(t *testing.T) {
	leaves := []leave.LeaveRequest{
		// Another employee.
		approvedLeave(2, "2025-06-05", "all day"),
		// Not approved.
		{UserID: 1, Date: datePtr("2025-06-05"), Shift: "all day", Status: leave.StatusPending},
		// Another month.
		approvedLeave(1, "2025-05-05", "all day"),
		// Legacy range rows carry no single leave date.
		{
			UserID:     1,
			StartDate:  datePtr("2025-06-02"),
			EndDate:    datePtr("2025-06-04"),
			StartShift: "all day",
			EndShift:   "all day",
			Status:     leave.StatusApproved,
		},
	}

	p := Project(money(3000000), 2025, 6, 10, 1, leaves, decimal.Zero)
	require.NotNil(t, p)

	assert.True(t, p.LeaveDays.IsZero())
	assert.True(t, p.CurrentSalary.Equal(money(1000000)))
}

func TestProject_FebruaryDayCounts(t *testing.T) {
	leap := Project(money(2900000), 2024, 2, 29, 1, nil, decimal.Zero)
	require.NotNil(t, leap)
	assert.True(t, leap.DailyWage.Equal(money(100000)), "29 days in February 2024")

	plain := Project(money(2800000), 2025, 2, 28, 1, nil, decimal.Zero)
	require.NotNil(t, plain)
	assert.True(t, plain.DailyWage.Equal(money(100000)), "28 days in February 2025")
}

func TestToProjectionResponse_CeilsAtDisplayOnly(t *testing.T) {
	// 1,000,000 over 30 days with one half day: exact values are not
	// whole, ceiling applies per displayed field.
	leaves := []leave.LeaveRequest{approvedLeave(1, "2025-06-05", "morning")}
	p := Project(money(1000000), 2025, 6, 10, 1, leaves, decimal.Zero)
	require.NotNil(t, p)

	resp := payroll.ToProjectionResponse(p)

	// 1,000,000/30 = 33,333.33..., ceil 33,334.
	assert.Equal(t, int64(33334), resp.DailyWage)
	assert.Equal(t, 0.5, resp.LeaveDays)
	// Half a daily wage = 16,666.66..., ceil 16,667.
	assert.Equal(t, int64(16667), resp.LeaveDeduction)
	// 333,333.33... - 16,666.66... = 316,666.66..., ceil 316,667.
	assert.Equal(t, int64(316667), resp.CurrentSalary)
}

func TestNetRemaining_ClampsNegativeToZero(t *testing.T) {
	p := Project(money(3000000), 2025, 6, 1, 1, nil, money(500000))
	require.NotNil(t, p)

	assert.Equal(t, int64(0), payroll.NetRemaining(p))

	p = Project(money(3000000), 2025, 6, 10, 1, nil, decimal.Zero)
	require.NotNil(t, p)

	assert.Equal(t, int64(1000000), payroll.NetRemaining(p))
}

func TestCutoffDayFor(t *testing.T) {
	assert.Equal(t, 17, CutoffDayFor(2025, 6, 2025, 6, 17))
	assert.Equal(t, 31, CutoffDayFor(2025, 5, 2025, 6, 17))
	assert.Equal(t, 29, CutoffDayFor(2024, 2, 2025, 6, 17))
}
