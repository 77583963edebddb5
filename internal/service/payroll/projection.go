package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/leave"
	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/payroll"
	"github.com/tuankiet2005-art/CSW303-Project/internal/service/attendance"
)

var (
	two  = decimal.NewFromInt(2)
	four = decimal.NewFromInt(4)
)

// leaveShifts counts half-day shifts taken by the user in the month up
// to and including the cutoff day. A full day weighs 2, a half day 1;
// unrecognized or missing labels weigh 2. Legacy date-range rows carry
// no single leave date and contribute nothing. Rows for other users or
// with a non-approved status are skipped.
func leaveShifts(userID int64, year, month, cutoffDay int, leaves []leave.LeaveRequest) int64 {
	var shifts int64
	for i := range leaves {
		lr := &leaves[i]
		if lr.UserID != userID || lr.Status != leave.StatusApproved {
			continue
		}
		if lr.Date == nil {
			continue
		}
		y, m, d := lr.Date.Date()
		if y != year || int(m) != month || d > cutoffDay {
			continue
		}
		switch leave.NormalizeShift(lr.Shift) {
		case leave.ShiftMorning, leave.ShiftAfternoon:
			shifts++
		default:
			shifts += 2
		}
	}
	return shifts
}

// Project computes the salary outlook for one employee up to cutoffDay.
// It returns nil when totalSalary is not positive: a projection over a
// missing or zero salary has no meaning and must not read as "zero pay
// remaining". All arithmetic is exact decimal; callers round only when
// rendering.
func Project(totalSalary decimal.Decimal, year, month, cutoffDay int, userID int64, leaves []leave.LeaveRequest, advanceAmount decimal.Decimal) *payroll.Projection {
	if !totalSalary.IsPositive() {
		return nil
	}

	days := attendance.DaysInMonth(year, month)
	dailyWage := totalSalary.Div(decimal.NewFromInt(int64(days)))

	shifts := leaveShifts(userID, year, month, cutoffDay, leaves)
	leaveDays := decimal.NewFromInt(shifts).Div(two)
	leaveDeduction := dailyWage.Mul(leaveDays)

	earned := dailyWage.Mul(decimal.NewFromInt(int64(cutoffDay)))
	currentSalary := earned.Sub(advanceAmount).Sub(leaveDeduction)
	fourDaysSalary := dailyWage.Mul(four)

	return &payroll.Projection{
		Year:             year,
		Month:            month,
		CutoffDay:        cutoffDay,
		TotalSalary:      totalSalary,
		DailyWage:        dailyWage,
		LeaveDays:        leaveDays,
		LeaveDeduction:   leaveDeduction,
		AdvanceAmount:    advanceAmount,
		CurrentSalary:    currentSalary,
		FourDaysSalary:   fourDaysSalary,
		MaxAdvanceAmount: currentSalary.Sub(fourDaysSalary),
	}
}

// CutoffDayFor picks the projection cutoff: today's day of month when
// projecting the running month, the full month otherwise.
func CutoffDayFor(year, month int, todayYear, todayMonth, todayDay int) int {
	if year == todayYear && month == todayMonth {
		return todayDay
	}
	return attendance.DaysInMonth(year, month)
}
