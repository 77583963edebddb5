package payroll

import "github.com/shopspring/decimal"

// Projection is one employee's salary outlook for a month, computed up
// to a cutoff day. All amounts are exact decimals; rounding happens only
// when mapping to a response. CurrentSalary and MaxAdvanceAmount are
// signed and may go negative.
type Projection struct {
	Year      int
	Month     int
	CutoffDay int

	TotalSalary    decimal.Decimal
	DailyWage      decimal.Decimal
	LeaveDays      decimal.Decimal
	LeaveDeduction decimal.Decimal
	AdvanceAmount  decimal.Decimal

	CurrentSalary    decimal.Decimal
	FourDaysSalary   decimal.Decimal
	MaxAdvanceAmount decimal.Decimal
}
