package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tuankiet2005-art/CSW303-Project/internal/pkg/validator"
)

// ceilInt rounds up to the next whole unit for display. Negative values
// round toward zero, matching ceiling semantics.
func ceilInt(d decimal.Decimal) int64 {
	return d.Ceil().IntPart()
}

// ProjectionResponse is the signed employee-facing view. Current salary
// and max advance are not clamped and may be negative.
type ProjectionResponse struct {
	Month     string `json:"month"`
	CutoffDay int    `json:"cutoff_day"`

	TotalSalary      int64   `json:"total_salary"`
	DailyWage        int64   `json:"daily_wage"`
	LeaveDays        float64 `json:"leave_days"`
	LeaveDeduction   int64   `json:"leave_deduction"`
	AdvanceAmount    int64   `json:"advance_amount"`
	CurrentSalary    int64   `json:"current_salary"`
	FourDaysSalary   int64   `json:"four_days_salary"`
	MaxAdvanceAmount int64   `json:"max_advance_amount"`
}

func ToProjectionResponse(p *Projection) ProjectionResponse {
	return ProjectionResponse{
		Month:            fmt.Sprintf("%04d-%02d", p.Year, p.Month),
		CutoffDay:        p.CutoffDay,
		TotalSalary:      ceilInt(p.TotalSalary),
		DailyWage:        ceilInt(p.DailyWage),
		LeaveDays:        p.LeaveDays.InexactFloat64(),
		LeaveDeduction:   ceilInt(p.LeaveDeduction),
		AdvanceAmount:    ceilInt(p.AdvanceAmount),
		CurrentSalary:    ceilInt(p.CurrentSalary),
		FourDaysSalary:   ceilInt(p.FourDaysSalary),
		MaxAdvanceAmount: ceilInt(p.MaxAdvanceAmount),
	}
}

// NetRemaining is the clamped manager-facing figure: never negative.
func NetRemaining(p *Projection) int64 {
	if p.CurrentSalary.IsNegative() {
		return 0
	}
	return ceilInt(p.CurrentSalary)
}

// SummaryRow is one employee in the manager's monthly payroll table.
// Salary and NetRemaining are nil when no salary is configured for the
// month; zero would misread as a configured zero salary.
type SummaryRow struct {
	UserID       int64    `json:"user_id"`
	Name         string   `json:"name"`
	Salary       *int64   `json:"salary"`
	AdvanceTotal int64    `json:"advance_total"`
	LeaveDays    *float64 `json:"leave_days"`
	NetRemaining *int64   `json:"net_remaining"`
}

type SummaryResponse struct {
	Month string       `json:"month"`
	Rows  []SummaryRow `json:"rows"`
}

// PreviewRequest recomputes the clamped remaining salary with candidate
// values typed into the set-salary form, without persisting anything.
type PreviewRequest struct {
	EmployeeID    int64           `json:"employee_id"`
	Month         string          `json:"month"`
	Salary        decimal.Decimal `json:"salary"`
	AdvanceAmount decimal.Decimal `json:"advance_amount"`
}

func (r *PreviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "Employee id is required"})
	}

	if !validator.IsValidMonthKey(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "Month must be in YYYY-MM format"})
	}

	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "Salary cannot be negative"})
	}

	if r.AdvanceAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "advance_amount", Message: "Advance amount cannot be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PreviewResponse struct {
	Month          string  `json:"month"`
	CutoffDay      int     `json:"cutoff_day"`
	DailyWage      int64   `json:"daily_wage"`
	LeaveDays      float64 `json:"leave_days"`
	LeaveDeduction int64   `json:"leave_deduction"`
	AdvanceAmount  int64   `json:"advance_amount"`
	NetRemaining   int64   `json:"net_remaining"`
}

// SetSalaryRequest persists the salary for the month and reconciles the
// employee's approved advances against AdvanceTotal.
type SetSalaryRequest struct {
	EmployeeID   int64           `json:"employee_id"`
	Month        string          `json:"month"`
	Salary       decimal.Decimal `json:"salary"`
	AdvanceTotal decimal.Decimal `json:"advance_total"`
}

func (r *SetSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "Employee id is required"})
	}

	if !validator.IsValidMonthKey(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "Month must be in YYYY-MM format"})
	}

	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "Salary cannot be negative"})
	}

	if r.AdvanceTotal.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "advance_total", Message: "Advance total cannot be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetSalaryResponse struct {
	EmployeeID        int64           `json:"employee_id"`
	Month             string          `json:"month"`
	Salary            decimal.Decimal `json:"salary"`
	AdvanceReconciled bool            `json:"advance_reconciled"`
	AdvanceTotal      decimal.Decimal `json:"advance_total"`
}
