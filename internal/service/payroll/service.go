package payroll

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/advance"
	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/leave"
	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/payroll"
	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/user"
	"github.com/tuankiet2005-art/CSW303-Project/internal/pkg/database"
	"github.com/tuankiet2005-art/CSW303-Project/internal/pkg/validator"
	"github.com/tuankiet2005-art/CSW303-Project/internal/repository/postgresql"
)

// reconcileEpsilon is the tolerance when comparing the form-entered
// advance total against the recorded one.
var reconcileEpsilon = decimal.NewFromFloat(0.01)

type payrollServiceImpl struct {
	db          *database.DB
	userRepo    user.Repository
	salaryRepo  user.SalaryRepository
	leaveRepo   leave.Repository
	advanceRepo advance.Repository
	now         func() time.Time
}

func NewPayrollService(db *database.DB, userRepo user.Repository, salaryRepo user.SalaryRepository, leaveRepo leave.Repository, advanceRepo advance.Repository) payroll.Service {
	return &payrollServiceImpl{
		db:          db,
		userRepo:    userRepo,
		salaryRepo:  salaryRepo,
		leaveRepo:   leaveRepo,
		advanceRepo: advanceRepo,
		now:         time.Now,
	}
}

func parseMonthKey(month string) (year, mon int) {
	year, _ = strconv.Atoi(month[:4])
	mon, _ = strconv.Atoi(month[5:])
	return year, mon
}

func (s *payrollServiceImpl) cutoffFor(year, mon int) int {
	now := s.now()
	return CutoffDayFor(year, mon, now.Year(), int(now.Month()), now.Day())
}

// MyProjection implements payroll.Service. The response is nil, not an
// error, when no salary is configured for the running month.
func (s *payrollServiceImpl) MyProjection(ctx context.Context, userID int64) (*payroll.ProjectionResponse, error) {
	now := s.now()
	month := now.Format("2006-01")

	salary, err := s.salaryRepo.Get(ctx, userID, month)
	if errors.Is(err, user.ErrSalaryNotSet) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	leaves, err := s.leaveRepo.ListApprovedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	advanceTotal, err := s.advanceRepo.SumApprovedInMonth(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	p := Project(salary.Amount, now.Year(), int(now.Month()), now.Day(), userID, leaves, advanceTotal)
	if p == nil {
		return nil, nil
	}

	resp := payroll.ToProjectionResponse(p)
	return &resp, nil
}

// MonthlySummary implements payroll.Service.
func (s *payrollServiceImpl) MonthlySummary(ctx context.Context, month string) (*payroll.SummaryResponse, error) {
	if !validator.IsValidMonthKey(month) {
		return nil, validator.ValidationErrors{
			{Field: "month", Message: "Month must be in YYYY-MM format"},
		}
	}

	year, mon := parseMonthKey(month)
	cutoff := s.cutoffFor(year, mon)

	role := user.RoleEmployee
	employees, err := s.userRepo.List(ctx, &role)
	if err != nil {
		return nil, err
	}

	salaries, err := s.salaryRepo.ListForMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	status := leave.StatusApproved
	leaves, err := s.leaveRepo.List(ctx, leave.Filter{Status: &status})
	if err != nil {
		return nil, err
	}

	c := collate.New(language.Vietnamese)
	sort.SliceStable(employees, func(i, j int) bool {
		return c.CompareString(employees[i].Name, employees[j].Name) < 0
	})

	resp := &payroll.SummaryResponse{
		Month: month,
		Rows:  make([]payroll.SummaryRow, 0, len(employees)),
	}

	for i := range employees {
		e := &employees[i]

		advanceTotal, err := s.advanceRepo.SumApprovedInMonth(ctx, e.ID, month)
		if err != nil {
			return nil, err
		}

		row := payroll.SummaryRow{
			UserID:       e.ID,
			Name:         e.Name,
			AdvanceTotal: advanceTotal.Ceil().IntPart(),
		}

		days := decimal.NewFromInt(leaveShifts(e.ID, year, mon, cutoff, leaves)).Div(two).InexactFloat64()
		row.LeaveDays = &days

		// Rows without a configured salary stay "not applicable"; zero
		// would misread as zero pay remaining.
		if salary, ok := salaries[e.ID]; ok {
			if p := Project(salary.Amount, year, mon, cutoff, e.ID, leaves, advanceTotal); p != nil {
				amount := salary.Amount.Ceil().IntPart()
				remaining := payroll.NetRemaining(p)
				row.Salary = &amount
				row.NetRemaining = &remaining
			}
		}

		resp.Rows = append(resp.Rows, row)
	}

	return resp, nil
}

// PreviewRemaining implements payroll.Service. Nothing is written; the
// caller's candidate salary and advance replace the stored values.
func (s *payrollServiceImpl) PreviewRemaining(ctx context.Context, req *payroll.PreviewRequest) (*payroll.PreviewResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	leaves, err := s.leaveRepo.ListApprovedByUser(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	year, mon := parseMonthKey(req.Month)
	cutoff := s.cutoffFor(year, mon)

	p := Project(req.Salary, year, mon, cutoff, req.EmployeeID, leaves, req.AdvanceAmount)
	if p == nil {
		return nil, validator.ValidationErrors{
			{Field: "salary", Message: "Salary must be greater than zero"},
		}
	}

	return &payroll.PreviewResponse{
		Month:          req.Month,
		CutoffDay:      cutoff,
		DailyWage:      p.DailyWage.Ceil().IntPart(),
		LeaveDays:      p.LeaveDays.InexactFloat64(),
		LeaveDeduction: p.LeaveDeduction.Ceil().IntPart(),
		AdvanceAmount:  p.AdvanceAmount.Ceil().IntPart(),
		NetRemaining:   payroll.NetRemaining(p),
	}, nil
}

// SetSalary implements payroll.Service. The salary write and the advance
// reconciliation commit or roll back together.
func (s *payrollServiceImpl) SetSalary(ctx context.Context, req *payroll.SetSalaryRequest) (*payroll.SetSalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	target, err := s.userRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	resp := &payroll.SetSalaryResponse{
		EmployeeID:   req.EmployeeID,
		Month:        req.Month,
		Salary:       req.Salary,
		AdvanceTotal: req.AdvanceTotal,
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.salaryRepo.Upsert(txCtx, &user.MonthlySalary{
			UserID: req.EmployeeID,
			Month:  req.Month,
			Amount: req.Salary,
		}); err != nil {
			return fmt.Errorf("set salary: %w", err)
		}

		recorded, err := s.advanceRepo.SumApprovedInMonth(txCtx, req.EmployeeID, req.Month)
		if err != nil {
			return err
		}

		if req.AdvanceTotal.Sub(recorded).Abs().LessThanOrEqual(reconcileEpsilon) {
			return nil
		}
		resp.AdvanceReconciled = true

		existing, err := s.advanceRepo.ListApprovedInMonth(txCtx, req.EmployeeID, req.Month)
		if err != nil {
			return err
		}
		for i := range existing {
			if err := s.advanceRepo.Delete(txCtx, existing[i].ID); err != nil {
				return fmt.Errorf("delete advance %d: %w", existing[i].ID, err)
			}
		}

		if !req.AdvanceTotal.IsPositive() {
			return nil
		}

		return s.advanceRepo.Create(txCtx, &advance.AdvanceRequest{
			UserID:      target.ID,
			UserName:    target.Name,
			Amount:      req.AdvanceTotal,
			Reason:      "Monthly salary advance " + monthLabel(req.Month),
			Status:      advance.StatusApproved,
			SubmittedAt: s.submittedAtFor(req.Month),
		})
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// submittedAtFor keeps the replacement advance inside the month it
// reconciles, so later sums over that month still see it.
func (s *payrollServiceImpl) submittedAtFor(month string) time.Time {
	now := s.now()
	if now.Format("2006-01") == month {
		return now
	}
	year, mon := parseMonthKey(month)
	return time.Date(year, time.Month(mon), 1, 0, 0, 0, 0, time.UTC)
}

// monthLabel renders "2025-03" as "March 2025".
func monthLabel(month string) string {
	year, mon := parseMonthKey(month)
	return time.Date(year, time.Month(mon), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}
