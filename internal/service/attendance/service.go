package attendance

import (
	"context"
	"sort"
	"strconv"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/attendance"
	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/leave"
	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/user"
	"github.com/tuankiet2005-art/CSW303-Project/internal/pkg/validator"
)

type attendanceServiceImpl struct {
	userRepo  user.Repository
	leaveRepo leave.Repository
}

func NewAttendanceService(userRepo user.Repository, leaveRepo leave.Repository) attendance.Service {
	return &attendanceServiceImpl{
		userRepo:  userRepo,
		leaveRepo: leaveRepo,
	}
}

func (s *attendanceServiceImpl) employeesAndApprovedLeaves(ctx context.Context) ([]user.User, []leave.LeaveRequest, error) {
	role := user.RoleEmployee
	employees, err := s.userRepo.List(ctx, &role)
	if err != nil {
		return nil, nil, err
	}

	status := leave.StatusApproved
	leaves, err := s.leaveRepo.List(ctx, leave.Filter{Status: &status})
	if err != nil {
		return nil, nil, err
	}

	return employees, leaves, nil
}

// sortRefs orders employee names with Vietnamese collation rules.
func sortRefs(refs []attendance.EmployeeRef) {
	c := collate.New(language.Vietnamese)
	sort.SliceStable(refs, func(i, j int) bool {
		return c.CompareString(refs[i].Name, refs[j].Name) < 0
	})
}

// Daily implements attendance.Service.
func (s *attendanceServiceImpl) Daily(ctx context.Context, date string) (*attendance.DailyResponse, error) {
	day, ok := validator.IsValidDate(date)
	if !ok {
		return nil, attendance.ErrInvalidDate
	}

	employees, leaves, err := s.employeesAndApprovedLeaves(ctx)
	if err != nil {
		return nil, err
	}

	resp := &attendance.DailyResponse{
		Date:           date,
		PresentFullDay: []attendance.EmployeeRef{},
		MorningOnly:    []attendance.EmployeeRef{},
		AfternoonOnly:  []attendance.EmployeeRef{},
		AbsentFullDay:  []attendance.EmployeeRef{},
		TotalEmployees: len(employees),
	}

	for i := range employees {
		e := &employees[i]
		ref := attendance.EmployeeRef{ID: e.ID, Name: e.Name}
		p := ShiftPresenceFor(e.ID, day, leaves)

		switch {
		case p.Morning && p.Afternoon:
			resp.PresentFullDay = append(resp.PresentFullDay, ref)
		case p.Morning:
			resp.MorningOnly = append(resp.MorningOnly, ref)
		case p.Afternoon:
			resp.AfternoonOnly = append(resp.AfternoonOnly, ref)
		default:
			resp.AbsentFullDay = append(resp.AbsentFullDay, ref)
		}

		if p.Morning {
			resp.MorningPresent++
		} else {
			resp.MorningAbsent++
		}
		if p.Afternoon {
			resp.AfternoonPresent++
		} else {
			resp.AfternoonAbsent++
		}
	}

	sortRefs(resp.PresentFullDay)
	sortRefs(resp.MorningOnly)
	sortRefs(resp.AfternoonOnly)
	sortRefs(resp.AbsentFullDay)

	return resp, nil
}

// Monthly implements attendance.Service.
func (s *attendanceServiceImpl) Monthly(ctx context.Context, month string) (*attendance.MonthlyResponse, error) {
	if !validator.IsValidMonthKey(month) {
		return nil, attendance.ErrInvalidMonth
	}

	year, _ := strconv.Atoi(month[:4])
	mon, _ := strconv.Atoi(month[5:])
	days := DaysInMonth(year, mon)

	employees, leaves, err := s.employeesAndApprovedLeaves(ctx)
	if err != nil {
		return nil, err
	}

	c := collate.New(language.Vietnamese)
	sort.SliceStable(employees, func(i, j int) bool {
		return c.CompareString(employees[i].Name, employees[j].Name) < 0
	})

	resp := &attendance.MonthlyResponse{
		Month:       month,
		DaysInMonth: days,
		Employees:   make([]attendance.EmployeeMonth, 0, len(employees)),
	}

	for i := range employees {
		e := &employees[i]
		em := attendance.EmployeeMonth{
			ID:   e.ID,
			Name: e.Name,
			Days: make([]attendance.Presence, days),
		}
		for d := 1; d <= days; d++ {
			date := time.Date(year, time.Month(mon), d, 0, 0, 0, 0, time.UTC)
			em.Days[d-1] = ShiftPresenceFor(e.ID, date, leaves)
		}
		resp.Employees = append(resp.Employees, em)
	}

	return resp, nil
}
