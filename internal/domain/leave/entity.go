package leave

import (
	"strings"
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Shift labels. Historical rows may carry "morning shift" / "afternoon
// shift"; NormalizeShift folds those in. Anything unrecognized counts as
// a full day.
const (
	ShiftAllDay    = "all day"
	ShiftMorning   = "morning"
	ShiftAfternoon = "afternoon"
)

func NormalizeShift(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case ShiftMorning, "morning shift":
		return ShiftMorning
	case ShiftAfternoon, "afternoon shift":
		return ShiftAfternoon
	default:
		return ShiftAllDay
	}
}

// LeaveRequest entity. New rows are single-date (Date + Shift); rows
// written before the single-date migration carry StartDate/EndDate with
// per-boundary shifts instead, and both forms stay readable.
type LeaveRequest struct {
	ID       int64
	UserID   int64
	UserName string

	Date  *time.Time
	Shift string

	StartDate  *time.Time
	EndDate    *time.Time
	StartShift string
	EndShift   string

	Reason           string
	Status           Status
	SubmittedAt      time.Time
	CreatedByManager bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsRange reports whether this is a legacy date-range row.
func (lr *LeaveRequest) IsRange() bool {
	return lr.Date == nil && lr.StartDate != nil && lr.EndDate != nil
}
