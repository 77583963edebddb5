package attendance

import (
	"time"

	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/attendance"
	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/leave"
)

const dateLayout = "2006-01-02"

// ShiftPresenceFor derives shift-level presence for one employee on one
// day from the given leave requests. Presence is the default; absence
// accumulates across requests, so overlapping half-day requests can add
// up to a fully absent day. Rows for other users or with a non-approved
// status are skipped.
//
// Legacy date-range rows absent the start shift on the start date, the
// end shift on the end date, and the whole day in between. When a range
// starts and ends on the same date, the start shift wins.
func ShiftPresenceFor(userID int64, date time.Time, requests []leave.LeaveRequest) attendance.Presence {
	presence := attendance.Presence{Morning: true, Afternoon: true}
	day := date.Format(dateLayout)

	for i := range requests {
		lr := &requests[i]
		if lr.UserID != userID || lr.Status != leave.StatusApproved {
			continue
		}

		var shift string
		switch {
		case lr.Date != nil && lr.Date.Format(dateLayout) == day:
			shift = lr.Shift
		case lr.IsRange():
			start := lr.StartDate.Format(dateLayout)
			end := lr.EndDate.Format(dateLayout)
			if day < start || day > end {
				continue
			}
			switch day {
			case start:
				shift = lr.StartShift
			case end:
				shift = lr.EndShift
			default:
				shift = leave.ShiftAllDay
			}
		default:
			continue
		}

		switch leave.NormalizeShift(shift) {
		case leave.ShiftMorning:
			presence.Morning = false
		case leave.ShiftAfternoon:
			presence.Afternoon = false
		default:
			presence.Morning = false
			presence.Afternoon = false
		}
	}

	return presence
}

// DaysInMonth returns the true day count, February included.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
