package leave

import (
	"time"

	"github.com/tuankiet2005-art/CSW303-Project/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	// UserID is only honored for managers filing on an employee's behalf.
	UserID *int64 `json:"user_id"`
	Date   string `json:"date"`
	Shift  string `json:"shift"`
	Reason string `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "Date must be in YYYY-MM-DD format"})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "Reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeaveRequest struct {
	Date   *string `json:"date"`
	Shift  *string `json:"shift"`
	Reason *string `json:"reason"`
}

func (r *UpdateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "Date must be in YYYY-MM-DD format"})
		}
	}

	if r.Reason != nil && validator.IsEmpty(*r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "Reason cannot be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "Status must be pending, approved or rejected"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Filter narrows List results. Month is a "YYYY-MM" prefix match on the
// leave date.
type Filter struct {
	UserID *int64
	Status *Status
	Month  *string
}

type LeaveRequestResponse struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name"`

	Date  *string `json:"date,omitempty"`
	Shift string  `json:"shift,omitempty"`

	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
	StartShift string  `json:"start_shift,omitempty"`
	EndShift   string  `json:"end_shift,omitempty"`

	Reason           string `json:"reason"`
	Status           string `json:"status"`
	SubmittedAt      string `json:"submitted_at"`
	CreatedByManager bool   `json:"created_by_manager"`
}

func ToLeaveRequestResponse(lr *LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:               lr.ID,
		UserID:           lr.UserID,
		UserName:         lr.UserName,
		Shift:            lr.Shift,
		StartShift:       lr.StartShift,
		EndShift:         lr.EndShift,
		Reason:           lr.Reason,
		Status:           string(lr.Status),
		SubmittedAt:      lr.SubmittedAt.Format(time.RFC3339),
		CreatedByManager: lr.CreatedByManager,
	}
	if lr.Date != nil {
		d := lr.Date.Format("2006-01-02")
		resp.Date = &d
	}
	if lr.StartDate != nil {
		d := lr.StartDate.Format("2006-01-02")
		resp.StartDate = &d
	}
	if lr.EndDate != nil {
		d := lr.EndDate.Format("2006-01-02")
		resp.EndDate = &d
	}
	return resp
}
