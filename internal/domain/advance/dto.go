package advance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tuankiet2005-art/CSW303-Project/internal/pkg/validator"
)

type CreateAdvanceRequest struct {
	// UserID is only honored for managers filing on an employee's behalf.
	UserID *int64          `json:"user_id"`
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}

func (r *CreateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "Amount must be greater than zero"})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "Reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAdvanceRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	Reason *string          `json:"reason"`
}

func (r *UpdateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Amount != nil && !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "Amount must be greater than zero"})
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

type Filter struct {
	UserID *int64
	Status *Status
}

type AdvanceRequestResponse struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	UserName    string          `json:"user_name"`
	Amount      decimal.Decimal `json:"amount"`
	Reason      string          `json:"reason"`
	Status      string          `json:"status"`
	SubmittedAt string          `json:"submitted_at"`
}

func ToAdvanceRequestResponse(ar *AdvanceRequest) AdvanceRequestResponse {
	return AdvanceRequestResponse{
		ID:          ar.ID,
		UserID:      ar.UserID,
		UserName:    ar.UserName,
		Amount:      ar.Amount,
		Reason:      ar.Reason,
		Status:      string(ar.Status),
		SubmittedAt: ar.SubmittedAt.Format(time.RFC3339),
	}
}
