package user

import (
	"github.com/shopspring/decimal"
	"github.com/tuankiet2005-art/CSW303-Project/internal/pkg/validator"
)

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "Username is required"})
	} else if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "Username must be 3-50 characters (letters, digits, '.', '_', '-')"})
	}

	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "Password must be at least 6 characters"})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Name is required"})
	}

	if r.Role != "" && !validator.IsInSlice(r.Role, []string{string(RoleEmployee), string(RoleManager)}) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "Role must be employee or manager"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Name     *string `json:"name"`
	Email    *string `json:"email"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Username != nil && !validator.IsValidUsername(*r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "Username must be 3-50 characters (letters, digits, '.', '_', '-')"})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Name cannot be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ResetPasswordRequest resets another user's password. A nil NewPassword
// falls back to the roster default.
type ResetPasswordRequest struct {
	NewPassword *string `json:"new_password"`
}

func (r *ResetPasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.NewPassword != nil && len(*r.NewPassword) < 6 {
		errs = append(errs, validator.ValidationError{Field: "new_password", Message: "Password must be at least 6 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r *ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CurrentPassword) {
		errs = append(errs, validator.ValidationError{Field: "current_password", Message: "Current password is required"})
	}

	if len(r.NewPassword) < 6 {
		errs = append(errs, validator.ValidationError{Field: "new_password", Message: "Password must be at least 6 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetSalaryRequest struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

func (r *SetSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonthKey(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "Month must be in YYYY-MM format"})
	}

	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "Amount cannot be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
		Role:     string(u.Role),
	}
}

type SalaryResponse struct {
	UserID int64           `json:"user_id"`
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

func ToSalaryResponse(s *MonthlySalary) SalaryResponse {
	return SalaryResponse{
		UserID: s.UserID,
		Month:  s.Month,
		Amount: s.Amount,
	}
}

// MonthSalaryResponse is the per-month lookup payload. Salary is null
// when no amount is configured for that month; readers treat null as
// "not set", which is distinct from a configured zero.
type MonthSalaryResponse struct {
	Month  string           `json:"month"`
	Salary *decimal.Decimal `json:"salary"`
}

type BulkSetupResponse struct {
	Created []UserResponse `json:"created"`
	Skipped []string       `json:"skipped"`
}
