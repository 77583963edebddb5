package user

import "errors"

var (
	ErrUserNotFound      = errors.New("User not found")
	ErrUsernameTaken     = errors.New("Username already exists")
	ErrCannotDeleteSelf  = errors.New("Cannot delete your own account")
	ErrSalaryNotSet      = errors.New("Salary not set for this month")
	ErrPasswordIncorrect = errors.New("Current password is incorrect")
)
