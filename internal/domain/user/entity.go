package user

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
)

// User entity
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Name         string
	Email        string
	Role         Role

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MonthlySalary is the configured gross salary for one user and one
// calendar month ("YYYY-MM"). Absence of a row means the salary is not
// set for that month, which is distinct from zero.
type MonthlySalary struct {
	UserID    int64
	Month     string
	Amount    decimal.Decimal
	UpdatedAt time.Time
}
