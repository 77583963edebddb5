package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context, role *Role) ([]User, error)
	Update(ctx context.Context, u *User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}

type SalaryRepository interface {
	Upsert(ctx context.Context, s *MonthlySalary) error
	Get(ctx context.Context, userID int64, month string) (*MonthlySalary, error)
	ListByUser(ctx context.Context, userID int64) ([]MonthlySalary, error)
	// ListForMonth returns every configured salary for the month, keyed by user id.
	ListForMonth(ctx context.Context, month string) (map[int64]MonthlySalary, error)
}
