package user

import "context"

type Service interface {
	Create(ctx context.Context, req *CreateUserRequest) (*UserResponse, error)
	BulkSetup(ctx context.Context) (*BulkSetupResponse, error)
	List(ctx context.Context) ([]UserResponse, error)
	GetByID(ctx context.Context, id int64) (*UserResponse, error)
	Update(ctx context.Context, id int64, req *UpdateUserRequest) (*UserResponse, error)
	Delete(ctx context.Context, callerID, id int64) error
	ResetPassword(ctx context.Context, id int64, req *ResetPasswordRequest) error
	ChangePassword(ctx context.Context, id int64, req *ChangePasswordRequest) error

	SetSalary(ctx context.Context, id int64, req *SetSalaryRequest) (*SalaryResponse, error)
	GetSalary(ctx context.Context, id int64, month string) (*MonthSalaryResponse, error)
	ListSalaries(ctx context.Context, id int64) ([]SalaryResponse, error)
}
