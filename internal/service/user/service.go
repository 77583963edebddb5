package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/user"
	"github.com/tuankiet2005-art/CSW303-Project/internal/fixtures"
)

type userServiceImpl struct {
	userRepo   user.Repository
	salaryRepo user.SalaryRepository
}

func NewUserService(userRepo user.Repository, salaryRepo user.SalaryRepository) user.Service {
	return &userServiceImpl{
		userRepo:   userRepo,
		salaryRepo: salaryRepo,
	}
}

// Create implements user.Service.
func (s *userServiceImpl) Create(ctx context.Context, req *user.CreateUserRequest) (*user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := user.RoleEmployee
	if req.Role != "" {
		role = user.Role(req.Role)
	}

	newUser := &user.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Name:         req.Name,
		Email:        req.Email,
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	resp := user.ToUserResponse(newUser)
	return &resp, nil
}

// BulkSetup implements user.Service. Roster accounts that already exist
// are reported in Skipped rather than failing the whole batch.
func (s *userServiceImpl) BulkSetup(ctx context.Context) (*user.BulkSetupResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(fixtures.DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	result := &user.BulkSetupResponse{
		Created: []user.UserResponse{},
		Skipped: []string{},
	}

	for _, entry := range fixtures.Roster {
		newUser := &user.User{
			Username:     entry.Username,
			PasswordHash: string(hash),
			Name:         entry.Name,
			Role:         user.RoleEmployee,
		}

		err := s.userRepo.Create(ctx, newUser)
		if errors.Is(err, user.ErrUsernameTaken) {
			result.Skipped = append(result.Skipped, entry.Username)
			continue
		}
		if err != nil {
			return nil, err
		}

		result.Created = append(result.Created, user.ToUserResponse(newUser))
	}

	return result, nil
}

// List implements user.Service.
func (s *userServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.userRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, user.ToUserResponse(&users[i]))
	}

	return responses, nil
}

// GetByID implements user.Service.
func (s *userServiceImpl) GetByID(ctx context.Context, id int64) (*user.UserResponse, error) {
	found, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := user.ToUserResponse(found)
	return &resp, nil
}

// Update implements user.Service.
func (s *userServiceImpl) Update(ctx context.Context, id int64, req *user.UpdateUserRequest) (*user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	found, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		found.Username = *req.Username
	}
	if req.Name != nil {
		found.Name = *req.Name
	}
	if req.Email != nil {
		found.Email = *req.Email
	}

	if err := s.userRepo.Update(ctx, found); err != nil {
		return nil, err
	}

	resp := user.ToUserResponse(found)
	return &resp, nil
}

// Delete implements user.Service.
func (s *userServiceImpl) Delete(ctx context.Context, callerID, id int64) error {
	if callerID == id {
		return user.ErrCannotDeleteSelf
	}
	return s.userRepo.Delete(ctx, id)
}

// ResetPassword implements user.Service.
func (s *userServiceImpl) ResetPassword(ctx context.Context, id int64, req *user.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	password := fixtures.DefaultPassword
	if req.NewPassword != nil {
		password = *req.NewPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.userRepo.UpdatePassword(ctx, id, string(hash))
}

// ChangePassword implements user.Service.
func (s *userServiceImpl) ChangePassword(ctx context.Context, id int64, req *user.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	found, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return user.ErrPasswordIncorrect
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.userRepo.UpdatePassword(ctx, id, string(hash))
}

// SetSalary implements user.Service.
func (s *userServiceImpl) SetSalary(ctx context.Context, id int64, req *user.SetSalaryRequest) (*user.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	salary := &user.MonthlySalary{
		UserID: id,
		Month:  req.Month,
		Amount: req.Amount,
	}

	if err := s.salaryRepo.Upsert(ctx, salary); err != nil {
		return nil, err
	}

	resp := user.ToSalaryResponse(salary)
	return &resp, nil
}

// GetSalary implements user.Service. A month with no configured salary
// answers with a null amount, not an error.
func (s *userServiceImpl) GetSalary(ctx context.Context, id int64, month string) (*user.MonthSalaryResponse, error) {
	salary, err := s.salaryRepo.Get(ctx, id, month)
	if errors.Is(err, user.ErrSalaryNotSet) {
		return &user.MonthSalaryResponse{Month: month}, nil
	}
	if err != nil {
		return nil, err
	}

	return &user.MonthSalaryResponse{Month: month, Salary: &salary.Amount}, nil
}

// ListSalaries implements user.Service.
func (s *userServiceImpl) ListSalaries(ctx context.Context, id int64) ([]user.SalaryResponse, error) {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	salaries, err := s.salaryRepo.ListByUser(ctx, id)
	if err != nil {
		return nil, err
	}

	responses := make([]user.SalaryResponse, 0, len(salaries))
	for i := range salaries {
		responses = append(responses, user.ToSalaryResponse(&salaries[i]))
	}

	return responses, nil
}

// EnsureSeedManager creates the manager account on first startup if no
// account with the username exists yet.
func EnsureSeedManager(ctx context.Context, repo user.Repository, username, password, name string) error {
	_, err := repo.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return repo.Create(ctx, &user.User{
		Username:     username,
		PasswordHash: string(hash),
		Name:         name,
		Role:         user.RoleManager,
	})
}
