package auth

import (
	"context"

	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/user"
)

type Service interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	Me(ctx context.Context, userID int64) (*user.UserResponse, error)
	Logout(ctx context.Context, token string) error
}
