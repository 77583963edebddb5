package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("Invalid username or password")
	ErrUnauthorized       = errors.New("Unauthorized")
	ErrTokenRevoked       = errors.New("Token has been revoked")
)
