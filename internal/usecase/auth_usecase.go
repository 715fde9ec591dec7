package usecase

import "context"

// LoginInput defines the data required for a store manager to log in.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput returns the session token after a successful login.
type LoginOutput struct {
	Token    string
	Username string
}

// AuthUsecase defines the interface for manager authentication.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
