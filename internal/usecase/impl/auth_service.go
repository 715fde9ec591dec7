// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	domainerrors "chocoshop/internal/domain/errors"
	"chocoshop/internal/domain/repository"
	"chocoshop/internal/domain/service"
	"chocoshop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	managerRepo  repository.ManagerRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	ManagerRepo  repository.ManagerRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		managerRepo:  params.ManagerRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Login verifies a manager's credentials and issues a session token.
// The lookup is a single query by username; a failed attempt reports
// invalid credentials exactly once, whatever the reason.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting manager login", slog.String("username", input.Username))

	manager, err := srv.managerRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrManagerNotFound) {
			srv.logger.Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load manager record")
	}

	// Check password outside the repository call (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, manager.PasswordHash) {
		srv.logger.Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.GenerateToken(manager.Username)
	if err != nil {
		srv.logger.Error("Failed to generate session token", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.logger.Debug("Manager logged in successfully", slog.String("username", manager.Username))

	return &usecase.LoginOutput{
		Token:    token,
		Username: manager.Username,
	}, nil
}
