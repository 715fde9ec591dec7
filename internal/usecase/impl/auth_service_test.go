package impl

import (
	"context"
	"testing"

	"chocoshop/internal/domain/entity"
	domainerrors "chocoshop/internal/domain/errors"
	"chocoshop/internal/domain/repository"
	mockRepo "chocoshop/internal/mocks/repository"
	mockService "chocoshop/internal/mocks/service"
	"chocoshop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*mockRepo.MockManagerRepository, *mockService.MockPasswordHasher, *mockService.MockTokenService, usecase.AuthUsecase) {
	managerRepo := mockRepo.NewMockManagerRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		ManagerRepo:  managerRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return managerRepo, hasher, tokenService, service
}

func TestAuthService_Login_Success(t *testing.T) {
	managerRepo, hasher, tokenService, service := newAuthService(t)
	ctx := context.Background()

	manager := &entity.Manager{Username: "alice", PasswordHash: "$2a$10$hash"}

	managerRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(manager, nil)
	hasher.EXPECT().
		Check("s3cret", manager.PasswordHash).
		Return(true)
	tokenService.EXPECT().
		GenerateToken("alice").
		Return("signed-token", nil)

	output, err := service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, "alice", output.Username)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	managerRepo, _, _, service := newAuthService(t)
	ctx := context.Background()

	managerRepo.EXPECT().
		FindByUsername(ctx, "ghost").
		Return(nil, repository.ErrManagerNotFound)

	output, err := service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "whatever"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	managerRepo, hasher, _, service := newAuthService(t)
	ctx := context.Background()

	manager := &entity.Manager{Username: "alice", PasswordHash: "$2a$10$hash"}

	managerRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(manager, nil)
	hasher.EXPECT().
		Check("wrong", manager.PasswordHash).
		Return(false)

	output, err := service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	managerRepo, _, _, service := newAuthService(t)
	ctx := context.Background()

	managerRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(nil, assert.AnError)

	output, err := service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "s3cret"})
	require.Error(t, err)
	assert.Nil(t, output)
	// An infrastructure failure is not reported as invalid credentials.
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_TokenGenerationFails(t *testing.T) {
	managerRepo, hasher, tokenService, service := newAuthService(t)
	ctx := context.Background()

	manager := &entity.Manager{Username: "alice", PasswordHash: "$2a$10$hash"}

	managerRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(manager, nil)
	hasher.EXPECT().
		Check("s3cret", manager.PasswordHash).
		Return(true)
	tokenService.EXPECT().
		GenerateToken("alice").
		Return("", assert.AnError)

	output, err := service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "s3cret"})
	require.Error(t, err)
	assert.Nil(t, output)
}
