package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-rest/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rest/internal/entity"
)

const maxUsernameLength = 64

type UserUseCase interface {
	Register(ctx context.Context, username, password string) (*entity.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	DeleteAccount(ctx context.Context, authenticated, requested string) error

	ListUsers(ctx context.Context) ([]*entity.User, error)
	Leaderboard(ctx context.Context) ([]*entity.LeaderboardEntry, error)
}

type authService interface {
	HashPassword(password string) (string, error)
	ComparePassword(hash, password string) error
	GenerateToken(username string) (string, error)
}

type userUseCase struct {
	logger *slog.Logger

	repo userRepo
	auth authService
}

func NewUserUseCase(logger *slog.Logger, repo userRepo, auth authService) UserUseCase {
	return &userUseCase{
		logger: logger.With("component", "user"),
		repo:   repo,
		auth:   auth,
	}
}

func (that *userUseCase) Register(ctx context.Context, username, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)

	switch {
	case username == "":
		return nil, fmt.Errorf("%w: username is required", apperror.ErrInvalidInput)
	case len(username) > maxUsernameLength:
		return nil, fmt.Errorf("%w: username is longer than %d characters", apperror.ErrInvalidInput, maxUsernameLength)
	case password == "":
		return nil, fmt.Errorf("%w: password is required", apperror.ErrInvalidInput)
	}

	hash, err := that.auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	user, err := that.repo.Create(ctx, username, hash)
	if err != nil {
		return nil, fmt.Errorf("failed to save user into storage: %w", err)
	}

	that.logger.Info("user registered", "username", username)

	return user, nil
}

// Login - checks the credentials and issues a token. Unknown users and wrong passwords are indistinguishable.
func (that *userUseCase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := that.repo.FindByUsername(ctx, username)
	if errors.Is(err, apperror.ErrUserNotFound) {
		return "", apperror.ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if err = that.auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", apperror.ErrInvalidCredentials
	}

	token, err := that.auth.GenerateToken(user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}

// DeleteAccount - users can only delete their own account.
func (that *userUseCase) DeleteAccount(ctx context.Context, authenticated, requested string) error {
	if authenticated != requested {
		return fmt.Errorf("%w: you can only delete your own account", apperror.ErrPermissionDenied)
	}

	if err := that.repo.DeleteByUsername(ctx, authenticated); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	that.logger.Info("user deleted", "username", authenticated)

	return nil
}

func (that *userUseCase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := that.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	return users, nil
}

func (that *userUseCase) Leaderboard(ctx context.Context) ([]*entity.LeaderboardEntry, error) {
	entries, err := that.repo.Leaderboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users leaderboard: %w", err)
	}

	return entries, nil
}
