package user_service

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"yatube/internal/custom_errors"
	"yatube/internal/logger"
	"yatube/internal/model"
	user_repository "yatube/internal/repository/user"
)

type UserService struct {
	userRepo user_repository.Repository
	log      *logger.Logger
}

func NewUserService(userRepo user_repository.Repository, log *logger.Logger) *UserService {
	return &UserService{userRepo: userRepo, log: log}
}

func (s *UserService) Register(ctx context.Context, username, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, err
	}

	user, err := s.userRepo.Create(ctx, &model.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, custom_errors.ErrUsernameExists) {
			s.log.Debug("Username already exists", slog.String("username", username))
			return nil, custom_errors.ErrUsernameExists
		}
		s.log.Error("Failed to create user", slog.String("username", username), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return user, nil
}

func (s *UserService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			// Same error for a missing user and a bad password, so the login
			// form never reveals which usernames exist.
			s.log.Debug("Login attempt for unknown username", slog.String("username", username))
			return nil, custom_errors.ErrInvalidCredentials
		}
		s.log.Error("Failed to get user for login", slog.String("username", username), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.log.Debug("Login attempt with wrong password", slog.String("username", username))
		return nil, custom_errors.ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("User not found", slog.Int64("id", id))
			return nil, custom_errors.ErrUserNotFound
		}
		s.log.Error("Failed to get user by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return user, nil
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("User not found", slog.String("username", username))
			return nil, custom_errors.ErrUserNotFound
		}
		s.log.Error("Failed to get user by username", slog.String("username", username), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return user, nil
}
