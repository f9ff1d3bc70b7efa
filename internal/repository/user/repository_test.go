package user_repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatube/internal/custom_errors"
	"yatube/internal/logger"
	"yatube/internal/model"
	user_repository "yatube/internal/repository/user"
	"yatube/internal/repository/user/memory"
)

func setupUserTest(t *testing.T) user_repository.Repository {
	t.Helper()
	log := logger.New("test")
	return memory.NewUserRepository(log)
}

func TestUserRepository_Create(t *testing.T) {
	repo := setupUserTest(t)

	ctx := context.Background()
	created, err := repo.Create(ctx, &model.User{
		Username:     "someuser",
		PasswordHash: "hashed",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.True(t, created.CreatedAt.Valid)

	_, err = repo.Create(ctx, &model.User{
		Username:     "someuser",
		PasswordHash: "other",
	})
	assert.Equal(t, custom_errors.ErrUsernameExists, err)
}

func TestUserRepository_GetByUsername(t *testing.T) {
	repo := setupUserTest(t)

	created, err := repo.Create(context.Background(), &model.User{
		Username:     "someuser",
		PasswordHash: "hashed",
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		wantErr  error
	}{
		{name: "successful get", username: "someuser", wantErr: nil},
		{name: "user not found", username: "nobody", wantErr: custom_errors.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetByUsername(context.Background(), tt.username)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr, err)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, created.ID, got.ID)
			}
		})
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	repo := setupUserTest(t)

	created, err := repo.Create(context.Background(), &model.User{
		Username:     "someuser",
		PasswordHash: "hashed",
	})
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "someuser", got.Username)

	_, err = repo.GetByID(context.Background(), 999)
	assert.Equal(t, custom_errors.ErrUserNotFound, err)
}
