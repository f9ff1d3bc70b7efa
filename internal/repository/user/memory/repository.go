package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"yatube/internal/custom_errors"
	"yatube/internal/logger"
	"yatube/internal/model"
)

type UserRepository struct {
	log       *logger.Logger
	mu        sync.RWMutex
	users     map[int64]*model.User
	usernames map[string]int64
	nextID    int64
}

func NewUserRepository(log *logger.Logger) *UserRepository {
	return &UserRepository{
		log:       log,
		users:     make(map[int64]*model.User),
		usernames: make(map[string]int64),
		nextID:    1,
	}
}

func (u *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, taken := u.usernames[user.Username]; taken {
		u.log.Debug("Username already taken", slog.String("username", user.Username))
		return nil, custom_errors.ErrUsernameExists
	}

	newUser := &model.User{
		ID:           u.nextID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		CreatedAt:    pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	u.nextID++

	u.users[newUser.ID] = newUser
	u.usernames[newUser.Username] = newUser.ID

	result := *newUser
	return &result, nil
}

func (u *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	user, exists := u.users[id]
	if !exists {
		u.log.Debug("User not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrUserNotFound
	}

	result := *user
	return &result, nil
}

func (u *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	id, exists := u.usernames[username]
	if !exists {
		u.log.Debug("User not found by username", slog.String("username", username))
		return nil, custom_errors.ErrUserNotFound
	}

	result := *u.users[id]
	return &result, nil
}
