package user_repository

import (
	"context"

	"yatube/internal/model"
)

// Repository persists users. Passwords only ever enter it pre-hashed.
type Repository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}
