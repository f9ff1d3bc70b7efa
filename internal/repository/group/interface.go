package group_repository

import (
	"context"

	"yatube/internal/model"
)

// Repository persists groups. Groups are created administratively and never
// deleted; when one is removed out of band the schema clears the group_id of
// its posts instead of cascading.
type Repository interface {
	Create(ctx context.Context, group *model.Group) (*model.Group, error)
	GetByID(ctx context.Context, id int64) (*model.Group, error)
	GetBySlug(ctx context.Context, slug string) (*model.Group, error)
	List(ctx context.Context) ([]*model.Group, error)
}
