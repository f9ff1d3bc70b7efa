package post_repository

import (
	"context"

	"yatube/internal/model"
)

// Repository persists posts. There is deliberately no Delete: nothing in the
// application removes posts, author deletion cascades at the schema level.
type Repository interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error)
	List(ctx context.Context, filters model.PostFilters) ([]*model.Post, error)
	Count(ctx context.Context, filters model.PostFilters) (int64, error)
}
