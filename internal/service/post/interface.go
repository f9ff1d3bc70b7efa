package post_service

import (
	"context"

	"yatube/internal/model"
	"yatube/internal/pagination"
)

type Service interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.PostDetailed, error)
	GetPostByID(ctx context.Context, id int64) (*model.PostDetailed, error)
	ListPosts(ctx context.Context, filters model.PostFilters, pageNumber int) (*pagination.Page[*model.PostDetailed], error)
	UpdatePost(ctx context.Context, userID int64, id int64, post *model.UpdatePostDTO) error
}
