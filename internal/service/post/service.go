package post_service

import (
	"context"
	"errors"
	"log/slog"

	"yatube/internal/custom_errors"
	"yatube/internal/logger"
	"yatube/internal/model"
	"yatube/internal/pagination"
	group_repository "yatube/internal/repository/group"
	post_repository "yatube/internal/repository/post"
	user_repository "yatube/internal/repository/user"
)

type PostService struct {
	postRepo  post_repository.Repository
	groupRepo group_repository.Repository
	userRepo  user_repository.Repository
	log       *logger.Logger
	pageSize  int
}

func NewPostService(
	postRepo post_repository.Repository,
	groupRepo group_repository.Repository,
	userRepo user_repository.Repository,
	log *logger.Logger,
	pageSize int,
) *PostService {
	return &PostService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
		userRepo:  userRepo,
		log:       log,
		pageSize:  pageSize,
	}
}

func (s *PostService) CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.PostDetailed, error) {
	author, err := s.userRepo.GetByID(ctx, post.AuthorID)
	if err != nil {
		s.log.Error("Failed to get author for new post", slog.Int64("author_id", post.AuthorID), slog.String("error", err.Error()))
		return nil, err
	}

	var group *model.Group
	if post.GroupID != nil {
		group, err = s.groupRepo.GetByID(ctx, *post.GroupID)
		if err != nil {
			if errors.Is(err, custom_errors.ErrGroupNotFound) {
				s.log.Debug("Group not found for new post", slog.Int64("group_id", *post.GroupID))
				return nil, custom_errors.ErrGroupNotFound
			}
			s.log.Error("Failed to get group for new post", slog.Int64("group_id", *post.GroupID), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	newPost := &model.Post{
		AuthorID: post.AuthorID,
		GroupID:  post.GroupID,
		Text:     post.Text,
	}
	createdPost, err := s.postRepo.Create(ctx, newPost)
	if err != nil {
		s.log.Error("Failed to create post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &model.PostDetailed{
		Post:   createdPost,
		Author: author,
		Group:  group,
	}, nil
}

func (s *PostService) GetPostByID(ctx context.Context, id int64) (*model.PostDetailed, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		default:
			s.log.Error("Failed to get post by id", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	return s.enrich(ctx, post)
}

func (s *PostService) ListPosts(ctx context.Context, filters model.PostFilters, pageNumber int) (*pagination.Page[*model.PostDetailed], error) {
	total, err := s.postRepo.Count(ctx, filters)
	if err != nil {
		s.log.Error("Failed to count posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	// Out-of-range page numbers clamp to the last page instead of failing.
	number, offset := pagination.Clamp(pageNumber, total, s.pageSize)
	limit := s.pageSize
	filters.Limit = &limit
	filters.Offset = &offset

	posts, err := s.postRepo.List(ctx, filters)
	if err != nil {
		s.log.Error("Failed to list posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	result := make([]*model.PostDetailed, 0, len(posts))
	for _, post := range posts {
		detailed, err := s.enrich(ctx, post)
		if err != nil {
			return nil, err
		}
		result = append(result, detailed)
	}

	return pagination.New(result, number, s.pageSize, total), nil
}

func (s *PostService) UpdatePost(ctx context.Context, userID int64, id int64, post *model.UpdatePostDTO) error {
	existingPost, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for update", slog.Int64("id", id))
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post for update", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	// Only the author may change a post. Everyone else is reported to the
	// caller, which turns it into a silent redirect rather than an error page.
	if existingPost.AuthorID != userID {
		s.log.Debug("User is not author of post", slog.Int64("user_id", userID), slog.Int64("author_id", existingPost.AuthorID))
		return custom_errors.ErrPostAuthorMismatch
	}

	if post.GroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *post.GroupID); err != nil {
			if errors.Is(err, custom_errors.ErrGroupNotFound) {
				s.log.Debug("Group not found for update", slog.Int64("group_id", *post.GroupID))
				return custom_errors.ErrGroupNotFound
			}
			s.log.Error("Failed to get group for update", slog.Int64("group_id", *post.GroupID), slog.String("error", err.Error()))
			return custom_errors.ErrDatabaseQuery
		}
	}

	if _, err := s.postRepo.Update(ctx, id, post); err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for update", slog.Int64("id", id))
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to update post", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	return nil
}

func (s *PostService) enrich(ctx context.Context, post *model.Post) (*model.PostDetailed, error) {
	author, err := s.userRepo.GetByID(ctx, post.AuthorID)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrUserNotFound):
			s.log.Debug("Author not found", slog.Int64("author_id", post.AuthorID), slog.Int64("post_id", post.ID))
			return nil, custom_errors.ErrUserNotFound
		default:
			s.log.Error("Failed to get author", slog.Int64("author_id", post.AuthorID), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	var group *model.Group
	if post.GroupID != nil {
		group, err = s.groupRepo.GetByID(ctx, *post.GroupID)
		if err != nil {
			switch {
			case errors.Is(err, custom_errors.ErrGroupNotFound):
				// The group vanished between the post read and here. Render
				// the post as ungrouped, matching the SET NULL schema rule.
				s.log.Debug("Group not found for post", slog.Int64("post_id", post.ID))
				group = nil
			default:
				s.log.Error("Failed to get group for post", slog.Int64("post_id", post.ID), slog.String("error", err.Error()))
				return nil, custom_errors.ErrDatabaseQuery
			}
		}
	}

	return &model.PostDetailed{
		Post:   post,
		Author: author,
		Group:  group,
	}, nil
}
