package group_service

import (
	"context"
	"errors"
	"log/slog"
	"unicode/utf8"

	"github.com/gosimple/slug"

	"yatube/internal/custom_errors"
	"yatube/internal/logger"
	"yatube/internal/model"
	group_repository "yatube/internal/repository/group"
)

const maxTitleLength = 200

type GroupService struct {
	groupRepo group_repository.Repository
	log       *logger.Logger
}

func NewGroupService(groupRepo group_repository.Repository, log *logger.Logger) *GroupService {
	return &GroupService{groupRepo: groupRepo, log: log}
}

// CreateGroup is the administrative entry point: the web application itself
// never creates groups. When no slug is supplied one is derived from the title.
func (s *GroupService) CreateGroup(ctx context.Context, group *model.CreateGroupDTO) (*model.Group, error) {
	if group.Title == "" || utf8.RuneCountInString(group.Title) > maxTitleLength {
		s.log.Debug("Invalid group title", slog.Int("length", utf8.RuneCountInString(group.Title)))
		return nil, custom_errors.ErrValidationFailed
	}

	groupSlug := group.Slug
	if groupSlug == "" {
		groupSlug = slug.Make(group.Title)
	}
	if !slug.IsSlug(groupSlug) {
		s.log.Debug("Invalid group slug", slog.String("slug", groupSlug))
		return nil, custom_errors.ErrValidationFailed
	}

	createdGroup, err := s.groupRepo.Create(ctx, &model.Group{
		Title:       group.Title,
		Slug:        groupSlug,
		Description: group.Description,
	})
	if err != nil {
		if errors.Is(err, custom_errors.ErrGroupSlugExists) {
			s.log.Debug("Group slug already exists", slog.String("slug", groupSlug))
			return nil, custom_errors.ErrGroupSlugExists
		}
		s.log.Error("Failed to create group", slog.String("slug", groupSlug), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return createdGroup, nil
}

func (s *GroupService) GetGroupBySlug(ctx context.Context, slug string) (*model.Group, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, custom_errors.ErrGroupNotFound) {
			s.log.Debug("Group not found", slog.String("slug", slug))
			return nil, custom_errors.ErrGroupNotFound
		}
		s.log.Error("Failed to get group by slug", slog.String("slug", slug), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return group, nil
}

func (s *GroupService) ListGroups(ctx context.Context) ([]*model.Group, error) {
	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		s.log.Error("Failed to list groups", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return groups, nil
}
