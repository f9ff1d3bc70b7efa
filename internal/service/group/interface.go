package group_service

import (
	"context"

	"yatube/internal/model"
)

type Service interface {
	CreateGroup(ctx context.Context, group *model.CreateGroupDTO) (*model.Group, error)
	GetGroupBySlug(ctx context.Context, slug string) (*model.Group, error)
	ListGroups(ctx context.Context) ([]*model.Group, error)
}
