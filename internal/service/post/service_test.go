package post_service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatube/internal/custom_errors"
	"yatube/internal/logger"
	"yatube/internal/model"
	group_memory "yatube/internal/repository/group/memory"
	post_memory "yatube/internal/repository/post/memory"
	user_memory "yatube/internal/repository/user/memory"
	post_service "yatube/internal/service/post"
)

const testPageSize = 10

type fixture struct {
	service   *post_service.PostService
	postRepo  *post_memory.PostRepository
	groupRepo *group_memory.GroupRepository
	userRepo  *user_memory.UserRepository
	author    *model.User
	group     *model.Group
}

func setupPostServiceTest(t *testing.T) *fixture {
	t.Helper()
	log := logger.New("test")

	postRepo := post_memory.NewPostRepository(log)
	groupRepo := group_memory.NewGroupRepository(log)
	userRepo := user_memory.NewUserRepository(log)

	author, err := userRepo.Create(context.Background(), &model.User{Username: "someuser", PasswordHash: "hash"})
	require.NoError(t, err)
	group, err := groupRepo.Create(context.Background(), &model.Group{
		Title:       "Test group",
		Slug:        "test-group",
		Description: "Test description",
	})
	require.NoError(t, err)

	return &fixture{
		service:   post_service.NewPostService(postRepo, groupRepo, userRepo, log, testPageSize),
		postRepo:  postRepo,
		groupRepo: groupRepo,
		userRepo:  userRepo,
		author:    author,
		group:     group,
	}
}

func TestPostService_CreatePost(t *testing.T) {
	f := setupPostServiceTest(t)
	unknownGroup := int64(999)

	tests := []struct {
		name    string
		post    *model.CreatePostDTO
		wantErr error
	}{
		{
			name:    "without group",
			post:    &model.CreatePostDTO{AuthorID: f.author.ID, Text: "Test text"},
			wantErr: nil,
		},
		{
			name:    "with group",
			post:    &model.CreatePostDTO{AuthorID: f.author.ID, Text: "Test text", GroupID: &f.group.ID},
			wantErr: nil,
		},
		{
			name:    "unknown group",
			post:    &model.CreatePostDTO{AuthorID: f.author.ID, Text: "Test text", GroupID: &unknownGroup},
			wantErr: custom_errors.ErrGroupNotFound,
		},
		{
			name:    "unknown author",
			post:    &model.CreatePostDTO{AuthorID: 999, Text: "Test text"},
			wantErr: custom_errors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.service.CreatePost(context.Background(), tt.post)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, tt.post.Text, got.Text)
				assert.Equal(t, f.author.ID, got.AuthorID)
				assert.Equal(t, f.author.Username, got.Author.Username)
				assert.True(t, got.PubDate.Valid)
				if tt.post.GroupID != nil {
					require.NotNil(t, got.Group)
					assert.Equal(t, f.group.Slug, got.Group.Slug)
				} else {
					assert.Nil(t, got.Group)
				}
			}
		})
	}
}

func TestPostService_GetPostByID(t *testing.T) {
	f := setupPostServiceTest(t)

	created, err := f.service.CreatePost(context.Background(), &model.CreatePostDTO{
		AuthorID: f.author.ID,
		Text:     "Test text",
		GroupID:  &f.group.ID,
	})
	require.NoError(t, err)

	got, err := f.service.GetPostByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, f.author.Username, got.Author.Username)
	require.NotNil(t, got.Group)
	assert.Equal(t, f.group.Title, got.Group.Title)

	_, err = f.service.GetPostByID(context.Background(), 999)
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
}

func TestPostService_ListPosts_Pagination(t *testing.T) {
	f := setupPostServiceTest(t)

	ctx := context.Background()
	for i := 0; i < 13; i++ {
		_, err := f.service.CreatePost(ctx, &model.CreatePostDTO{
			AuthorID: f.author.ID,
			Text:     fmt.Sprintf("post %d", i),
		})
		require.NoError(t, err)
	}

	tests := []struct {
		name       string
		pageNumber int
		wantItems  int
		wantNumber int
	}{
		{name: "first page is full", pageNumber: 1, wantItems: 10, wantNumber: 1},
		{name: "second page holds the rest", pageNumber: 2, wantItems: 3, wantNumber: 2},
		{name: "out of range clamps to last page", pageNumber: 3, wantItems: 3, wantNumber: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := f.service.ListPosts(ctx, model.PostFilters{}, tt.pageNumber)
			require.NoError(t, err)
			assert.Len(t, page.Items, tt.wantItems)
			assert.Equal(t, tt.wantNumber, page.Number)
			assert.Equal(t, int64(13), page.TotalItems)
			assert.Equal(t, 2, page.TotalPages)
		})
	}
}

func TestPostService_ListPosts_NewestFirst(t *testing.T) {
	f := setupPostServiceTest(t)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := f.service.CreatePost(ctx, &model.CreatePostDTO{
			AuthorID: f.author.ID,
			Text:     fmt.Sprintf("post %d", i),
		})
		require.NoError(t, err)
	}

	page, err := f.service.ListPosts(ctx, model.PostFilters{}, 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "post 2", page.Items[0].Text)
	assert.Equal(t, "post 1", page.Items[1].Text)
	assert.Equal(t, "post 0", page.Items[2].Text)
}

func TestPostService_ListPosts_GroupMembership(t *testing.T) {
	f := setupPostServiceTest(t)

	ctx := context.Background()
	otherGroup, err := f.groupRepo.Create(ctx, &model.Group{Title: "Other", Slug: "other"})
	require.NoError(t, err)

	inGroup, err := f.service.CreatePost(ctx, &model.CreatePostDTO{AuthorID: f.author.ID, Text: "in group", GroupID: &f.group.ID})
	require.NoError(t, err)
	_, err = f.service.CreatePost(ctx, &model.CreatePostDTO{AuthorID: f.author.ID, Text: "no group"})
	require.NoError(t, err)
	_, err = f.service.CreatePost(ctx, &model.CreatePostDTO{AuthorID: f.author.ID, Text: "other group", GroupID: &otherGroup.ID})
	require.NoError(t, err)

	// A post is in the feed exactly when its group reference matches.
	page, err := f.service.ListPosts(ctx, model.PostFilters{GroupID: &f.group.ID}, 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, inGroup.ID, page.Items[0].ID)
}

func TestPostService_ListPosts_AuthorTotal(t *testing.T) {
	f := setupPostServiceTest(t)

	ctx := context.Background()
	other, err := f.userRepo.Create(ctx, &model.User{Username: "other", PasswordHash: "hash"})
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		_, err := f.service.CreatePost(ctx, &model.CreatePostDTO{AuthorID: f.author.ID, Text: "mine"})
		require.NoError(t, err)
	}
	_, err = f.service.CreatePost(ctx, &model.CreatePostDTO{AuthorID: other.ID, Text: "theirs"})
	require.NoError(t, err)

	page, err := f.service.ListPosts(ctx, model.PostFilters{AuthorID: &f.author.ID}, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), page.TotalItems)
	assert.Len(t, page.Items, 4)
	for _, post := range page.Items {
		assert.Equal(t, f.author.ID, post.AuthorID)
	}
}

func TestPostService_UpdatePost(t *testing.T) {
	f := setupPostServiceTest(t)

	ctx := context.Background()
	stranger, err := f.userRepo.Create(ctx, &model.User{Username: "stranger", PasswordHash: "hash"})
	require.NoError(t, err)

	created, err := f.service.CreatePost(ctx, &model.CreatePostDTO{
		AuthorID: f.author.ID,
		Text:     "Original text",
		GroupID:  &f.group.ID,
	})
	require.NoError(t, err)

	newText := "Updated text"

	t.Run("non-author cannot change anything", func(t *testing.T) {
		err := f.service.UpdatePost(ctx, stranger.ID, created.ID, &model.UpdatePostDTO{Text: &newText})
		assert.ErrorIs(t, err, custom_errors.ErrPostAuthorMismatch)

		got, err := f.service.GetPostByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Original text", got.Text)
	})

	t.Run("author updates text and group only", func(t *testing.T) {
		err := f.service.UpdatePost(ctx, f.author.ID, created.ID, &model.UpdatePostDTO{Text: &newText, GroupID: nil})
		require.NoError(t, err)

		got, err := f.service.GetPostByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, newText, got.Text)
		assert.Nil(t, got.Group)
		assert.Equal(t, f.author.ID, got.AuthorID)
		assert.Equal(t, created.PubDate.Time, got.PubDate.Time)
	})

	t.Run("unknown post", func(t *testing.T) {
		err := f.service.UpdatePost(ctx, f.author.ID, 999, &model.UpdatePostDTO{Text: &newText})
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	})

	t.Run("unknown group", func(t *testing.T) {
		unknownGroup := int64(999)
		err := f.service.UpdatePost(ctx, f.author.ID, created.ID, &model.UpdatePostDTO{Text: &newText, GroupID: &unknownGroup})
		assert.ErrorIs(t, err, custom_errors.ErrGroupNotFound)
	})
}

func TestPostService_GroupDeletionOrphansPosts(t *testing.T) {
	f := setupPostServiceTest(t)

	ctx := context.Background()
	created, err := f.service.CreatePost(ctx, &model.CreatePostDTO{
		AuthorID: f.author.ID,
		Text:     "Test text",
		GroupID:  &f.group.ID,
	})
	require.NoError(t, err)

	// Group removal clears the reference and keeps the post, like the
	// ON DELETE SET NULL rule in the schema.
	f.postRepo.DetachGroup(f.group.ID)

	page, err := f.service.ListPosts(ctx, model.PostFilters{}, 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, created.ID, page.Items[0].ID)
	assert.Nil(t, page.Items[0].GroupID)
}
