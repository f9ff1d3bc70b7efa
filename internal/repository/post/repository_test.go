package post_repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatube/internal/custom_errors"
	"yatube/internal/logger"
	"yatube/internal/model"
	post_repository "yatube/internal/repository/post"
	"yatube/internal/repository/post/memory"
)

func setupPostTest(t *testing.T) post_repository.Repository {
	t.Helper()
	log := logger.New("test")
	return memory.NewPostRepository(log)
}

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }

func TestPostRepository_Create(t *testing.T) {
	repo := setupPostTest(t)

	groupID := int64(7)
	tests := []struct {
		name    string
		post    *model.Post
		wantErr error
	}{
		{
			name: "successful creation without group",
			post: &model.Post{
				AuthorID: 1,
				Text:     "Test text",
			},
			wantErr: nil,
		},
		{
			name: "successful creation with group",
			post: &model.Post{
				AuthorID: 1,
				GroupID:  &groupID,
				Text:     "Grouped text",
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Create(context.Background(), tt.post)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr, err)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, got)
				assert.Equal(t, tt.post.Text, got.Text)
				assert.Equal(t, tt.post.AuthorID, got.AuthorID)
				assert.Equal(t, tt.post.GroupID, got.GroupID)
				assert.NotZero(t, got.ID)
				assert.True(t, got.PubDate.Valid)
			}
		})
	}
}

func TestPostRepository_GetByID(t *testing.T) {
	repo := setupPostTest(t)

	created, err := repo.Create(context.Background(), &model.Post{
		AuthorID: 1,
		Text:     "Test text",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	tests := []struct {
		name    string
		id      int64
		want    *model.Post
		wantErr error
	}{
		{
			name:    "successful get",
			id:      created.ID,
			want:    created,
			wantErr: nil,
		},
		{
			name:    "post not found",
			id:      999,
			want:    nil,
			wantErr: custom_errors.ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetByID(context.Background(), tt.id)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr, err)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, got)
				assert.Equal(t, tt.want.ID, got.ID)
				assert.Equal(t, tt.want.AuthorID, got.AuthorID)
				assert.Equal(t, tt.want.Text, got.Text)
			}
		})
	}
}

func TestPostRepository_Update(t *testing.T) {
	repo := setupPostTest(t)

	groupID := int64(3)
	created, err := repo.Create(context.Background(), &model.Post{
		AuthorID: 1,
		GroupID:  &groupID,
		Text:     "Original text",
	})
	require.NoError(t, err)

	newText := "Updated text"
	tests := []struct {
		name    string
		id      int64
		update  *model.UpdatePostDTO
		wantErr error
		check   func(t *testing.T, got *model.Post)
	}{
		{
			name:   "update text and keep group",
			id:     created.ID,
			update: &model.UpdatePostDTO{Text: &newText, GroupID: &groupID},
			check: func(t *testing.T, got *model.Post) {
				assert.Equal(t, newText, got.Text)
				require.NotNil(t, got.GroupID)
				assert.Equal(t, groupID, *got.GroupID)
			},
		},
		{
			name:   "detach the group",
			id:     created.ID,
			update: &model.UpdatePostDTO{Text: &newText, GroupID: nil},
			check: func(t *testing.T, got *model.Post) {
				assert.Nil(t, got.GroupID)
			},
		},
		{
			name:    "post not found",
			id:      999,
			update:  &model.UpdatePostDTO{Text: &newText},
			wantErr: custom_errors.ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Update(context.Background(), tt.id, tt.update)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr, err)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, created.AuthorID, got.AuthorID)
				assert.Equal(t, created.PubDate.Time, got.PubDate.Time)
				tt.check(t, got)
			}
		})
	}
}

func TestPostRepository_List(t *testing.T) {
	repo := setupPostTest(t)

	groupID := int64(1)
	otherGroupID := int64(2)
	ctx := context.Background()

	_, err := repo.Create(ctx, &model.Post{AuthorID: 1, Text: "first", GroupID: &groupID})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &model.Post{AuthorID: 2, Text: "second"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &model.Post{AuthorID: 1, Text: "third", GroupID: &otherGroupID})
	require.NoError(t, err)

	tests := []struct {
		name      string
		filters   model.PostFilters
		wantTexts []string
	}{
		{
			name:      "all posts newest first",
			filters:   model.PostFilters{},
			wantTexts: []string{"third", "second", "first"},
		},
		{
			name:      "by author",
			filters:   model.PostFilters{AuthorID: int64Ptr(1)},
			wantTexts: []string{"third", "first"},
		},
		{
			name:      "by group excludes ungrouped and other groups",
			filters:   model.PostFilters{GroupID: &groupID},
			wantTexts: []string{"first"},
		},
		{
			name:      "limit and offset",
			filters:   model.PostFilters{Limit: intPtr(1), Offset: intPtr(1)},
			wantTexts: []string{"second"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, tt.filters)
			assert.NoError(t, err)

			texts := make([]string, 0, len(got))
			for _, post := range got {
				texts = append(texts, post.Text)
			}
			assert.Equal(t, tt.wantTexts, texts)
		})
	}
}

func TestPostRepository_Count(t *testing.T) {
	repo := setupPostTest(t)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, &model.Post{AuthorID: 1, Text: "text"})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, &model.Post{AuthorID: 2, Text: "text"})
	require.NoError(t, err)

	total, err := repo.Count(ctx, model.PostFilters{})
	assert.NoError(t, err)
	assert.Equal(t, int64(4), total)

	byAuthor, err := repo.Count(ctx, model.PostFilters{AuthorID: int64Ptr(1)})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), byAuthor)
}

func TestPostRepository_DetachGroup(t *testing.T) {
	log := logger.New("test")
	repo := memory.NewPostRepository(log)

	ctx := context.Background()
	groupID := int64(5)
	created, err := repo.Create(ctx, &model.Post{AuthorID: 1, Text: "text", GroupID: &groupID})
	require.NoError(t, err)

	repo.DetachGroup(groupID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.GroupID)
	assert.Equal(t, created.Text, got.Text)
}
