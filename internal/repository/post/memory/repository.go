package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"yatube/internal/custom_errors"
	"yatube/internal/logger"
	"yatube/internal/model"
)

type PostRepository struct {
	log    *logger.Logger
	mu     sync.RWMutex
	posts  map[int64]*model.Post
	nextID int64
}

func NewPostRepository(log *logger.Logger) *PostRepository {
	return &PostRepository{
		log:    log,
		posts:  make(map[int64]*model.Post),
		nextID: 1,
	}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	newPost := &model.Post{
		ID:       p.nextID,
		AuthorID: post.AuthorID,
		GroupID:  post.GroupID,
		Text:     post.Text,
		PubDate:  pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	p.nextID++

	p.posts[newPost.ID] = newPost

	result := *newPost
	return &result, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	post, exists := p.posts[id]
	if !exists {
		p.log.Debug("Post not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	result := *post
	return &result, nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	post, exists := p.posts[id]
	if !exists {
		return nil, custom_errors.ErrPostNotFound
	}

	if update.Text != nil {
		post.Text = *update.Text
	}
	post.GroupID = update.GroupID

	result := *post
	return &result, nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	filtered := p.filter(filters)

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].PubDate.Time.Equal(filtered[j].PubDate.Time) {
			return filtered[i].ID > filtered[j].ID
		}
		return filtered[i].PubDate.Time.After(filtered[j].PubDate.Time)
	})

	offset := 0
	if filters.Offset != nil {
		offset = *filters.Offset
	}
	if offset > len(filtered) {
		offset = len(filtered)
	}
	filtered = filtered[offset:]

	if filters.Limit != nil && *filters.Limit < len(filtered) {
		filtered = filtered[:*filters.Limit]
	}

	return filtered, nil
}

func (p *PostRepository) Count(ctx context.Context, filters model.PostFilters) (int64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return int64(len(p.filter(filters))), nil
}

// DetachGroup mirrors the ON DELETE SET NULL rule of the real schema so the
// orphaning behavior stays observable in tests.
func (p *PostRepository) DetachGroup(groupID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, post := range p.posts {
		if post.GroupID != nil && *post.GroupID == groupID {
			post.GroupID = nil
		}
	}
}

func (p *PostRepository) filter(filters model.PostFilters) []*model.Post {
	var result []*model.Post
	for _, post := range p.posts {
		if filters.AuthorID != nil && post.AuthorID != *filters.AuthorID {
			continue
		}
		if filters.GroupID != nil && (post.GroupID == nil || *post.GroupID != *filters.GroupID) {
			continue
		}
		postCopy := *post
		result = append(result, &postCopy)
	}
	return result
}
