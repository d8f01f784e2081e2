package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/omkarRanu3625/Blog-application/internal/models"
	"github.com/omkarRanu3625/Blog-application/internal/store"
)

// PostServiceProvider defines the interface for post services.
type PostServiceProvider interface {
	Create(ctx context.Context, title, content, callerID string) (models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	Get(ctx context.Context, id string) (models.Post, error)
	Update(ctx context.Context, id, title, content, callerID string) (models.Post, error)
	Delete(ctx context.Context, id, callerID string) error
}

// PostService provides CRUD over posts with author-only mutation.
type PostService struct {
	posts store.PostStore
}

// NewPostService creates a new PostService.
func NewPostService(posts store.PostStore) *PostService {
	return &PostService{posts: posts}
}

// Create persists a new post authored by the caller.
func (s *PostService) Create(ctx context.Context, title, content, callerID string) (models.Post, error) {
	now := time.Now().UTC()
	post := models.Post{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		Author:    models.Author{ID: callerID},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.posts.CreatePost(ctx, &post); err != nil {
		return models.Post{}, err
	}
	return s.Get(ctx, post.ID)
}

// List returns all posts with author names resolved.
func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	return s.posts.ListPosts(ctx)
}

// Get returns a single post with its author name resolved.
func (s *PostService) Get(ctx context.Context, id string) (models.Post, error) {
	post, err := s.posts.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Post{}, ErrNotFound
		}
		return models.Post{}, err
	}
	return post, nil
}

// Update changes a post's title and/or content. Only the author may update.
// Empty fields are treated as absent and leave the stored value unchanged.
func (s *PostService) Update(ctx context.Context, id, title, content, callerID string) (models.Post, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return models.Post{}, err
	}
	if post.Author.ID != callerID {
		return models.Post{}, ErrNotOwner
	}

	if title != "" {
		post.Title = title
	}
	if content != "" {
		post.Content = content
	}
	post.UpdatedAt = time.Now().UTC()

	if err := s.posts.UpdatePost(ctx, &post); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Post{}, ErrNotFound
		}
		return models.Post{}, err
	}
	return post, nil
}

// Delete removes a post. Only the author may delete. Comments on the post
// are not cascade-deleted.
func (s *PostService) Delete(ctx context.Context, id, callerID string) error {
	post, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if post.Author.ID != callerID {
		return ErrNotOwner
	}

	if err := s.posts.DeletePost(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
